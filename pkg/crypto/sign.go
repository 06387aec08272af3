package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/busybox42/secpsign/internal/keyfmt"
	sha256 "github.com/minio/sha256-simd"
	"github.com/sirupsen/logrus"
)

// SignMessage hashes message with SHA-256, signs the digest with the PEM
// encoded private key and returns the DER signature in base64.
func (s *Service) SignMessage(message []byte, privateKey string) (string, error) {
	log := s.log.WithField("message_len", len(message))

	key, err := parsePrivateKey(privateKey, ErrSigning)
	if err != nil {
		log.WithError(err).Debug("Rejected private key")
		return "", err
	}

	digest := sha256.Sum256(message)
	compact, err := key.Sign(s.config.Rand, digest[:], signOptions)
	if err != nil {
		log.WithError(err).Debug("Signing failed")
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	if len(compact) != compactSignatureSize {
		return "", fmt.Errorf("%w: unexpected signature length %d", ErrSigning, len(compact))
	}

	der, err := keyfmt.MarshalSignature(compact[:32], compact[32:])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}

	log.Debug("Signed message")
	return base64.StdEncoding.EncodeToString(der), nil
}

// VerifyMessage reports whether signature is a valid signature of message
// under the PEM encoded public key. A signature that does not match is not an
// error: the result is simply false. Errors are returned only for keys and
// signatures that cannot be decoded.
func (s *Service) VerifyMessage(message []byte, signature, publicKey string) (bool, error) {
	log := s.log.WithField("message_len", len(message))

	key, err := parsePublicKey(publicKey)
	if err != nil {
		log.WithError(err).Debug("Rejected public key")
		return false, err
	}

	r, sv, err := decodeSignature(signature)
	if err != nil {
		log.WithError(err).Debug("Rejected signature")
		return false, err
	}

	valid := false
	// Values wider than 32 bytes exceed the group order and can never verify.
	if len(r) <= 32 && len(sv) <= 32 {
		compact := make([]byte, compactSignatureSize)
		copy(compact[32-len(r):32], r)
		copy(compact[compactSignatureSize-len(sv):], sv)

		digest := sha256.Sum256(message)
		valid = key.Verify(digest[:], compact, s.verifyOptions())
	}

	log.WithFields(logrus.Fields{"valid": valid}).Debug("Verified message")
	return valid, nil
}

func decodeSignature(signature string) (r, s []byte, err error) {
	if signature == "" {
		return nil, nil, fmt.Errorf("%w: empty signature", ErrSignatureFormat)
	}
	der, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSignatureFormat, err)
	}
	r, s, err = keyfmt.ParseSignature(der)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSignatureFormat, err)
	}
	return r, s, nil
}
