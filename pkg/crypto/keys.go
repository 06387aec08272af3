package crypto

import (
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/busybox42/secpsign/internal/keyfmt"
	"gitlab.com/yawning/secp256k1-voi/secec"
)

// GenerateKeyPair creates a new secp256k1 key pair
func (s *Service) GenerateKeyPair() (*KeyPair, error) {
	scalar := make([]byte, keyfmt.ScalarSize)
	if _, err := io.ReadFull(s.config.Rand, scalar); err != nil {
		s.log.WithError(err).Debug("Entropy source failed")
		return nil, fmt.Errorf("%w: read entropy: %w", ErrGeneration, err)
	}
	privateKey, err := secec.NewPrivateKey(scalar)
	if err != nil {
		s.log.WithError(err).Debug("Entropy produced an invalid scalar")
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	kp, err := encodeKeyPair(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	s.log.Debug("Generated key pair")
	return kp, nil
}

// Sign signs message with the pair's private key using a default Service.
func (kp *KeyPair) Sign(message []byte) (string, error) {
	return SignMessage(message, kp.PrivateKey)
}

// Verify checks signature against the pair's public key using a default Service.
func (kp *KeyPair) Verify(message []byte, signature string) (bool, error) {
	return VerifyMessage(message, signature, kp.PublicKey)
}

func encodeKeyPair(privateKey *secec.PrivateKey) (*KeyPair, error) {
	point := privateKey.PublicKey().Point().UncompressedBytes()

	spki, err := keyfmt.MarshalPKIXPublicKey(point)
	if err != nil {
		return nil, err
	}
	pkcs8, err := keyfmt.MarshalPKCS8PrivateKey(privateKey.Bytes(), point)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: spki})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: pkcs8})),
	}, nil
}

// parsePrivateKey loads a PKCS8 or SEC1 PEM private key. Container problems
// are reported as ErrKeyFormat; a well formed key the curve implementation
// rejects (other curve, scalar out of range, mismatched public point) is
// reported as materialErr.
func parsePrivateKey(text string, materialErr error) (*secec.PrivateKey, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	var (
		key *keyfmt.ECPrivateKey
		err error
	)
	switch block.Type {
	case pemTypePrivateKey:
		key, err = keyfmt.ParsePKCS8PrivateKey(block.Bytes)
	case pemTypeECPrivate:
		key, err = keyfmt.ParseECPrivateKey(block.Bytes)
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrKeyFormat, block.Type)
	}
	if err != nil {
		if errors.Is(err, keyfmt.ErrUnsupportedCurve) {
			return nil, fmt.Errorf("%w: %w", materialErr, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}

	privateKey, err := secec.NewPrivateKey(key.Scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", materialErr, err)
	}
	if key.PublicKey != nil {
		embedded, err := secec.NewPublicKey(key.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: embedded public key: %w", materialErr, err)
		}
		if !embedded.Equal(privateKey.PublicKey()) {
			return nil, fmt.Errorf("%w: embedded public key does not match private key", materialErr)
		}
	}
	return privateKey, nil
}

// parsePublicKey loads an SPKI PEM public key. A private key PEM is accepted
// too, in which case its public half is used.
func parsePublicKey(text string) (*secec.PublicKey, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	switch block.Type {
	case pemTypePublicKey:
	case pemTypePrivateKey, pemTypeECPrivate:
		privateKey, err := parsePrivateKey(text, ErrKeyFormat)
		if err != nil {
			return nil, err
		}
		return privateKey.PublicKey(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrKeyFormat, block.Type)
	}

	point, err := keyfmt.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}
	publicKey, err := secec.NewPublicKey(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}
	return publicKey, nil
}
