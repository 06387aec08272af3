// Package crypto generates secp256k1 key pairs and signs and verifies
// messages with ECDSA over SHA-256. Keys are exchanged as PEM text (SPKI for
// public keys, PKCS8 for private keys) and signatures as base64 encoded DER,
// the same encodings OpenSSL and Node produce.
package crypto

import (
	gocrypto "crypto"
	"crypto/rand"

	"github.com/sirupsen/logrus"
	"gitlab.com/yawning/secp256k1-voi/secec"
)

var signOptions = &secec.ECDSAOptions{
	Hash:            gocrypto.SHA256,
	Encoding:        secec.EncodingCompact,
	RejectMalleable: true,
}

// Service performs the signature operations. It holds no mutable state and
// is safe for concurrent use.
type Service struct {
	config Config
	log    logrus.FieldLogger
}

// NewService returns a Service for config. A nil config selects the defaults.
func NewService(config *Config) *Service {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Service{
		config: cfg,
		log: cfg.Logger.WithFields(logrus.Fields{
			"curve":  CurveName,
			"digest": DigestName,
		}),
	}
}

func (s *Service) verifyOptions() *secec.ECDSAOptions {
	return &secec.ECDSAOptions{
		Hash:            gocrypto.SHA256,
		Encoding:        secec.EncodingCompact,
		RejectMalleable: s.config.StrictLowS,
	}
}

// GenerateKeyPair creates a key pair with a default Service.
func GenerateKeyPair() (*KeyPair, error) {
	return NewService(nil).GenerateKeyPair()
}

// SignMessage signs message with a default Service.
func SignMessage(message []byte, privateKey string) (string, error) {
	return NewService(nil).SignMessage(message, privateKey)
}

// VerifyMessage verifies signature with a default Service.
func VerifyMessage(message []byte, signature, publicKey string) (bool, error) {
	return NewService(nil).VerifyMessage(message, signature, publicKey)
}
