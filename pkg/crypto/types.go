package crypto

import (
	"io"

	"github.com/sirupsen/logrus"
)

// KeyPair holds a secp256k1 key pair as PEM text: PublicKey is an SPKI
// "PUBLIC KEY" block and PrivateKey a PKCS8 "PRIVATE KEY" block.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

type Config struct {
	// Rand is the entropy source for key generation and signing.
	// Defaults to crypto/rand.Reader.
	Rand io.Reader
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
	// StrictLowS makes verification reject signatures with s > n/2.
	StrictLowS bool
}
