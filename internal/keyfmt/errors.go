package keyfmt

import "github.com/pkg/errors"

var (
	// ErrMalformed is returned for DER that does not follow the expected ASN.1 structure.
	ErrMalformed = errors.New("keyfmt: malformed DER")
	// ErrUnsupportedAlgorithm is returned for keys that are not elliptic curve keys.
	ErrUnsupportedAlgorithm = errors.New("keyfmt: unsupported public key algorithm")
	// ErrUnsupportedCurve is returned for EC keys on a curve other than secp256k1.
	ErrUnsupportedCurve = errors.New("keyfmt: unsupported elliptic curve")
)
