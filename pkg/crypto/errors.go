package crypto

import "errors"

// Errors returned by the service. Each failure wraps exactly one of these
// together with its cause, so callers can test the kind with errors.Is.
var (
	// ErrGeneration means the provider could not produce a key pair.
	ErrGeneration = errors.New("key pair generation failed")
	// ErrKeyFormat means a key is not a PEM container of the expected type or curve.
	ErrKeyFormat = errors.New("invalid key format")
	// ErrSigning means the private key parsed but could not be used to sign.
	ErrSigning = errors.New("signing failed")
	// ErrSignatureFormat means a signature is not base64 encoded DER.
	ErrSignatureFormat = errors.New("invalid signature format")
)
