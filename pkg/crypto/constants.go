package crypto

const (
	// CurveName is the only curve the service generates or accepts.
	CurveName = "secp256k1"
	// DigestName is the message digest signed and verified.
	DigestName = "SHA-256"

	pemTypePublicKey  = "PUBLIC KEY"
	pemTypePrivateKey = "PRIVATE KEY"
	pemTypeECPrivate  = "EC PRIVATE KEY"

	compactSignatureSize = 64
)
