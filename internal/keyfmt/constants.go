package keyfmt

import encoding_asn1 "encoding/asn1"

const (
	// ScalarSize is the length of a secp256k1 private scalar.
	ScalarSize = 32

	pkcs8Version      = 0
	ecPrivKeyVersion = 1
)

var (
	oidPublicKeyECDSA = encoding_asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidNamedCurveK256 = encoding_asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)
