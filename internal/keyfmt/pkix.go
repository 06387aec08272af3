// Package keyfmt encodes and decodes the ASN.1 containers used for secp256k1
// keys and ECDSA signatures. crypto/x509 only knows the NIST curves, so the
// SPKI and PKCS8 structures are built here directly. The package works on raw
// bytes and does no curve arithmetic: points and scalars are validated by the
// caller's curve implementation.
package keyfmt

import (
	encoding_asn1 "encoding/asn1"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// MarshalPKIXPublicKey wraps a SEC1 encoded secp256k1 point in a
// SubjectPublicKeyInfo structure.
func MarshalPKIXPublicKey(point []byte) ([]byte, error) {
	if len(point) == 0 {
		return nil, errors.New("keyfmt: empty public key")
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmIdentifier(b)
		b.AddASN1BitString(point)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "keyfmt: marshal SubjectPublicKeyInfo")
	}
	return der, nil
}

// ParsePKIXPublicKey returns the SEC1 encoded point held by a
// SubjectPublicKeyInfo structure for a secp256k1 key.
func ParsePKIXPublicKey(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var spki cryptobyte.String
	if !input.ReadASN1(&spki, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errors.Wrap(ErrMalformed, "SubjectPublicKeyInfo")
	}

	if err := readAlgorithmIdentifier(&spki); err != nil {
		return nil, err
	}

	var bits encoding_asn1.BitString
	if !spki.ReadASN1BitString(&bits) || !spki.Empty() {
		return nil, errors.Wrap(ErrMalformed, "subjectPublicKey")
	}
	if bits.BitLength%8 != 0 || bits.BitLength == 0 {
		return nil, errors.Wrap(ErrMalformed, "subjectPublicKey is not a whole number of bytes")
	}
	return bits.RightAlign(), nil
}

func addAlgorithmIdentifier(b *cryptobyte.Builder) {
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidPublicKeyECDSA)
		b.AddASN1ObjectIdentifier(oidNamedCurveK256)
	})
}

// readAlgorithmIdentifier consumes an AlgorithmIdentifier and checks that it
// names id-ecPublicKey on secp256k1.
func readAlgorithmIdentifier(s *cryptobyte.String) error {
	var (
		alg cryptobyte.String
		oid encoding_asn1.ObjectIdentifier
	)
	if !s.ReadASN1(&alg, cryptobyte_asn1.SEQUENCE) || !alg.ReadASN1ObjectIdentifier(&oid) {
		return errors.Wrap(ErrMalformed, "AlgorithmIdentifier")
	}
	if !oid.Equal(oidPublicKeyECDSA) {
		return errors.Wrapf(ErrUnsupportedAlgorithm, "algorithm %s", oid)
	}
	return checkNamedCurve(alg)
}

// checkNamedCurve accepts only the secp256k1 namedCurve choice of ECParameters.
// Explicit curve parameters are not supported.
func checkNamedCurve(params cryptobyte.String) error {
	var curve encoding_asn1.ObjectIdentifier
	if !params.PeekASN1Tag(cryptobyte_asn1.OBJECT_IDENTIFIER) {
		return errors.Wrap(ErrUnsupportedCurve, "parameters are not a named curve")
	}
	if !params.ReadASN1ObjectIdentifier(&curve) || !params.Empty() {
		return errors.Wrap(ErrMalformed, "namedCurve")
	}
	if !curve.Equal(oidNamedCurveK256) {
		return errors.Wrapf(ErrUnsupportedCurve, "curve %s", curve)
	}
	return nil
}
