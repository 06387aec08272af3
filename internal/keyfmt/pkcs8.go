package keyfmt

import (
	"bytes"
	encoding_asn1 "encoding/asn1"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	tagParameters = cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()
	tagPublicKey  = cryptobyte_asn1.Tag(1).ContextSpecific().Constructed()

	// PKCS8 OneAsymmetricKey fields that follow privateKey.
	tagAttributes        = cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()
	tagPKCS8PublicKey    = cryptobyte_asn1.Tag(1).ContextSpecific()
	tagPKCS8PublicKeyAlt = cryptobyte_asn1.Tag(1).ContextSpecific().Constructed()
)

// ECPrivateKey is the content of a SEC1 ECPrivateKey structure.
type ECPrivateKey struct {
	// Scalar is the private scalar, big-endian and left-padded to ScalarSize.
	Scalar []byte
	// PublicKey is the optional SEC1 encoded public point stored alongside
	// the scalar. It is nil when the key did not carry one.
	PublicKey []byte
}

// MarshalPKCS8PrivateKey encodes a secp256k1 private key as a PKCS8
// PrivateKeyInfo. The inner ECPrivateKey carries the public point and omits
// the curve parameters, which is the layout OpenSSL produces.
func MarshalPKCS8PrivateKey(scalar, point []byte) ([]byte, error) {
	if len(scalar) != ScalarSize {
		return nil, errors.Errorf("keyfmt: private scalar must be %d bytes, got %d", ScalarSize, len(scalar))
	}
	if len(point) == 0 {
		return nil, errors.New("keyfmt: empty public key")
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(pkcs8Version)
		addAlgorithmIdentifier(b)
		b.AddASN1(cryptobyte_asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(ecPrivKeyVersion)
				b.AddASN1OctetString(scalar)
				b.AddASN1(tagPublicKey, func(b *cryptobyte.Builder) {
					b.AddASN1BitString(point)
				})
			})
		})
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "keyfmt: marshal PrivateKeyInfo")
	}
	return der, nil
}

// ParsePKCS8PrivateKey decodes a PKCS8 PrivateKeyInfo (or RFC 5958
// OneAsymmetricKey) holding a secp256k1 key.
func ParsePKCS8PrivateKey(der []byte) (*ECPrivateKey, error) {
	input := cryptobyte.String(der)
	var (
		info    cryptobyte.String
		version int
	)
	if !input.ReadASN1(&info, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errors.Wrap(ErrMalformed, "PrivateKeyInfo")
	}
	if !info.ReadASN1Integer(&version) {
		return nil, errors.Wrap(ErrMalformed, "PrivateKeyInfo version")
	}
	if version != 0 && version != 1 {
		return nil, errors.Wrapf(ErrMalformed, "unknown PrivateKeyInfo version %d", version)
	}

	if err := readAlgorithmIdentifier(&info); err != nil {
		return nil, err
	}

	var inner cryptobyte.String
	if !info.ReadASN1(&inner, cryptobyte_asn1.OCTET_STRING) {
		return nil, errors.Wrap(ErrMalformed, "privateKey")
	}
	if !info.SkipOptionalASN1(tagAttributes) ||
		!info.SkipOptionalASN1(tagPKCS8PublicKey) ||
		!info.SkipOptionalASN1(tagPKCS8PublicKeyAlt) ||
		!info.Empty() {
		return nil, errors.Wrap(ErrMalformed, "trailing PrivateKeyInfo fields")
	}

	return parseECPrivateKey(inner, true)
}

// ParseECPrivateKey decodes a SEC1 ECPrivateKey ("EC PRIVATE KEY"). The curve
// parameters are required since nothing else names the curve.
func ParseECPrivateKey(der []byte) (*ECPrivateKey, error) {
	return parseECPrivateKey(cryptobyte.String(der), false)
}

func parseECPrivateKey(input cryptobyte.String, curveKnown bool) (*ECPrivateKey, error) {
	var (
		s        cryptobyte.String
		version  int
		scalar   []byte
		params   cryptobyte.String
		pub      cryptobyte.String
		hasCurve bool
		hasPub   bool
	)
	if !input.ReadASN1(&s, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errors.Wrap(ErrMalformed, "ECPrivateKey")
	}
	if !s.ReadASN1Integer(&version) {
		return nil, errors.Wrap(ErrMalformed, "ECPrivateKey version")
	}
	if version != ecPrivKeyVersion {
		return nil, errors.Wrapf(ErrMalformed, "unknown ECPrivateKey version %d", version)
	}
	if !s.ReadASN1Bytes(&scalar, cryptobyte_asn1.OCTET_STRING) {
		return nil, errors.Wrap(ErrMalformed, "ECPrivateKey privateKey")
	}
	if !s.ReadOptionalASN1(&params, &hasCurve, tagParameters) ||
		!s.ReadOptionalASN1(&pub, &hasPub, tagPublicKey) ||
		!s.Empty() {
		return nil, errors.Wrap(ErrMalformed, "ECPrivateKey optional fields")
	}

	if hasCurve {
		if err := checkNamedCurve(params); err != nil {
			return nil, err
		}
	} else if !curveKnown {
		return nil, errors.Wrap(ErrMalformed, "ECPrivateKey has no curve parameters")
	}

	key := &ECPrivateKey{}
	var err error
	if key.Scalar, err = normalizeScalar(scalar); err != nil {
		return nil, err
	}
	if hasPub {
		var bits encoding_asn1.BitString
		if !pub.ReadASN1BitString(&bits) || !pub.Empty() || bits.BitLength%8 != 0 {
			return nil, errors.Wrap(ErrMalformed, "ECPrivateKey publicKey")
		}
		key.PublicKey = bits.RightAlign()
	}
	return key, nil
}

// normalizeScalar returns the scalar as exactly ScalarSize bytes. Some
// encoders drop leading zero bytes, others keep extra ones; both are accepted.
func normalizeScalar(scalar []byte) ([]byte, error) {
	scalar = bytes.TrimLeft(scalar, "\x00")
	if len(scalar) > ScalarSize {
		return nil, errors.Wrapf(ErrMalformed, "private scalar is %d bytes", len(scalar))
	}
	out := make([]byte, ScalarSize)
	copy(out[ScalarSize-len(scalar):], scalar)
	return out, nil
}
