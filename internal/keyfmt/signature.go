package keyfmt

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// MarshalSignature encodes big-endian r and s as an ECDSA-Sig-Value.
func MarshalSignature(r, s []byte) ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(new(big.Int).SetBytes(r))
		b.AddASN1BigInt(new(big.Int).SetBytes(s))
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "keyfmt: marshal signature")
	}
	return der, nil
}

// ParseSignature decodes a DER ECDSA-Sig-Value and returns r and s as
// big-endian bytes without leading zeros. Only the encoding is checked; range
// checks against the group order are left to verification.
func ParseSignature(der []byte) (r, s []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, cryptobyte_asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, nil, errors.Wrap(ErrMalformed, "ECDSA-Sig-Value")
	}
	return bytes.TrimLeft(r, "\x00"), bytes.TrimLeft(s, "\x00"), nil
}
