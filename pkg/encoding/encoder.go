package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

type Type byte

const (
	TypeHex       Type = 0x02
	TypeBase64    Type = 0x04
	TypeBase64Url Type = 0x05
)

type Encoder interface {
	Encode(raw []byte) string
}

type Decoder interface {
	Decode(encoded string) ([]byte, error)
}

type Codec interface {
	Encoder
	Decoder
}

func GetCodec(t Type) Codec {
	switch t {
	case TypeHex:
		return &Hex{}
	case TypeBase64:
		return &Base64{}
	case TypeBase64Url:
		return &Base64Url{}
	default:
		return nil
	}
}

// Hex encodes to lowercase hex without any prefix.
type Hex struct{}

func (d *Hex) Encode(raw []byte) string {
	return hex.EncodeToString(raw)
}

func (d *Hex) Decode(encoded string) ([]byte, error) {
	return hex.DecodeString(encoded)
}

type Base64 struct{}

func (d *Base64) Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

func (d *Base64) Decode(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

type Base64Url struct{}

func (d *Base64Url) Encode(raw []byte) string {
	return base64.URLEncoding.EncodeToString(raw)
}

func (d *Base64Url) Decode(encoded string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(encoded)
}

// DetectBase64 picks the alphabet of the encoded string. Strings holding
// neither '-'/'_' nor '+'/'/' are valid in both alphabets and get the standard one.
func DetectBase64(encoded string) Type {
	if strings.ContainsAny(encoded, "-_") {
		return TypeBase64Url
	}

	return TypeBase64
}
