package address

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Bridgeless-Project/tvm-bridge/pkg/encoding"
	"github.com/pkg/errors"
	"github.com/sigurn/crc16"
)

const (
	AccountIDLength = 32

	// tag + workchain + account id
	taggedPayloadLength = 2 + AccountIDLength
	taggedLength        = taggedPayloadLength + 2
	taggedEncodedLength = 48

	rawSeparator = ":"

	tagBounceable    byte = 0x11
	tagNonBounceable byte = 0x51
	tagTestnet       byte = 0x80
)

var (
	checksumTable = crc16.MakeTable(crc16.CRC16_XMODEM)
	hexCodec      = encoding.GetCodec(encoding.TypeHex)
)

// Address is an account location: a workchain id and a 256-bit account id.
type Address struct {
	Workchain int32
	AccountID [AccountIDLength]byte
}

// Flags are the user-friendly form options. Bounceable and Testnet are
// carried in the tag byte, URLSafe only selects the base64 alphabet.
type Flags struct {
	URLSafe    bool
	Testnet    bool
	Bounceable bool
}

func (f Flags) Tag() byte {
	tag := tagNonBounceable
	if f.Bounceable {
		tag = tagBounceable
	}
	if f.Testnet {
		tag |= tagTestnet
	}

	return tag
}

func flagsFromTag(tag byte) (Flags, error) {
	var flags Flags
	if tag&tagTestnet != 0 {
		flags.Testnet = true
		tag &^= tagTestnet
	}

	switch tag {
	case tagBounceable:
		flags.Bounceable = true
	case tagNonBounceable:
	default:
		return Flags{}, errors.Wrapf(ErrInvalidAddressFormat, "unknown tag 0x%02x", tag)
	}

	return flags, nil
}

// Parse accepts both the raw "<workchain>:<hex>" form and the tagged base64 form.
func Parse(s string) (Address, error) {
	if strings.Contains(s, rawSeparator) {
		return ParseRaw(s)
	}

	addr, _, err := ParseTagged(s)
	return addr, err
}

func ParseRaw(s string) (Address, error) {
	wc, id, ok := strings.Cut(s, rawSeparator)
	if !ok {
		return Address{}, errors.Wrap(ErrInvalidAddressFormat, "missing workchain separator")
	}

	workchain, err := strconv.ParseInt(wc, 10, 32)
	if err != nil {
		return Address{}, errors.Wrapf(ErrInvalidAddressFormat, "bad workchain %q", wc)
	}

	accountID, err := parseAccountID(id)
	if err != nil {
		return Address{}, err
	}

	return Address{Workchain: int32(workchain), AccountID: accountID}, nil
}

// ParseTagged decodes the 48-character base64 form in either alphabet and
// verifies its checksum before looking at the tag.
func ParseTagged(s string) (Address, Flags, error) {
	if len(s) != taggedEncodedLength {
		return Address{}, Flags{}, errors.Wrapf(ErrInvalidAddressFormat, "expected %d characters, got %d", taggedEncodedLength, len(s))
	}

	alphabet := encoding.DetectBase64(s)
	raw, err := encoding.GetCodec(alphabet).Decode(s)
	if err != nil {
		return Address{}, Flags{}, errors.Wrap(ErrInvalidAddressFormat, err.Error())
	}
	if len(raw) != taggedLength {
		return Address{}, Flags{}, errors.Wrapf(ErrInvalidAddressFormat, "expected %d bytes, got %d", taggedLength, len(raw))
	}

	expected := checksum(raw[:taggedPayloadLength])
	if actual := binary.BigEndian.Uint16(raw[taggedPayloadLength:]); actual != expected {
		return Address{}, Flags{}, errors.Wrapf(ErrInvalidChecksum, "expected 0x%04x, got 0x%04x", expected, actual)
	}

	flags, err := flagsFromTag(raw[0])
	if err != nil {
		return Address{}, Flags{}, err
	}
	flags.URLSafe = alphabet == encoding.TypeBase64Url

	addr := Address{Workchain: int32(int8(raw[1]))}
	copy(addr.AccountID[:], raw[2:taggedPayloadLength])

	return addr, flags, nil
}

func parseAccountID(s string) ([AccountIDLength]byte, error) {
	var id [AccountIDLength]byte
	if len(s) != AccountIDLength*2 {
		return id, errors.Wrapf(ErrInvalidAddressFormat, "account id must be %d hex characters, got %d", AccountIDLength*2, len(s))
	}

	raw, err := hexCodec.Decode(s)
	if err != nil {
		return id, errors.Wrap(ErrInvalidAddressFormat, err.Error())
	}
	copy(id[:], raw)

	return id, nil
}

func checksum(data []byte) uint16 {
	return crc16.Checksum(data, checksumTable)
}

// Raw renders the address as "<workchain>:<lowercase hex>".
func (a Address) Raw() string {
	return fmt.Sprintf("%d%s%s", a.Workchain, rawSeparator, a.AccountIDHex())
}

func (a Address) AccountIDHex() string {
	return hexCodec.Encode(a.AccountID[:])
}

func (a Address) String() string {
	return a.Raw()
}

func (a Address) Equal(other Address) bool {
	return a.Workchain == other.Workchain && a.AccountID == other.AccountID
}

// Tagged renders the checksum-protected base64 form. The workchain must fit
// a signed byte.
func (a Address) Tagged(flags Flags) (string, error) {
	if a.Workchain < math.MinInt8 || a.Workchain > math.MaxInt8 {
		return "", errors.Wrapf(ErrWorkchainOutOfRange, "workchain %d does not fit a signed byte", a.Workchain)
	}

	buf := make([]byte, 0, taggedLength)
	buf = append(buf, flags.Tag(), byte(int8(a.Workchain)))
	buf = append(buf, a.AccountID[:]...)
	buf = binary.BigEndian.AppendUint16(buf, checksum(buf))

	alphabet := encoding.TypeBase64
	if flags.URLSafe {
		alphabet = encoding.TypeBase64Url
	}

	return encoding.GetCodec(alphabet).Encode(buf), nil
}
