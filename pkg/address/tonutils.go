package address

import (
	"math"

	"github.com/pkg/errors"
	tonaddr "github.com/xssnick/tonutils-go/address"
)

// ToTonutils converts the address into the tonutils-go representation with
// the given tag flags applied.
func (a Address) ToTonutils(flags Flags) (*tonaddr.Address, error) {
	if a.Workchain < math.MinInt8 || a.Workchain > math.MaxInt8 {
		return nil, errors.Wrapf(ErrWorkchainOutOfRange, "workchain %d does not fit a signed byte", a.Workchain)
	}

	addr := tonaddr.NewAddress(0, byte(int8(a.Workchain)), append([]byte(nil), a.AccountID[:]...))

	return addr.Bounce(flags.Bounceable).Testnet(flags.Testnet), nil
}

func FromTonutils(addr *tonaddr.Address) (Address, Flags, error) {
	if addr == nil {
		return Address{}, Flags{}, errors.Wrap(ErrInvalidAddressFormat, "nil address")
	}

	data := addr.Data()
	if len(data) != AccountIDLength {
		return Address{}, Flags{}, errors.Wrapf(ErrInvalidAddressFormat, "expected %d account id bytes, got %d", AccountIDLength, len(data))
	}

	res := Address{Workchain: addr.Workchain()}
	copy(res.AccountID[:], data)

	return res, Flags{
		URLSafe:    true,
		Testnet:    addr.IsTestnetOnly(),
		Bounceable: addr.IsBounceable(),
	}, nil
}
