package address

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/Bridgeless-Project/tvm-bridge/pkg/encoding"
	"github.com/stretchr/testify/require"
	tonaddr "github.com/xssnick/tonutils-go/address"
	"gitlab.com/distributed_lab/figure/v3"
)

const (
	rawAddress = "0:ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528"
	accountID  = "ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528"
)

func Test_ToTaggedBase64(t *testing.T) {
	tests := map[string]struct {
		url, test, bounce bool
		expected          string
	}{
		"url, test, bounce": {
			url: true, test: true, bounce: true,
			expected: "kQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KGjN",
		},
		"std, test, bounce": {
			url: false, test: true, bounce: true,
			expected: "kQDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KGjN",
		},
		"url, bounce": {
			url: true, test: false, bounce: true,
			expected: "EQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KNNH",
		},
		"url, test": {
			url: true, test: true, bounce: false,
			expected: "0QDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KDUI",
		},
		"std, bounce": {
			url: false, test: false, bounce: true,
			expected: "EQDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KNNH",
		},
		"std, test": {
			url: false, test: true, bounce: false,
			expected: "0QDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KDUI",
		},
		"std": {
			url: false, test: false, bounce: false,
			expected: "UQDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KI6C",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			encoded, err := ToTaggedBase64(rawAddress, tc.url, tc.test, tc.bounce)
			require.NoError(t, err)
			require.Equal(t, tc.expected, encoded)
			require.Len(t, encoded, taggedEncodedLength)

			// re-encoding an already tagged address keeps the payload
			again, err := ToTaggedBase64(encoded, tc.url, tc.test, tc.bounce)
			require.NoError(t, err)
			require.Equal(t, tc.expected, again)
		})
	}
}

func Test_ToAccountID(t *testing.T) {
	tests := map[string]struct {
		address string
		err     error
	}{
		"raw":                   {address: rawAddress},
		"raw masterchain":       {address: "-1:" + accountID},
		"raw uppercase":         {address: "0:" + strings.ToUpper(accountID)},
		"tagged url":            {address: "kQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KGjN"},
		"tagged std":            {address: "UQDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KI6C"},
		"short hex":             {address: "0:ee65", err: ErrInvalidAddressFormat},
		"not hex":               {address: "0:" + strings.Repeat("zz", 32), err: ErrInvalidAddressFormat},
		"garbage":               {address: "definitely not an address", err: ErrInvalidAddressFormat},
		"empty":                 {address: "", err: ErrInvalidAddressFormat},
		"tagged wrong checksum": {address: "kQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KGjM", err: ErrInvalidChecksum},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := ToAccountID(tc.address)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, accountID, id)
		})
	}
}

func Test_ToHexForm(t *testing.T) {
	tests := map[string]struct {
		address  string
		expected string
		err      error
	}{
		"raw is unchanged": {
			address:  rawAddress,
			expected: rawAddress,
		},
		"tagged basechain": {
			address:  "EQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KNNH",
			expected: rawAddress,
		},
		"tagged masterchain": {
			address:  "Ef_uZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KCwP",
			expected: "-1:" + accountID,
		},
		"raw bad length": {
			address: "0:" + accountID + "00",
			err:     ErrInvalidAddressFormat,
		},
		"tagged mixed alphabets": {
			address: "kQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp/f1KGjN",
			err:     ErrInvalidAddressFormat,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			hexForm, err := ToHexForm(tc.address)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, hexForm)
		})
	}
}

func Test_TagValues(t *testing.T) {
	tests := map[string]struct {
		flags Flags
		tag   byte
	}{
		"bounceable":          {flags: Flags{Bounceable: true}, tag: 0x11},
		"non-bounceable":      {flags: Flags{}, tag: 0x51},
		"bounceable test":     {flags: Flags{Bounceable: true, Testnet: true}, tag: 0x91},
		"non-bounceable test": {flags: Flags{Testnet: true}, tag: 0xD1},
		"url does not matter": {flags: Flags{URLSafe: true, Bounceable: true}, tag: 0x11},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.tag, tc.flags.Tag())

			flags, err := flagsFromTag(tc.tag)
			require.NoError(t, err)
			require.Equal(t, tc.flags.Bounceable, flags.Bounceable)
			require.Equal(t, tc.flags.Testnet, flags.Testnet)
		})
	}
}

func Test_RoundTrip(t *testing.T) {
	for _, wc := range []int32{-128, -1, 0, 1, 127} {
		var addr Address
		addr.Workchain = wc
		_, err := rand.Read(addr.AccountID[:])
		require.NoError(t, err)

		for _, flags := range allFlags() {
			tagged, err := addr.Tagged(flags)
			require.NoError(t, err)

			hexForm, err := ToHexForm(tagged)
			require.NoError(t, err)
			require.Equal(t, addr.Raw(), hexForm)

			decoded, decodedFlags, err := ParseTagged(tagged)
			require.NoError(t, err)
			require.True(t, addr.Equal(decoded))
			require.Equal(t, flags.Bounceable, decodedFlags.Bounceable)
			require.Equal(t, flags.Testnet, decodedFlags.Testnet)
		}
	}
}

func Test_AlphabetOnlyDiffers(t *testing.T) {
	url, err := ToTaggedBase64(rawAddress, true, true, true)
	require.NoError(t, err)
	std, err := ToTaggedBase64(rawAddress, false, true, true)
	require.NoError(t, err)

	require.NotEqual(t, url, std)
	require.Equal(t, std, strings.NewReplacer("-", "+", "_", "/").Replace(url))

	urlRaw, err := encoding.GetCodec(encoding.TypeBase64Url).Decode(url)
	require.NoError(t, err)
	stdRaw, err := encoding.GetCodec(encoding.TypeBase64).Decode(std)
	require.NoError(t, err)
	require.Equal(t, stdRaw, urlRaw)
}

func Test_ChecksumSensitivity(t *testing.T) {
	codec := encoding.GetCodec(encoding.TypeBase64)

	valid, err := ToTaggedBase64(rawAddress, false, false, true)
	require.NoError(t, err)
	raw, err := codec.Decode(valid)
	require.NoError(t, err)

	for i := 0; i < taggedPayloadLength; i++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := append([]byte(nil), raw...)
			corrupted[i] ^= 1 << bit

			_, _, err = ParseTagged(codec.Encode(corrupted))
			require.ErrorIs(t, err, ErrInvalidChecksum, "byte %d bit %d", i, bit)
		}
	}
}

func Test_UnknownTag(t *testing.T) {
	buf := []byte{0x22, 0x00}
	buf = append(buf, make([]byte, AccountIDLength)...)
	sum := checksum(buf)
	buf = append(buf, byte(sum>>8), byte(sum))

	_, _, err := ParseTagged(encoding.GetCodec(encoding.TypeBase64).Encode(buf))
	require.ErrorIs(t, err, ErrInvalidAddressFormat)
}

func Test_WorkchainOutOfRange(t *testing.T) {
	tests := map[string]struct {
		address string
		err     error
	}{
		"fits":          {address: "-128:" + accountID},
		"too big":       {address: "128:" + accountID, err: ErrWorkchainOutOfRange},
		"too small":     {address: "-129:" + accountID, err: ErrWorkchainOutOfRange},
		"not int32":     {address: "4294967296:" + accountID, err: ErrInvalidAddressFormat},
		"not a number":  {address: "main:" + accountID, err: ErrInvalidAddressFormat},
		"empty chain":   {address: ":" + accountID, err: ErrInvalidAddressFormat},
		"large but i32": {address: "2147483647:" + accountID, err: ErrWorkchainOutOfRange},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ToTaggedBase64(tc.address, true, false, true)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func Test_TonutilsCompatibility(t *testing.T) {
	addr, err := ParseRaw(rawAddress)
	require.NoError(t, err)

	for _, flags := range allFlags() {
		if !flags.URLSafe {
			continue
		}

		tagged, err := addr.Tagged(flags)
		require.NoError(t, err)

		parsed, err := tonaddr.ParseAddr(tagged)
		require.NoError(t, err)

		back, backFlags, err := FromTonutils(parsed)
		require.NoError(t, err)
		require.True(t, addr.Equal(back))
		require.Equal(t, flags, backFlags)

		converted, err := addr.ToTonutils(flags)
		require.NoError(t, err)
		require.Equal(t, tagged, converted.String())
	}
}

func allFlags() []Flags {
	var res []Flags
	for _, url := range []bool{false, true} {
		for _, test := range []bool{false, true} {
			for _, bounce := range []bool{false, true} {
				res = append(res, Flags{URLSafe: url, Testnet: test, Bounceable: bounce})
			}
		}
	}

	return res
}

func Test_Hook(t *testing.T) {
	tests := map[string]struct {
		value interface{}
		raw   string
		err   bool
	}{
		"raw form": {
			value: "-1:ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528",
			raw:   "-1:ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528",
		},
		"tagged form": {
			value: "EQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KNNH",
			raw:   "0:ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528",
		},
		"bad checksum": {
			value: "EQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KNNI",
			err:   true,
		},
		"not a string": {
			value: 42,
			err:   true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg struct {
				Wallet Address `fig:"wallet,required"`
			}

			err := figure.Out(&cfg).
				From(map[string]interface{}{"wallet": tc.value}).
				With(figure.BaseHooks, Hook).
				Please()
			if tc.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.raw, cfg.Wallet.Raw())
		})
	}
}
