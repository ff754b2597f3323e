package address

import (
	"strings"
)

// ToAccountID returns the bare 64-character hex account id of the address.
// The workchain of a raw address is not validated.
func ToAccountID(address string) (string, error) {
	if _, id, ok := strings.Cut(address, rawSeparator); ok {
		accountID, err := parseAccountID(id)
		if err != nil {
			return "", err
		}

		return hexCodec.Encode(accountID[:]), nil
	}

	addr, _, err := ParseTagged(address)
	if err != nil {
		return "", err
	}

	return addr.AccountIDHex(), nil
}

// ToHexForm normalizes the address to "<workchain>:<hex>". Raw input is
// returned as is once its account id is validated.
func ToHexForm(address string) (string, error) {
	if _, id, ok := strings.Cut(address, rawSeparator); ok {
		if _, err := parseAccountID(id); err != nil {
			return "", err
		}

		return address, nil
	}

	addr, _, err := ParseTagged(address)
	if err != nil {
		return "", err
	}

	return addr.Raw(), nil
}

func ToTaggedBase64(address string, urlSafe, testnet, bounceable bool) (string, error) {
	addr, err := Parse(address)
	if err != nil {
		return "", err
	}

	return addr.Tagged(Flags{
		URLSafe:    urlSafe,
		Testnet:    testnet,
		Bounceable: bounceable,
	})
}
