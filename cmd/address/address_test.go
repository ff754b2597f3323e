package address

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	rawAddress = "0:ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528"
	bounceable = "EQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KNNH"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(args)

	err := Cmd.Execute()
	return out.String(), err
}

func Test_Commands(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected []string
	}{
		"account id of both forms": {
			args: []string{"account-id", rawAddress, bounceable},
			expected: []string{
				"ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528",
				"ee65d170830136253ad8bd2116a28fcbd4ac462c6f222f49a1505d2fa7f7f528",
			},
		},
		"hex": {
			args:     []string{"hex", bounceable},
			expected: []string{rawAddress},
		},
		"base64 with explicit flags": {
			args:     []string{"base64", "--url-safe=false", "--bounceable=false", rawAddress},
			expected: []string{"UQDuZdFwgwE2JTrYvSEWoo/L1KxGLG8iL0mhUF0vp/f1KI6C"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, strings.Split(strings.TrimSpace(out), "\n"))
		})
	}
}

func Test_Commands_Errors(t *testing.T) {
	_, err := execute(t, "hex", "0:abc")
	require.Error(t, err)

	_, err = execute(t, "account-id")
	require.ErrorContains(t, err, "no address given")
}

func Test_Info(t *testing.T) {
	out, err := execute(t, "info", rawAddress)
	require.NoError(t, err)
	require.Contains(t, out, bounceable)
	require.Contains(t, out, "kQDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KGjN")
	require.Contains(t, out, "0QDuZdFwgwE2JTrYvSEWoo_L1KxGLG8iL0mhUF0vp_f1KDUI")
}

func Test_ConvertAll_KeepsOrder(t *testing.T) {
	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = strings.Repeat("a", i)
	}

	results, err := convertAll(inputs, func(s string) (string, error) { return s + "!", nil })
	require.NoError(t, err)
	for i, res := range results {
		require.Equal(t, inputs[i]+"!", res)
	}
}
