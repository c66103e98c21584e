package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeysPrintsEveryStep(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runKeys(&out, "2*3+4=", false, nil))
	assert.Equal(t, "2  2\n*  2 ×\n3  3 ×\n+  6 +\n4  4 +\n=  10\n", out.String())
}

func TestRunKeysFinal(t *testing.T) {
	cases := map[string]string{
		"5+3=":          "8\n",
		"9/0=":          "0\n",
		"+=":            "0\n",
		"2147483647+1=": "2147483647\n",
		"3=":            "3\n",
	}
	for keys, want := range cases {
		var out bytes.Buffer
		require.NoError(t, runKeys(&out, keys, true, nil), keys)
		assert.Equal(t, want, out.String(), keys)
	}
}

func TestRunKeysRejectsUnknownKey(t *testing.T) {
	var out bytes.Buffer
	err := runKeys(&out, "12a", false, nil)
	require.EqualError(t, err, `unknown key 'a' at position 3`)
	assert.Empty(t, out.String(), "nothing is pressed when the sequence is invalid")
}

func TestKeysCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"keys", "--final", "6/4="})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		keysFinal = false
	})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "1\n", out.String())
}
