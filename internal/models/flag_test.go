package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want Flag
	}{
		{"true", 1},
		{"false", 0},
		{"null", 0},
		{"1", 1},
		{"0", 0},
		{"7", 1},
		{`"1"`, 1},
		{`"0"`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			require.Equal(t, tc.want, f)
		})
	}
}

func TestFlagUnmarshalInvalid(t *testing.T) {
	var f Flag
	require.Error(t, json.Unmarshal([]byte(`"sim"`), &f))
}

func TestFlagScan(t *testing.T) {
	var f Flag
	require.NoError(t, f.Scan(int64(3)))
	require.Equal(t, Flag(1), f)

	require.NoError(t, f.Scan(false))
	require.Equal(t, Flag(0), f)

	require.NoError(t, f.Scan(nil))
	require.Equal(t, Flag(0), f)

	require.Error(t, f.Scan(3.14))
}

func TestFlagValueAndBool(t *testing.T) {
	v, err := Flag(1).Value()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
	require.True(t, Flag(1).Bool())
	require.False(t, Flag(0).Bool())
}
