package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"15.505", "15.51"},
		{"15.504", "15.5"},
		{"0", "0"},
		{"-3.005", "-3.01"},
	}
	for _, tc := range cases {
		in, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, Round2(in).String())
	}
}

func TestFromFloatAvoidsBinaryDrift(t *testing.T) {
	// 0.1 + 0.2 in binary floats is 0.30000000000000004.
	sum := FromFloat(0.1).Add(FromFloat(0.2))
	assert.True(t, sum.Equal(decimal.RequireFromString("0.3")))
}
