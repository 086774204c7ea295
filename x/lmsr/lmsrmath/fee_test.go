package lmsrmath_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
)

func TestEffectivePairFee(t *testing.T) {
	tests := []struct {
		name   string
		fi, fj string
		want   string
	}{
		{"both zero", "0", "0", "0"},
		{"one sided", "0.003", "0", "0.003"},
		{"composed", "0.003", "0.002", "0.004994"},
		{"symmetric", "0.01", "0.01", "0.0199"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lmsrmath.EffectivePairFee(dec(tt.fi), dec(tt.fj))
			require.NoError(t, err)
			requireDecNear(t, dec(tt.want), got, dec("0.000000000001"))
		})
	}
}

func TestEffectivePairFeeBounds(t *testing.T) {
	// Composition never exceeds the sum of the legs and never goes below
	// either leg alone.
	fi, fj := dec("0.05"), dec("0.02")
	got, err := lmsrmath.EffectivePairFee(fi, fj)
	require.NoError(t, err)
	require.True(t, got.GTE(fi))
	require.True(t, got.LTE(fi.Add(fj)))
}

func TestEffectivePairFeeDomain(t *testing.T) {
	_, err := lmsrmath.EffectivePairFee(dec("-0.01"), dec("0.01"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	_, err = lmsrmath.EffectivePairFee(dec("0.01"), sdkmath.LegacyOneDec())
	require.ErrorIs(t, err, lmsrmath.ErrDomain)
}

func TestAfterFee(t *testing.T) {
	got := lmsrmath.AfterFee(dec("100"), dec("0.003"))
	require.True(t, got.Equal(dec("99.7")))

	got = lmsrmath.AfterFee(dec("100"), sdkmath.LegacyZeroDec())
	require.True(t, got.Equal(dec("100")))
}
