package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFormatTokenAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		decimals *int
		want     string
		wantErr  bool
	}{
		{name: "nft count", value: "3", decimals: nil, want: "3"},
		{name: "zero decimals", value: "42", decimals: intPtr(0), want: "42"},
		{name: "erc20 with 18 decimals", value: "1234500000000000000", decimals: intPtr(18), want: "1.2345"},
		{name: "whole unit", value: "1000000", decimals: intPtr(6), want: "1"},
		{name: "below one unit", value: "5", decimals: intPtr(3), want: "0.005"},
		{name: "beyond uint64", value: "123456789012345678901234567890", decimals: intPtr(18), want: "123456789012.34567890123456789"},
		{name: "empty is zero", value: "", decimals: nil, want: "0"},
		{name: "negative rejected", value: "-1", decimals: nil, wantErr: true},
		{name: "not a number", value: "abc", decimals: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTokenAmount(tt.value, tt.decimals)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
