package decimal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmpDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"000", "0", 0},
		{"007", "7", 0},
		{"10", "9", 1},
		{"9", "10", -1},
		{"123", "124", -1},
		{"999", "0999", 0},
		{"", "0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cmpDigits(tt.a, tt.b), "cmpDigits(%q, %q)", tt.a, tt.b)
	}
}

func TestAddDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "9", "10"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"0012", "0030", "42"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, addDigits(tt.a, tt.b), "addDigits(%q, %q)", tt.a, tt.b)
	}
}

func TestSubDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"10", "1", "9"},
		{"1000", "1", "999"},
		{"1000", "1000", "0"},
		{"0050", "7", "43"},
		{"1111111110111111111011111111100", "987654321098765432109876543210", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, subDigits(tt.a, tt.b), "subDigits(%q, %q)", tt.a, tt.b)
	}
}

func TestMulDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"0", "12345", "0"},
		{"12345", "0", "0"},
		{"1", "1", "1"},
		{"9", "9", "81"},
		{"99", "99", "9801"},
		{"12345", "6789", "83810205"},
		{"000123", "10", "1230"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mulDigits(tt.a, tt.b), "mulDigits(%q, %q)", tt.a, tt.b)
	}
}

func TestDivDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"0", "7", "0"},
		{"7", "7", "1"},
		{"6", "7", "0"},
		{"100", "7", "14"},
		{"1000000", "3", "333333"},
		{"83810205", "6789", "12345"},
		{"83810206", "6789", "12345"},
		{"1000000000000000000000", "9", "111111111111111111111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, divDigits(tt.a, tt.b), "divDigits(%q, %q)", tt.a, tt.b)
	}
}

func TestKernel_AgainstBigInt(t *testing.T) {
	t.Parallel()

	operands := []string{
		"0", "1", "7", "10", "99", "1000", "123456789", "98765432109876543210",
		"314159265358979323846264338327950288419716939937510",
	}
	for _, a := range operands {
		for _, b := range operands {
			x, _ := new(big.Int).SetString(a, 10)
			y, _ := new(big.Int).SetString(b, 10)

			assert.Equal(t, x.Cmp(y), cmpDigits(a, b), "cmp %s %s", a, b)
			assert.Equal(t, new(big.Int).Add(x, y).String(), addDigits(a, b), "add %s %s", a, b)
			assert.Equal(t, new(big.Int).Mul(x, y).String(), mulDigits(a, b), "mul %s %s", a, b)
			if x.Cmp(y) >= 0 {
				assert.Equal(t, new(big.Int).Sub(x, y).String(), subDigits(a, b), "sub %s %s", a, b)
			}
			if y.Sign() != 0 {
				assert.Equal(t, new(big.Int).Quo(x, y).String(), divDigits(a, b), "div %s %s", a, b)
			}
		}
	}
}
