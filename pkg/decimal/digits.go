package decimal

import "strings"

// Unsigned digit-string kernel. Every function here works on plain base-10
// digit strings without sign or decimal point. Inputs may carry leading
// zeros; outputs never do and are "0" at minimum.

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

func trimDigits(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	if s == "" {
		return "0"
	}
	return s[i:]
}

// cmpDigits returns -1, 0 or 1 as a is less than, equal to or greater than b.
func cmpDigits(a, b string) int {
	a, b = trimDigits(a), trimDigits(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

func addDigits(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	buf := make([]byte, len(a)+1)
	var carry byte
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		sum := a[i] - '0' + carry
		if j >= 0 {
			sum += b[j] - '0'
		}
		buf[i+1] = sum%10 + '0'
		carry = sum / 10
	}
	buf[0] = carry + '0'
	return trimDigits(string(buf))
}

// subDigits returns a - b. The caller guarantees a >= b.
func subDigits(a, b string) string {
	a, b = trimDigits(a), trimDigits(b)
	buf := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		diff := int(a[i]-'0') - borrow
		if j >= 0 {
			diff -= int(b[j] - '0')
		}
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		buf[i] = byte(diff) + '0'
	}
	return trimDigits(string(buf))
}

// mulDigits is schoolbook multiplication accumulating partial products
// into a buffer of len(a)+len(b) positions.
func mulDigits(a, b string) string {
	a, b = trimDigits(a), trimDigits(b)
	if a == "0" || b == "0" {
		return "0"
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - '0')
		for j := len(b) - 1; j >= 0; j-- {
			sum := da*int(b[j]-'0') + acc[i+j+1]
			acc[i+j+1] = sum % 10
			acc[i+j] += sum / 10
		}
	}
	buf := make([]byte, len(acc))
	for i, d := range acc {
		buf[i] = byte(d) + '0'
	}
	return trimDigits(string(buf))
}

// divDigits returns the integer quotient of a / b using long division.
// Each quotient digit is found by trial against the multiples 0..9 of b.
// The caller guarantees b is not zero.
func divDigits(a, b string) string {
	a, b = trimDigits(a), trimDigits(b)
	var multiples [10]string
	for k := range multiples {
		multiples[k] = mulDigits(b, string(rune('0'+k)))
	}

	quo := make([]byte, 0, len(a))
	rem := "0"
	for i := range len(a) {
		rem = trimDigits(rem + a[i:i+1])
		q := 0
		for q < 9 && cmpDigits(multiples[q+1], rem) <= 0 {
			q++
		}
		quo = append(quo, byte('0'+q))
		rem = subDigits(rem, multiples[q])
	}
	return trimDigits(string(quo))
}
