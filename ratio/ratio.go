// Package ratio converts finite floats to and from reduced integer
// fractions, the exact textual form BON uses for floating-point numbers.
package ratio

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/brimdata/bon/bonerr"
)

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

// ToFraction returns num and den, reduced to lowest terms with den > 0,
// such that num/den converts back to exactly f.  It fails with a
// bonerr.NotANumber error when f is NaN or infinite.
//
//	f == 0       (0, 1)
//	f == 1       (1, 1)
//	0 < f < 1    the reciprocal fraction of 1/f
//	f >= 1       f scaled by 10 until integral, divided by the GCD
//	f < 0        the fraction of -f with the numerator negated
func ToFraction(f float64) (*big.Int, *big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, nil, bonerr.E(bonerr.NotANumber, "cannot convert %v to a fraction", f)
	}
	if f < 0 {
		num, den := fraction(-f)
		return num.Neg(num), den, nil
	}
	num, den := fraction(f)
	return num, den, nil
}

func fraction(f float64) (*big.Int, *big.Int) {
	switch {
	case f == 0:
		return big.NewInt(0), big.NewInt(1)
	case f == 1:
		return big.NewInt(1), big.NewInt(1)
	case f < 1:
		if inv := 1 / f; !math.IsInf(inv, 0) {
			p, q := fraction(inv)
			// 1/f is rounded so the swapped fraction may land on a
			// neighboring float.  Fall back to scaling f directly.
			if converts(q, p, f) {
				return q, p
			}
		}
	}
	return reduce(scaleUp(f))
}

// scaleUp multiplies f and a denominator accumulator by 10 until the scaled
// value is integral.  The scaling works on the shortest decimal
// representation of f, so it is exact and bounded by the number of
// fractional digits of that representation.
func scaleUp(f float64) (*big.Int, *big.Int) {
	digits := strconv.FormatFloat(f, 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	num, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		panic("ratio: bad decimal " + digits)
	}
	den := new(big.Int).Exp(ten, big.NewInt(int64(len(frac))), nil)
	return num, den
}

func reduce(num, den *big.Int) (*big.Int, *big.Int) {
	gcd := new(big.Int).GCD(nil, nil, num, den)
	if gcd.Sign() == 0 || gcd.Cmp(one) == 0 {
		return num, den
	}
	return num.Quo(num, gcd), den.Quo(den, gcd)
}

func converts(num, den *big.Int, f float64) bool {
	g, _ := new(big.Rat).SetFrac(num, den).Float64()
	return g == f
}

// FromFraction returns the float nearest to num/den.  A zero denominator is
// a bonerr.BadSyntax error and a quotient beyond the float64 range is a
// bonerr.NotANumber error.
func FromFraction(num, den *big.Int) (float64, error) {
	if den.Sign() == 0 {
		return 0, bonerr.E(bonerr.BadSyntax, "zero denominator in %s/%s", num, den)
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	if math.IsInf(f, 0) {
		return 0, bonerr.E(bonerr.NotANumber, "%s/%s overflows a float", num, den)
	}
	return f, nil
}

// FromInt returns the float nearest to the integer n, failing like
// FromFraction when n is beyond the float64 range.
func FromInt(n *big.Int) (float64, error) {
	return FromFraction(n, one)
}
