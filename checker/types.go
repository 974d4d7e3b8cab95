package checker

import "math"

// Var is an internal, 0-based variable index.
type Var int

// Lit is the checker's internal literal encoding: bit 0 is the sign, the
// remaining bits are the internal variable index. Negation flips bit 0.
type Lit int

// Negation returns the complementary literal.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Var returns the internal variable this literal is built from.
func (l Lit) Var() Var {
	return Var(l >> 1)
}

// Sign returns 0 for a positive literal, 1 for a negated one.
func (l Lit) Sign() int {
	return int(l & 1)
}

// importLiteral converts an external DIMACS-style literal into its
// internal encoding, rejecting the two invalid-usage boundary values.
func importLiteral(e int) Lit {
	if e == 0 {
		panic(newInvalidUsage("add-literal", "literal must not be zero"))
	}
	if e == math.MinInt32 {
		panic(newInvalidUsage("add-literal", "literal must not be INT_MIN"))
	}
	v := e
	sign := 0
	if v < 0 {
		sign = 1
		v = -v
	}
	return Lit(2*(v-1) + sign)
}

// exportLiteral is the inverse of importLiteral, used for diagnostics.
func exportLiteral(l Lit) int {
	v := int(l.Var()) + 1
	if l.Sign() == 1 {
		return -v
	}
	return v
}
