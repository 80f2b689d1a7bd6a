package solver

import "fmt"

// A Literal packs a variable and its polarity into one dense integer key,
// lit = var<<1|sign. Here the packed form exists only to give the
// Occurrence Index cheap, comparable map keys; there is no array indexed
// by Literal.
type Literal int64

// newLiteral converts a DIMACS-style signed, non-zero integer into a
// Literal.
func newLiteral(n int) Literal {
	if n == 0 {
		panic("solver: 0 is not a valid literal")
	}
	v := n
	neg := n < 0
	if neg {
		v = -v
	}
	lit := Literal(v) << 1
	if neg {
		lit |= 1
	}
	return lit
}

// Variable returns the variable this literal refers to.
func (l Literal) Variable() int { return int(l >> 1) }

// Negated reports whether this literal is the negation of its variable.
func (l Literal) Negated() bool { return l&1 == 1 }

// Complement returns the literal's opposite polarity.
func (l Literal) Complement() Literal { return l ^ 1 }

// Int returns the signed DIMACS encoding of l.
func (l Literal) Int() int {
	v := l.Variable()
	if l.Negated() {
		return -v
	}
	return v
}

func (l Literal) String() string { return fmt.Sprintf("%d", l.Int()) }

func litLess(a, b Literal) bool { return a < b }
