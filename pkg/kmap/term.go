package kmap

import "strings"

// FormatTerm renders the product of the variables fixed by mask. Variable i
// of names maps to bit len(names)-1-i. A fixed bit set in value renders the
// plain name, a cleared one the complemented name ("A'"). An empty mask is
// the constant "1".
func FormatTerm(mask, value uint, names []string) string {
	var b strings.Builder
	n := len(names)
	for i, name := range names {
		bit := uint(1) << (n - 1 - i)
		if mask&bit == 0 {
			continue
		}
		b.WriteString(name)
		if value&bit == 0 {
			b.WriteByte('\'')
		}
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}

// FormatMinterm renders minterm m as a full-length product.
func FormatMinterm(m int, names []string) string {
	full := uint(1)<<len(names) - 1
	return FormatTerm(full, uint(m)&full, names)
}

// CanonicalSOP renders the unminimized sum of the given minterms.
func CanonicalSOP(minterms []int, names []string) string {
	if len(minterms) == 0 {
		return "0"
	}
	terms := make([]string, len(minterms))
	for i, m := range minterms {
		terms[i] = FormatMinterm(m, names)
	}
	return strings.Join(terms, " + ")
}
