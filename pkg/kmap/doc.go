// Package kmap minimizes Boolean functions of two to six variables drawn on a
// Karnaugh map.
//
// A Map holds the editable grid of 0, 1 and don't-care cells. Rows carry the
// most significant ⌊n/2⌋ variables and columns the rest, both labelled in
// binary-reflected Gray code so that neighbouring cells, including those
// across the edges of the map, differ in a single variable.
//
// Simplification runs in three steps:
//
//	primes := FindPrimeImplicants(layout, ones, dontCares)
//	idx, err := Greedy().Cover(layout, primes, ones)
//	cover := make([]Implicant, len(idx))
//	for i, p := range idx {
//		cover[i] = primes[p]
//	}
//	expr := Expression(cover)
//
// Simplify runs all three and validates the coverer's selection.
//
// FindPrimeImplicants enumerates every maximal rectangular group of 1 and X
// cells, the default Coverer keeps the essential prime implicants and then
// greedily adds the implicant covering the most remaining minterms. The
// greedy pass is a heuristic: it does not promise a globally minimal sum of
// products. Exact strategies can be plugged in through RegisterCoverer.
//
// Minimizer bundles a Map, a Coverer and a logger behind the operations used
// by front-ends.
package kmap
