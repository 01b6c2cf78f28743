package kmap

import "strconv"

// GrayCode returns the binary-reflected Gray code of the given width in
// traversal order. Entry i labels row or column i. GrayCode(0) is [""].
func GrayCode(bits int) []string {
	if bits <= 0 {
		return []string{""}
	}
	seq := make([]string, 1<<bits)
	for i := range seq {
		seq[i] = formatBits(grayWord(i), bits)
	}
	return seq
}

// MintermToPosition returns the cell of an n-variable map holding m.
func MintermToPosition(m, n int) (row, col int) {
	return layoutFor(n).Position(m)
}

// PositionToMinterm returns the minterm stored at (row, col) of an
// n-variable map.
func PositionToMinterm(row, col, n int) int {
	return layoutFor(n).Minterm(row, col)
}

// grayWord is the Gray code word at position i.
func grayWord(i int) uint {
	u := uint(i)
	return u ^ u>>1
}

// grayRank is the inverse of grayWord: the position of word w.
func grayRank(w uint) int {
	x := w
	for s := w >> 1; s != 0; s >>= 1 {
		x ^= s
	}
	return int(x)
}

func formatBits(v uint, width int) string {
	s := strconv.FormatUint(uint64(v), 2)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
