package ui

import (
	"strings"

	"karnaugh/pkg/kmap"
)

// side identifies one edge of a map cell.
type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

// cellEdge is a cell border a group outline runs along.
type cellEdge struct {
	Row, Col int
	Side     side
}

// groupEdges returns the outline of an implicant on the drawn grid. Groups
// that wrap or are reflected fall apart into several on-screen blocks; each
// block gets its own closed outline, so edges at the map border are always
// drawn even when the group continues on the opposite side.
func groupEdges(l kmap.Layout, p kmap.Implicant) []cellEdge {
	in := make(map[[2]int]bool, len(p.Rows)*len(p.Cols))
	for _, r := range p.Rows {
		for _, c := range p.Cols {
			if l.Contains(r, c) {
				in[[2]int{r, c}] = true
			}
		}
	}
	var out []cellEdge
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			if !in[[2]int{r, c}] {
				continue
			}
			if !in[[2]int{r - 1, c}] {
				out = append(out, cellEdge{Row: r, Col: c, Side: sideTop})
			}
			if !in[[2]int{r + 1, c}] {
				out = append(out, cellEdge{Row: r, Col: c, Side: sideBottom})
			}
			if !in[[2]int{r, c - 1}] {
				out = append(out, cellEdge{Row: r, Col: c, Side: sideLeft})
			}
			if !in[[2]int{r, c + 1}] {
				out = append(out, cellEdge{Row: r, Col: c, Side: sideRight})
			}
		}
	}
	return out
}

// wrapExpression breaks a sum of products into lines of at most width
// characters, splitting only between terms. A single term longer than width
// gets a line of its own.
func wrapExpression(expr string, width int) []string {
	if expr == "" {
		return nil
	}
	terms := strings.Split(expr, " + ")
	var lines []string
	line := terms[0]
	for _, t := range terms[1:] {
		next := line + " + " + t
		if width > 0 && len(next) > width {
			lines = append(lines, line+" +")
			line = t
			continue
		}
		line = next
	}
	return append(lines, line)
}
