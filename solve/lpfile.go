// SPDX-License-Identifier: MIT
// Package solve: CPLEX LP-file serialization for process backends.
// Columns are written under synthetic names x0..x(n-1) and rows as
// r<i>; solution parsers map the names back by index, so no sanitizing
// of user-facing variable names is ever needed.

package solve

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/recourse-go/recourse/model"
)

// writeLP serializes b in CPLEX LP format.
func writeLP(w io.Writer, b *model.Bound) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\ %s (%d cols, %d rows)\n", b.Name(), b.NumVars(), b.NumRows())
	if b.Sense() == model.Maximize {
		fmt.Fprintln(bw, "Maximize")
	} else {
		fmt.Fprintln(bw, "Minimize")
	}
	fmt.Fprintf(bw, " obj:%s\n", lpTerms(objTerms(b)))

	fmt.Fprintln(bw, "Subject To")
	start, index, value := b.CSR()
	for i := 0; i < b.NumRows(); i++ {
		row := b.Row(i)
		terms := make([]lpTerm, 0, start[i+1]-start[i])
		for p := start[i]; p < start[i+1]; p++ {
			terms = append(terms, lpTerm{coef: value[p], col: index[p]})
		}
		if len(terms) == 0 {
			continue // constant row; bind keeps the matrix sparse
		}

		lo, hi := row.Lower, row.Upper
		switch {
		case lo == hi:
			fmt.Fprintf(bw, " r%d:%s = %s\n", i, lpTerms(terms), lpNum(lo))
		case !math.IsInf(hi, 1) && !math.IsInf(lo, -1):
			// Ranged row: two LP rows sharing the index.
			fmt.Fprintf(bw, " r%d_lo:%s >= %s\n", i, lpTerms(terms), lpNum(lo))
			fmt.Fprintf(bw, " r%d_hi:%s <= %s\n", i, lpTerms(terms), lpNum(hi))
		case !math.IsInf(hi, 1):
			fmt.Fprintf(bw, " r%d:%s <= %s\n", i, lpTerms(terms), lpNum(hi))
		default:
			fmt.Fprintf(bw, " r%d:%s >= %s\n", i, lpTerms(terms), lpNum(lo))
		}
	}

	fmt.Fprintln(bw, "Bounds")
	for j := 0; j < b.NumVars(); j++ {
		col := b.Col(j)
		lo, hi := col.Lower, col.Upper
		switch {
		case lo == 0 && math.IsInf(hi, 1):
			// LP-format default, nothing to write.
		case lo == hi:
			fmt.Fprintf(bw, " x%d = %s\n", j, lpNum(lo))
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			fmt.Fprintf(bw, " x%d free\n", j)
		case math.IsInf(lo, -1):
			fmt.Fprintf(bw, " -infinity <= x%d <= %s\n", j, lpNum(hi))
		case math.IsInf(hi, 1):
			fmt.Fprintf(bw, " x%d >= %s\n", j, lpNum(lo))
		default:
			fmt.Fprintf(bw, " %s <= x%d <= %s\n", lpNum(lo), j, lpNum(hi))
		}
	}

	var generals, binaries []int
	for j := 0; j < b.NumVars(); j++ {
		switch b.Col(j).Domain {
		case model.Integer:
			generals = append(generals, j)
		case model.Binary:
			binaries = append(binaries, j)
		}
	}
	writeDomainSection(bw, "Generals", generals)
	writeDomainSection(bw, "Binaries", binaries)

	fmt.Fprintln(bw, "End")

	return bw.Flush()
}

type lpTerm struct {
	coef float64
	col  int
}

// objTerms collects the nonzero objective coefficients. A fully zero
// objective still emits one term so the section is never empty.
func objTerms(b *model.Bound) []lpTerm {
	var terms []lpTerm
	for j := 0; j < b.NumVars(); j++ {
		if c := b.Col(j).Cost; c != 0 {
			terms = append(terms, lpTerm{coef: c, col: j})
		}
	}
	if len(terms) == 0 && b.NumVars() > 0 {
		terms = append(terms, lpTerm{coef: 0, col: 0})
	}

	return terms
}

// lpTerms renders " + 12 x0 - 9 x1".
func lpTerms(terms []lpTerm) string {
	var sb strings.Builder
	for _, t := range terms {
		c := t.coef
		if c < 0 {
			sb.WriteString(" - ")
			c = -c
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(lpNum(c))
		sb.WriteString(" x")
		sb.WriteString(strconv.Itoa(t.col))
	}

	return sb.String()
}

// lpNum formats a finite float the shortest round-trippable way.
func lpNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeDomainSection(w io.Writer, section string, cols []int) {
	if len(cols) == 0 {
		return
	}
	fmt.Fprintln(w, section)
	for _, j := range cols {
		fmt.Fprintf(w, " x%d\n", j)
	}
}
