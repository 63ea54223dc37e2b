// SPDX-License-Identifier: MIT

package model

import "sort"

// Col is one concrete column (variable instance) of a bound model. For a
// recourse variable Scenario holds the scenario ID; for a here-and-now
// variable it is empty.
type Col struct {
	Name     string
	Scenario string
	Domain   Domain
	Lower    float64
	Upper    float64
	Cost     float64
}

// RowMeta is one concrete row of a bound model: constraint name, the
// scenario it was replicated for (empty for deterministic rows) and the
// [Lower, Upper] activity range.
type RowMeta struct {
	Name     string
	Scenario string
	Lower    float64
	Upper    float64
}

// colKey identifies a column by (variable name, scenario ID).
type colKey struct {
	name string
	scen string
}

// Bound is a compiled model instance: a concrete sparse LP/MIP ready for a
// solver backend. Bounds are read-only after bind; solver backends and
// results only ever read them.
type Bound struct {
	name  string
	sense Sense

	cols     []Col
	rows     []RowMeta
	nz       []Nonzero
	colIndex map[colKey]int
	scenIDs  []string
}

// Name returns the template name this instance was bound from.
func (b *Bound) Name() string { return b.name }

// Sense returns the optimization direction.
func (b *Bound) Sense() Sense { return b.sense }

// NumVars returns the number of columns.
func (b *Bound) NumVars() int { return len(b.cols) }

// NumRows returns the number of rows.
func (b *Bound) NumRows() int { return len(b.rows) }

// Col returns the j-th column.
func (b *Bound) Col(j int) Col { return b.cols[j] }

// Row returns the i-th row.
func (b *Bound) Row(i int) RowMeta { return b.rows[i] }

// ColIndex returns the column index of (variable name, scenario ID).
// Here-and-now variables use scenario "".
func (b *Bound) ColIndex(name, scenID string) (int, bool) {
	j, ok := b.colIndex[colKey{name, scenID}]

	return j, ok
}

// ScenarioIDs returns the scenario IDs this instance was expanded over,
// in bind order. Exactly this set was used for row replication and for
// expected-objective weighting.
func (b *Bound) ScenarioIDs() []string {
	cp := make([]string, len(b.scenIDs))
	copy(cp, b.scenIDs)

	return cp
}

// Nonzeros returns a copy of the constraint matrix entries.
func (b *Bound) Nonzeros() []Nonzero {
	cp := make([]Nonzero, len(b.nz))
	copy(cp, b.nz)

	return cp
}

// HasIntegral reports whether any column has an Integer or Binary domain.
// Backends without MIP support use this to refuse the instance up front.
func (b *Bound) HasIntegral() bool {
	for _, c := range b.cols {
		if c.Domain != Continuous {
			return true
		}
	}

	return false
}

// CSR exports the constraint matrix in compressed sparse row form:
// start[i] is the offset of row i's entries in index/value, with a final
// sentinel start[NumRows()] = len(index). Entries within a row are sorted
// by column; duplicate (row, col) entries sum.
func (b *Bound) CSR() (start, index []int, value []float64) {
	sorted := make([]Nonzero, len(b.nz))
	copy(sorted, b.nz)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}

		return sorted[i].Col < sorted[j].Col
	})

	merged := sorted[:0]
	for _, e := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Row == e.Row && merged[n-1].Col == e.Col {
			merged[n-1].Val += e.Val

			continue
		}
		merged = append(merged, e)
	}

	start = make([]int, len(b.rows)+1)
	index = make([]int, len(merged))
	value = make([]float64, len(merged))

	pos := 0
	for i := range b.rows {
		start[i] = pos
		for pos < len(merged) && merged[pos].Row == i {
			index[pos] = merged[pos].Col
			value[pos] = merged[pos].Val
			pos++
		}
	}
	start[len(b.rows)] = pos

	return start, index, value
}

// addCol appends a column and indexes it.
func (b *Bound) addCol(c Col) {
	b.colIndex[colKey{c.Name, c.Scenario}] = len(b.cols)
	b.cols = append(b.cols, c)
}
