// Package report renders an analysis.Summary as an aligned plain-text
// table for terminals and logs. Solver statuses are always shown, so a
// non-optimal metric is never mistaken for a zero.
package report
