package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/recourse-go/recourse/analysis"
	"github.com/recourse-go/recourse/scenario"
)

// ErrNilSummary is returned by Write for a nil summary.
var ErrNilSummary = errors.New("report: nil summary")

// Write renders s to w. The layout is stable across runs: map-backed
// sections are sorted by name.
func Write(w io.Writer, s *analysis.Summary) error {
	if s == nil {
		return ErrNilSummary
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "model\t%s (%s, %d scenarios)\n", s.Model, s.Sense, s.Scenarios)
	fmt.Fprintln(tw, "\t")

	fmt.Fprintln(tw, "metric\tvalue\tstatus")
	writeMetric(tw, "EVM", s.EVM)
	writeMetric(tw, "EVSS", s.EVSS)
	writeMetric(tw, "EVPI", s.EVPI)
	writeDerived(tw, "VSS", s.VSS)
	writeDerived(tw, "VPI", s.VPI)

	writeDecision(tw, "here-and-now decision", s.HereAndNow)
	writeDecision(tw, "mean-model decision", s.MeanDecision)

	if len(s.Hindsight) > 0 {
		fmt.Fprintln(tw, "\t")
		fmt.Fprintln(tw, "scenario\thindsight\tstatus")
		for _, id := range sortedKeys(s.Hindsight) {
			writeMetric(tw, id, s.Hindsight[id])
		}
	}

	return tw.Flush()
}

// WriteScenarios renders a scenario set as one row per scenario with a
// column per parameter. Scenarios keep set order; parameter columns are
// sorted by name.
func WriteScenarios(w io.Writer, set *scenario.Set) error {
	if set == nil {
		return scenario.ErrEmptySet
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	names := set.ParamNames()
	fmt.Fprint(tw, "scenario\tprobability")
	for _, name := range names {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)

	for i := 0; i < set.Len(); i++ {
		sc := set.At(i)
		fmt.Fprintf(tw, "%s\t%s", sc.ID, num(sc.Probability))
		for _, name := range names {
			if v, ok := sc.Param(name); ok {
				fmt.Fprintf(tw, "\t%s", num(v))
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// String renders s via Write.
func String(s *analysis.Summary) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, s); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func writeMetric(w io.Writer, name string, m analysis.Metric) {
	if !m.OK() {
		fmt.Fprintf(w, "%s\t-\t%s\n", name, m.Status)

		return
	}
	fmt.Fprintf(w, "%s\t%s\toptimal\n", name, num(m.Value))
}

func writeDerived(w io.Writer, name string, v float64) {
	if math.IsNaN(v) {
		fmt.Fprintf(w, "%s\t-\tundefined\n", name)

		return
	}
	fmt.Fprintf(w, "%s\t%s\t\n", name, num(v))
}

func writeDecision(w io.Writer, title string, values map[string]float64) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintln(w, "\t")
	fmt.Fprintln(w, title)
	for _, name := range sortedKeys(values) {
		fmt.Fprintf(w, "%s\t%s\n", name, num(values[name]))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
