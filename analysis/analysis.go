package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/recourse-go/recourse/model"
	"github.com/recourse-go/recourse/scenario"
	"github.com/recourse-go/recourse/solve"
)

// Evaluate runs the three-model study for tmpl over set and derives
// VSS and VPI. All solves use solver; infeasible or unbounded outcomes
// are recorded per metric (Value NaN, Status set) rather than failing
// the run. Solver crashes, bind failures and context expiry do fail it.
//
// Contracts:
//   - tmpl, set and solver are never mutated; repeated calls with the
//     same inputs produce the same Summary.
//   - returns ErrInconsistent when all three metrics are optimal yet
//     violate the monotonicity chain beyond tolerance.
func Evaluate(ctx context.Context, tmpl *model.Template, params map[string]float64,
	set *scenario.Set, solver solve.Solver, opts ...Option) (*Summary, error) {
	if tmpl == nil {
		return nil, ErrNilTemplate
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if set == nil || set.Len() == 0 {
		return nil, model.ErrNoScenarios
	}
	cfg := gatherOptions(opts)

	s := &Summary{
		Model:     tmpl.Name(),
		Sense:     tmpl.Sense(),
		Scenarios: set.Len(),
	}

	// Stochastic model: the SAA optimum and its first-stage decision.
	stoch, err := bindAndSolve(ctx, solver, cfg, "stochastic", func() (*model.Bound, error) {
		return tmpl.Bind(params, set)
	})
	if err != nil {
		return nil, err
	}
	s.EVSS = metric(stoch)
	s.HereAndNow = firstStage(stoch)

	// Mean model, then its decision re-priced against the true set.
	mean, err := bindAndSolve(ctx, solver, cfg, "mean", func() (*model.Bound, error) {
		return tmpl.BindMean(params, set)
	})
	if err != nil {
		return nil, err
	}
	s.MeanDecision = firstStage(mean)
	if mean.IsOptimal() {
		repriced, rerr := bindAndSolve(ctx, solver, cfg, "mean decision", func() (*model.Bound, error) {
			return tmpl.BindFixed(params, set, s.MeanDecision)
		})
		if rerr != nil {
			return nil, rerr
		}
		s.EVM = metric(repriced)
	} else {
		// No mean decision to evaluate; EVM inherits the failure mode.
		s.EVM = metric(mean)
	}

	if err = hindsight(ctx, tmpl, params, set, solver, cfg, s); err != nil {
		return nil, err
	}

	s.VSS = improvement(s.Sense, s.EVM, s.EVSS)
	s.VPI = improvement(s.Sense, s.EVSS, s.EVPI)

	if err = checkChain(s); err != nil {
		return nil, err
	}

	return s, nil
}

// hindsight solves one deterministic model per scenario, up to
// cfg.parallel at a time, and folds the probability-weighted optima
// into s.EVPI.
func hindsight(ctx context.Context, tmpl *model.Template, params map[string]float64,
	set *scenario.Set, solver solve.Solver, cfg *config, s *Summary) error {
	n := set.Len()
	results := make([]*solve.Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			sc := set.At(i)
			res, err := bindAndSolve(gctx, solver, cfg, fmt.Sprintf("scenario %q", sc.ID), func() (*model.Bound, error) {
				return tmpl.BindScenario(params, sc)
			})
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.Hindsight = make(map[string]Metric, n)
	probs := make([]float64, n)
	objs := make([]float64, n)
	allOptimal := true
	for i := 0; i < n; i++ {
		sc := set.At(i)
		m := metric(results[i])
		s.Hindsight[sc.ID] = m
		probs[i] = sc.Probability
		objs[i] = m.Value
		if !m.OK() {
			allOptimal = false
			s.EVPI = Metric{Value: math.NaN(), Status: m.Status}
		}
	}
	if allOptimal {
		s.EVPI = Metric{Value: floats.Dot(probs, objs), Status: solve.StatusOptimal}
	}

	return nil
}

// bindAndSolve compiles one instance and runs the solver on it, tagging
// failures with the stage label.
func bindAndSolve(ctx context.Context, solver solve.Solver, cfg *config,
	label string, bind func() (*model.Bound, error)) (*solve.Result, error) {
	b, err := bind()
	if err != nil {
		return nil, fmt.Errorf("analysis: bind %s model: %w", label, err)
	}
	res, err := solver.Solve(ctx, b, cfg.solveOpts...)
	if err != nil {
		return nil, fmt.Errorf("analysis: solve %s model: %w", label, err)
	}

	return res, nil
}

// firstStage extracts the here-and-now column values of an optimal
// result; nil when the solve was not optimal.
func firstStage(res *solve.Result) map[string]float64 {
	if !res.IsOptimal() {
		return nil
	}

	out := make(map[string]float64)
	for key, v := range res.VarValues() {
		// Recourse columns carry a "[scenario]" suffix.
		if !strings.ContainsRune(key, '[') {
			out[key] = v
		}
	}

	return out
}

// checkChain enforces EVM <= EVSS <= EVPI for maximization (reversed
// for minimization) whenever all three metrics are optimal.
func checkChain(s *Summary) error {
	if !s.EVM.OK() || !s.EVSS.OK() || !s.EVPI.OK() {
		return nil
	}

	tol := chainTol * (1 + math.Abs(s.EVSS.Value))
	if s.VSS < -tol {
		return fmt.Errorf("%w: EVM %v vs EVSS %v", ErrInconsistent, s.EVM.Value, s.EVSS.Value)
	}
	if s.VPI < -tol {
		return fmt.Errorf("%w: EVSS %v vs EVPI %v", ErrInconsistent, s.EVSS.Value, s.EVPI.Value)
	}

	return nil
}
