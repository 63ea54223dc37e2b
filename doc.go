// Package recourse is a toolkit for two-stage stochastic optimization —
// from scenario data to solved models and value-of-information metrics.
//
// 🚀 What is recourse?
//
//	A library for decisions under uncertainty, bringing together:
//		• Scenario sets: weighted realizations, mean collapse, tables, YAML
//		• Monte Carlo sampling: normal, uniform, log-normal, Bernoulli draws
//		• Model templates: here-and-now & recourse variables, parameterized
//		  constraints, deterministic & expected objectives
//		• Binding: SAA expansion, mean model, fixed-decision and per-scenario
//		  (hindsight) instances
//		• Solving: in-process simplex plus HiGHS and CBC executables
//		• Analysis: EVM, EVSS, EVPI and the derived VSS / VPI
//
// ✨ Why choose recourse?
//
//   - Declarative – write the template once, bind it four different ways
//   - Deterministic – same inputs, same columns, same answers, every run
//   - Explicit failure modes – infeasible and unbounded are statuses,
//     never silent zeros
//   - Extensible – Solver is an interface; bring your own backend
//
// Everything is organized under five subpackages:
//
//	scenario/ — scenario sets, weights, sampling & YAML loading
//	model/    — templates, binding and the compiled sparse form
//	solve/    — solver backends and the normalized Result
//	analysis/ — the EVM/EVSS/EVPI study and its Summary
//	report/   — plain-text rendering of a Summary
//
// Quick sketch of the flow:
//
//	scenarios ──┐
//	            ├─► bind ──► solve ──► analysis ──► report
//	template  ──┘
//
// Dive into examples/ for the pop-up shop walkthrough, deterministic
// production planning and large-scale SAA sampling.
//
//	go get github.com/recourse-go/recourse
package recourse
