// Package isospec computes the isotopic fine structure of a chemical
// molecule — it enumerates the high-probability isotopologues of a
// formula, together with their exact masses and occurrence
// probabilities, without ever materializing the full (astronomically
// large) Cartesian product of per-element isotope distributions.
//
// 🧪 What is isospec?
//
//	An allocation-disciplined enumeration engine, single-goroutine by
//	default, that brings together:
//		• Numeric kernel: directed-rounding multinomial log-probabilities
//		• Element marginals: mode, neighbor moves, trek/precalculated/layered forms
//		• Molecule descriptors: formula parsing, ownership, move/copy semantics
//		• Joint generators: ordered, threshold and layered isotopologue streams,
//		  plus an experimental sharded-goroutine threshold partitioner
//
// ✨ Why choose isospec?
//
//   - Streaming, not enumerating — only the high-probability subset is visited
//   - Directed rounding keeps threshold cutoffs sound (no false negatives)
//   - Pure Go core, zero cgo
//   - A CLI and HTTP surface wrap the same streaming core
//
// Under the hood, everything is organized under focused subpackages:
//
//	numeric/          — log-gamma, log-binomial, compensated summation
//	marginal/         — per-element subisotopologue distributions
//	molecule/         — joint descriptor, ownership & copy semantics
//	generator/        — ordered / threshold / layered joint generators
//	formula/          — chemical formula lexer
//	ptable/           — isotope masses & abundances
//	internal/config   — viper-backed configuration
//	internal/logging  — zap-backed structured logging
//	internal/metrics  — Prometheus counters & histograms
//	internal/errorsx  — sentinel-error to HTTP-status mapping
//	internal/server   — gin HTTP API over the streaming core
//	cli/              — Cobra command tree
//	cmd/isospec/      — CLI entry point
//
// Quick example: C2 has two stable carbon isotopes, so its isotopologue
// space has three joint configurations — ¹²C₂, ¹²C¹³C and ¹³C₂ — and an
// ordered generator emits them in that exact order of decreasing
// probability.
//
//	go get github.com/gopherchem/isospec
package isospec
