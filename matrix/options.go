// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

import (
	"io"
	"math/rand/v2"
	"os"
)

// ---------- Defaults (single source of truth) ----------

// DefaultSeed selects a time-derived seed for the per-matrix random generator.
// Any other value passed to WithSeed yields a reproducible Randomize sequence.
const DefaultSeed uint64 = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilOutput = "matrix: WithOutput: writer must be non-nil"
	panicNilRand   = "matrix: WithRand: generator must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	out  io.Writer  // destination of Print, PrintRow, PrintColumn; os.Stdout by default
	seed uint64     // DefaultSeed ⇒ time-derived
	rng  *rand.Rand // explicit generator; overrides seed when non-nil
}

// WithOutput directs Print, PrintRow and PrintColumn to w.
// Panics when w is nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilOutput)
	}

	return func(o *Options) {
		o.out = w
	}
}

// WithSeed makes Randomize reproducible: the matrix draws from a PCG
// generator seeded once with seed. A zero seed restores the default
// time-derived behavior.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand supplies the generator used by Randomize. The generator is owned
// by the matrix afterwards and must not be shared across goroutines.
// Panics when r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) {
		o.rng = r
	}
}

// gatherOptions applies user-provided Option setters on top of defaults and
// resolves the random generator.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: materialize the generator from the seed when none was supplied.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		out:  os.Stdout,
		seed: DefaultSeed,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if o.rng == nil {
		o.rng = newRand(o.seed)
	}

	return o
}

// newRand seeds a PCG generator once. seed == DefaultSeed draws both PCG
// words from the runtime's entropy-seeded global source.
func newRand(seed uint64) *rand.Rand {
	if seed == DefaultSeed {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(seed, seed))
}
