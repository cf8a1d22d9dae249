// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for root-view construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an explicit seed or a fresh source.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Derived views inherit the policy of their root; Copy preserves it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation on ingestion and Set.
	// Off by default: element-wise arithmetic follows plain IEEE semantics.
	DefaultValidateNaNInf = false

	// DefaultMean is the mean of samples drawn by NewRandom.
	DefaultMean = 0.0

	// DefaultStdDev is the standard deviation of samples drawn by NewRandom.
	DefaultStdDev = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNormalInvalid = "matrix: WithNormal: mu must be finite and sigma finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	seed           uint64  // RNG seed for NewRandom when seeded
	seeded         bool    // false ⇒ a time-seeded source is used
	mu, sigma      float64 // DefaultMean, DefaultStdDev
}

// WithValidateNaNInf rejects NaN and ±Inf at construction and in every Set
// on the view and on views derived from it.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default IEEE policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSeed makes NewRandom reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithNormal sets the distribution NewRandom samples from.
// Panics when mu is non-finite or sigma is not a finite positive number.
func WithNormal(mu, sigma float64) Option {
	if isNonFinite(mu) || isNonFinite(sigma) || sigma <= 0 {
		panic(panicNormalInvalid)
	}

	return func(o *Options) {
		o.mu = mu
		o.sigma = sigma
	}
}

// defaultOptions returns the zero-configuration behavior.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		mu:             DefaultMean,
		sigma:          DefaultStdDev,
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
