// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the decoder.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that resolves a list of options.
//
// Notes:
//   - Options only affect decoding. Storage and arithmetic have no knobs.
//   - Each flag changes behavior and is covered by codec tests.
package sparse

// DuplicatePolicy decides what Decode does when a coordinate appears twice.
type DuplicatePolicy int

const (
	// DuplicateLastWins silently overwrites the earlier value with the later one.
	// A later zero value removes the earlier entry.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject fails decoding with a FormatError wrapping ErrDuplicateEntry.
	DuplicateReject
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDuplicatePolicy keeps the permissive last-write-wins behavior.
	DefaultDuplicatePolicy = DuplicateLastWins

	// DefaultMaxDimension disables the header size limit when 0.
	DefaultMaxDimension = 0
)

const (
	panicMaxDimensionInvalid    = "sparse: WithMaxDimension: n must be >= 0"
	panicDuplicatePolicyInvalid = "sparse: WithDuplicatePolicy: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective decoder configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	duplicates   DuplicatePolicy // DefaultDuplicatePolicy
	maxDimension int             // DefaultMaxDimension (0 = unlimited)
}

// WithDuplicatePolicy selects how repeated coordinates are handled.
// Panics on a value that is not one of the declared policies.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p != DuplicateLastWins && p != DuplicateReject {
		panic(panicDuplicatePolicyInvalid)
	}

	return func(o *Options) { o.duplicates = p }
}

// WithMaxDimension bounds rows= and cols= header values; 0 means unlimited.
// Useful when decoding untrusted files whose header could claim huge shapes.
// Panics when n < 0.
func WithMaxDimension(n int) Option {
	if n < 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *Options) { o.maxDimension = n }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		duplicates:   DefaultDuplicatePolicy,
		maxDimension: DefaultMaxDimension,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
