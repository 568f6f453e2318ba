// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for array construction.
// This file defines:
//   - BorrowPolicy (Checked / Unchecked dangling-view detection),
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that applies setters on top of documented defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - The policy is fixed per array at construction and inherited by every
//     view derived from it, so one array never mixes checked and unchecked views.
package ndarray

// BorrowPolicy selects whether views verify that their borrowed storage is
// still the array's current storage on every access.
type BorrowPolicy int

const (
	// Unchecked performs no detection; using a dangling view is undefined behavior.
	Unchecked BorrowPolicy = iota
	// Checked fails every access through a dangling view with ErrDanglingBorrow.
	Checked
)

const panicBorrowPolicyInvalid = "ndarray: WithBorrowPolicy: unknown policy"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	borrow BorrowPolicy // DefaultBorrowPolicy
}

// Borrow returns the resolved borrow policy.
func (o Options) Borrow() BorrowPolicy { return o.borrow }

// WithCheckedBorrow enables dangling-view detection for the new array.
//
// Behavior highlights:
//   - Each view access performs one pointer comparison with the owner's
//     current storage record.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCheckedBorrow() Option {
	return func(o *Options) { o.borrow = Checked }
}

// WithUncheckedBorrow disables dangling-view detection for the new array.
//
// Notes:
//   - A view used after Reshape/Resize/Release keeps addressing the storage
//     it was created over; results are unspecified.
func WithUncheckedBorrow() Option {
	return func(o *Options) { o.borrow = Unchecked }
}

// WithBorrowPolicy sets the policy explicitly.
// Panics on a value outside {Unchecked, Checked} (programmer error).
func WithBorrowPolicy(p BorrowPolicy) Option {
	if p != Checked && p != Unchecked {
		panic(panicBorrowPolicyInvalid)
	}

	return func(o *Options) { o.borrow = p }
}

// NewOptions resolves opts on top of the defaults; exposed for inspection in tests and tooling.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		borrow: DefaultBorrowPolicy,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
