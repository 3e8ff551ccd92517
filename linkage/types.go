// Package linkage defines tunable options and sentinel errors for
// single-linkage forest construction.
package linkage

import (
	"errors"
	"fmt"
)

// Sentinel errors for forest construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linkage: invalid option supplied")

	// ErrTooFewPoints is returned in exhaustive mode when fewer than two
	// points are supplied: "a single tree spans all points" is never a
	// meaningful condition below two.
	ErrTooFewPoints = errors.New("linkage: exhaustive mode needs at least two points")

	// ErrIncomplete is returned if the edge sweep ends before one tree
	// spans every point in exhaustive mode. On a complete pair set this
	// cannot happen; the check guards future refactors.
	ErrIncomplete = errors.New("linkage: construction ended without spanning all points")

	// ErrNoCompletingEdge is returned by Result.CompletingXProduct and
	// Result.CompletingEndpoints when no completing edge was recorded
	// (bounded mode never records one).
	ErrNoCompletingEdge = errors.New("linkage: no completing edge recorded")
)

// Mode selects the stopping policy applied during construction.
type Mode int

const (
	// Exhaustive halts once a single tree spans every input point and
	// records the edge that produced that state.
	Exhaustive Mode = iota

	// Bounded halts once the accepted-connection count reaches the
	// configured maximum; the forest may still hold several trees.
	Bounded
)

// ConnectKind classifies how an accepted edge changed the forest.
type ConnectKind int

const (
	// ConnectCreate: neither endpoint was known; a new two-node tree appeared.
	ConnectCreate ConnectKind = iota

	// ConnectGraft: exactly one endpoint was known; the other joined its tree.
	ConnectGraft

	// ConnectMerge: the endpoints lay in two different trees, now one.
	ConnectMerge

	// ConnectRedundant: the endpoints already shared a tree. The forest
	// is unchanged, but the connection still counts toward a bounded cap.
	ConnectRedundant
)

// String names the kind for hooks and diagnostics.
func (k ConnectKind) String() string {
	switch k {
	case ConnectCreate:
		return "create"
	case ConnectGraft:
		return "graft"
	case ConnectMerge:
		return "merge"
	case ConnectRedundant:
		return "redundant"
	default:
		return fmt.Sprintf("ConnectKind(%d)", int(k))
	}
}

// Options holds parameters and callbacks that customize construction.
// Use DefaultOptions() for the default setup (exhaustive mode).
type Options struct {
	// Mode selects the stopping policy: Exhaustive (default) or Bounded.
	Mode Mode

	// MaxConnections is the accepted-connection cap for Bounded mode.
	// Ignored in Exhaustive mode.
	MaxConnections int

	// OnConnect is called after every accepted edge with the edge and
	// the kind of structural change it caused.
	OnConnect func(e Edge, kind ConnectKind)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Exhaustive mode (run until one tree spans everything)
//   - no connection cap
//   - no-op OnConnect hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Mode:           Exhaustive,
		MaxConnections: 0,
		OnConnect:      func(Edge, ConnectKind) {},
		err:            nil,
	}
}

// Option configures construction behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive cap), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// WithBounded switches construction to Bounded mode with the given
// accepted-connection cap.
//
//	max > 0:  stop once max connections have been accepted
//	max <= 0: invalid option → ErrOptionViolation
func WithBounded(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			o.err = fmt.Errorf("%w: connection cap must be positive (%d)", ErrOptionViolation, max)
			return
		}
		o.Mode = Bounded
		o.MaxConnections = max
	}
}

// WithOnConnect registers a callback to observe every accepted edge.
func WithOnConnect(fn func(e Edge, kind ConnectKind)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConnect = fn
		}
	}
}
