// SPDX-License-Identifier: MIT

// Package heaparray: functional configuration for the 2-D and 3-D constructors.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper (internal).
//
// Both layouts honour the same contract (rectangular, fully initialized,
// rows never alias each other); they differ only in how many allocations
// back the array.
package heaparray

import "fmt"

// Layout selects how rows of a multi-dimensional array are backed.
type Layout uint8

const (
	// LayoutFlat carves every row out of one contiguous buffer using
	// capacity-capped sub-slices (one allocation for elements, one for row headers).
	LayoutFlat Layout = iota

	// LayoutNested allocates every row independently.
	LayoutNested
)

// DefaultLayout is the layout used when no WithLayout option is supplied.
const DefaultLayout = LayoutFlat

const panicLayoutInvalid = "heaparray: WithLayout: unknown layout"

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutNested:
		return "nested"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Options holds the resolved configuration. Fields are unexported;
// callers build it through Option values.
type Options struct {
	layout Layout
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// WithLayout selects the backing layout.
// Panics on a value other than LayoutFlat or LayoutNested.
func WithLayout(l Layout) Option {
	if l != LayoutFlat && l != LayoutNested {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) {
		o.layout = l
	}
}

// NewOptions resolves opts over the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Layout reports the resolved layout.
func (o Options) Layout() Layout { return o.layout }

func gatherOptions(opts ...Option) Options {
	o := Options{layout: DefaultLayout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
