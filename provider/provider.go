// Package provider models each ephemeris source behind the capability
// record spec.md §9's design notes call for in place of the source's
// polymorphic-interface providers: a plain struct of functions rather
// than a method-set interface, so the dispatcher in package dispatcher
// can treat every source (SPK-backed, Keplerian-series, or analytical
// satellite theory) as the same pure-function value.
package provider

import (
	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/vector"
)

// Provider is the uniform capability record every ephemeris source
// implements (spec.md §4.7/§9): the set of names it knows, its validity
// window, and a pure state function. Position is relative to the Sun
// for heliocentric providers, and relative to the parent body (or its
// system barycentre) for satellite providers.
type Provider struct {
	Name string

	bodies             []string
	firstValid         float64 // JD
	lastValid          float64 // JD
	stateFn            func(name string, jd float64) (pos, vel vector.V, err error)
	barycentricStateFn func(name string, jd float64) (pos, vel vector.V, err error)
}

// New builds a Provider from its raw fields: name is a human-readable
// label, bodies is the set of names it serves, [firstValid, lastValid]
// is its validity window (JD), and stateFn computes its state. This is
// the general-purpose constructor used both by this package's own
// factory functions and by callers wiring ad hoc or test providers;
// barycentricStateFn may be nil, in which case BarycentricState
// reports ephemerr.ErrUnsupported.
func New(name string, bodies []string, firstValid, lastValid float64,
	stateFn func(name string, jd float64) (pos, vel vector.V, err error),
	barycentricStateFn func(name string, jd float64) (pos, vel vector.V, err error)) Provider {
	return Provider{
		Name:               name,
		bodies:             bodies,
		firstValid:         firstValid,
		lastValid:          lastValid,
		stateFn:            stateFn,
		barycentricStateFn: barycentricStateFn,
	}
}

// Bodies returns the set of names this provider serves.
func (p Provider) Bodies() []string { return p.bodies }

// FirstValid returns the earliest instant (JD) this provider covers.
func (p Provider) FirstValid() float64 { return p.firstValid }

// LastValid returns the latest instant (JD) this provider covers.
func (p Provider) LastValid() float64 { return p.lastValid }

// Handles reports whether name is one this provider serves.
func (p Provider) Handles(name string) bool {
	for _, b := range p.bodies {
		if b == name {
			return true
		}
	}
	return false
}

// InWindow reports whether jd falls inside this provider's validity
// window.
func (p Provider) InWindow(jd float64) bool {
	return jd >= p.firstValid && jd <= p.lastValid
}

// State returns (position, velocity) for name at Julian date jd,
// failing with ephemerr.ErrUnknownBody if this provider does not handle
// name, or ephemerr.ErrDateOutOfRange if jd falls outside its validity
// window.
func (p Provider) State(name string, jd float64) (pos, vel vector.V, err error) {
	if !p.Handles(name) {
		return vector.Zero, vector.Zero, ephemerr.ErrUnknownBody
	}
	if !p.InWindow(jd) {
		return vector.Zero, vector.Zero, ephemerr.ErrDateOutOfRange
	}
	return p.stateFn(name, jd)
}

// Position returns only the position half of State.
func (p Provider) Position(name string, jd float64) (vector.V, error) {
	pos, _, err := p.State(name, jd)
	return pos, err
}

// Velocity returns only the velocity half of State.
func (p Provider) Velocity(name string, jd float64) (vector.V, error) {
	_, vel, err := p.State(name, jd)
	return vel, err
}

// BarycentricState returns the barycentric variant of State. Most
// providers declare but do not implement it (spec.md §9's "Barycentric
// operations" note); those return ephemerr.ErrUnsupported.
func (p Provider) BarycentricState(name string, jd float64) (pos, vel vector.V, err error) {
	if p.barycentricStateFn == nil {
		return vector.Zero, vector.Zero, ephemerr.ErrUnsupported
	}
	return p.barycentricStateFn(name, jd)
}
