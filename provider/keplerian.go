package provider

import (
	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/orbit"
	"github.com/kdrennan/ephem/registry"
	"github.com/kdrennan/ephem/vector"
)

// gmSun is the Sun's standard gravitational parameter (m^3/s^2), used
// by every heliocentric Keplerian-series body.
const gmSun = 1.32712440018e20

// keplerianValidFrom/keplerianValidTo bound the 3000 BC - 3000 AD
// envelope the registry's Standish & Williams element rates are fit
// over (spec.md §1).
const (
	keplerianValidFrom = 625673.5  // JD, 3000 BC
	keplerianValidTo   = 2816787.5 // JD, 3000 AD
)

// NewPlanetary builds the legacy Keplerian-series planetary provider
// (spec.md §4.7): every registry body carrying a 16-element orbit
// record, evaluated per spec.md §4.2. Positions are heliocentric.
func NewPlanetary() Provider {
	var names []string
	for name, p := range registry.Table {
		if _, ok := p.OrbitParameters.(*orbit.Record16); ok && name != "Moon" {
			names = append(names, name)
		}
	}
	return Provider{
		Name:       "keplerian-planetary",
		bodies:     names,
		firstValid: keplerianValidFrom,
		lastValid:  keplerianValidTo,
		stateFn: func(name string, jd float64) (pos, vel vector.V, err error) {
			p, ok := registry.Table[name]
			if !ok {
				return vector.Zero, vector.Zero, ephemerr.ErrUnknownBody
			}
			rec, ok := p.OrbitParameters.(*orbit.Record16)
			if !ok {
				return vector.Zero, vector.Zero, ephemerr.ErrUnknownBody
			}
			el := rec.Evaluate(jd)
			pos, vel = orbit.State(el, gmSun)
			return pos, vel, nil
		},
	}
}

// NewMoonAnalytical builds the Moon analytical provider (spec.md
// §4.7): a single-body Keplerian-series evaluation of the Moon's mean
// geocentric orbit. The dispatcher's Earth/Moon periodic fallback
// (spec.md §4.8 step 2) does not call it; that step takes its
// approximate term from the planetary provider's "Earth".
func NewMoonAnalytical() Provider {
	return Provider{
		Name:       "moon-analytical",
		bodies:     []string{"Moon"},
		firstValid: keplerianValidFrom,
		lastValid:  keplerianValidTo,
		stateFn: func(name string, jd float64) (pos, vel vector.V, err error) {
			p := registry.Table["Moon"]
			rec := p.OrbitParameters.(*orbit.Record16)
			el := rec.Evaluate(jd)
			gmEarth := registry.GM("Earth")
			pos, vel = orbit.State(el, gmEarth)
			return pos, vel, nil
		},
	}
}
