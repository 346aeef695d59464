package provider

import (
	"github.com/kdrennan/ephem/gust86"
	"github.com/kdrennan/ephem/triton"
	"github.com/kdrennan/ephem/vector"
)

// gust86ValidFrom/gust86ValidTo bound this theory's fit interval
// (representative of GUST86's published ~1890-2100 validity span).
const (
	gust86ValidFrom = 2411368.5 // JD, 1890-01-01
	gust86ValidTo   = 2488070.5 // JD, 2100-01-01
)

// NewGUST86 builds the provider wrapping the GUST86 analytical theory
// for the five classical Uranian satellites (spec.md §4.5/§4.7).
// Positions are relative to Uranus.
func NewGUST86() Provider {
	return Provider{
		Name:       "gust86-uranian-satellites",
		bodies:     gust86.Bodies(),
		firstValid: gust86ValidFrom,
		lastValid:  gust86ValidTo,
		stateFn: func(name string, jd float64) (pos, vel vector.V, err error) {
			sat, _ := gust86.ByName(name)
			pos, vel = gust86.State(sat, jd)
			return pos, vel, nil
		},
	}
}

// tritonValidFrom/tritonValidTo bound the Emelyanov-Samorodov theory's
// representative fit interval.
const (
	tritonValidFrom = 2415020.5 // JD, 1900-01-01
	tritonValidTo   = 2488070.5 // JD, 2100-01-01
)

// NewTriton builds the provider wrapping the Triton analytical series
// (spec.md §4.5/§4.7). Position is relative to Neptune.
func NewTriton() Provider {
	return Provider{
		Name:       "triton-analytical",
		bodies:     []string{"Triton"},
		firstValid: tritonValidFrom,
		lastValid:  tritonValidTo,
		stateFn: func(name string, jd float64) (pos, vel vector.V, err error) {
			pos, vel = triton.State(jd)
			return pos, vel, nil
		},
	}
}
