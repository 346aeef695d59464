package provider

import (
	"sort"

	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/spk"
	"github.com/kdrennan/ephem/timescale"
	"github.com/kdrennan/ephem/vector"
)

// cruiseLeg is one table-driven interval of the Galileo spacecraft's
// cruise trajectory (spec.md §4.7): over [fromJD, toJD), the
// spacecraft's state is read relative to observer and added to
// observer's own heliocentric state (itself read from the same
// kernel, relative to the Sun) to reconstruct a heliocentric state.
type cruiseLeg struct {
	fromJD, toJD float64
	observer     int // NAIF ID: Sun, Earth, Venus, Gaspra, or Ida
}

// NewGalileoCruise builds the Galileo-spacecraft cruise provider
// (spec.md §4.7): its state is reconstructed from multiple SPK
// segments with different observers (Sun, Earth, Venus, Gaspra, Ida)
// stitched into a single heliocentric state, the stitching table-driven
// by time interval. k must carry segments for the spacecraft relative
// to each leg's observer, and for each non-Sun observer relative to the
// Sun.
func NewGalileoCruise(k *spk.Kernel, spacecraftID int, legs []cruiseLeg) Provider {
	sorted := append([]cruiseLeg(nil), legs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].fromJD < sorted[j].fromJD })

	first, last := 0.0, 0.0
	if len(sorted) > 0 {
		first = sorted[0].fromJD
		last = sorted[len(sorted)-1].toJD
	}

	return Provider{
		Name:       "galileo-cruise",
		bodies:     []string{"Galileo"},
		firstValid: first,
		lastValid:  last,
		stateFn: func(_ string, jd float64) (pos, vel vector.V, err error) {
			leg, ok := legFor(sorted, jd)
			if !ok {
				return vector.Zero, vector.Zero, ephemerr.ErrNoSegment
			}
			et := timescale.SecondsSinceJ2000(jd)

			scPos, scVel, err := k.State(et, spacecraftID, leg.observer)
			if err != nil {
				return vector.Zero, vector.Zero, err
			}
			if leg.observer == spk.Sun {
				return scPos, scVel, nil
			}
			obsPos, obsVel, err := k.State(et, leg.observer, spk.Sun)
			if err != nil {
				return vector.Zero, vector.Zero, err
			}
			return obsPos.Add(scPos), obsVel.Add(scVel), nil
		},
	}
}

// legFor returns the leg covering jd, or false if none does.
func legFor(legs []cruiseLeg, jd float64) (cruiseLeg, bool) {
	for _, leg := range legs {
		if jd >= leg.fromJD && jd < leg.toJD {
			return leg, true
		}
	}
	return cruiseLeg{}, false
}
