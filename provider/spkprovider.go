package provider

import (
	"sort"

	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/spk"
	"github.com/kdrennan/ephem/timescale"
	"github.com/kdrennan/ephem/vector"
)

// bodyIDs maps a provider's served names to their NAIF IDs, and
// observer is the fixed NAIF ID every name's state is reported
// relative to (spec.md §4.7: "relative to the parent planet").
type bodyIDs map[string]int

// NewSPK builds a provider wrapping a single open SPK kernel: name is
// the provider's label, ids maps served names to their NAIF target
// IDs, and observer is the fixed NAIF ID of the body every state is
// reported relative to (a planet, for its moons; the Sun, for
// planet barycentres).
func NewSPK(name string, k *spk.Kernel, ids bodyIDs, observer int) Provider {
	names := make([]string, 0, len(ids))
	for n := range ids {
		names = append(names, n)
	}
	sort.Strings(names)

	first, last := windowFromSegments(k, ids, observer)

	return Provider{
		Name:       name,
		bodies:     names,
		firstValid: first,
		lastValid:  last,
		stateFn: func(bodyName string, jd float64) (pos, vel vector.V, err error) {
			target, ok := ids[bodyName]
			if !ok {
				return vector.Zero, vector.Zero, ephemerr.ErrUnknownBody
			}
			et := timescale.SecondsSinceJ2000(jd)
			return k.State(et, target, observer)
		},
	}
}

// windowFromSegments derives a provider's validity window as the
// intersection-free union bound of every segment matching one of its
// (target, observer) pairs: the widest [firstValid, lastValid] any
// served body's segments actually cover.
func windowFromSegments(k *spk.Kernel, ids bodyIDs, observer int) (first, last float64) {
	haveAny := false
	for _, target := range ids {
		for _, seg := range k.Segments() {
			if seg.Target != target || seg.Observer != observer {
				continue
			}
			if !haveAny || seg.EtBeg < first {
				first = seg.EtBeg
			}
			if !haveAny || seg.EtEnd > last {
				last = seg.EtEnd
			}
			haveAny = true
		}
	}
	if !haveAny {
		return 0, 0
	}
	return timescale.J2000 + first/86400, timescale.J2000 + last/86400
}
