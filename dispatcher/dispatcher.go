// Package dispatcher implements the five-step priority ephemeris
// dispatch of spec.md §4.8: a fixed, documented provider order tried
// first, then three shrinking fallbacks (Earth/Moon periodic
// correction, generic moon periodic correction, planetary Keplerian
// series), and finally the zero state.
package dispatcher

import (
	"math"

	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/provider"
	"github.com/kdrennan/ephem/registry"
	"github.com/kdrennan/ephem/vector"
)

// globalFirst/globalLast bound the 3000 BC - 3000 AD envelope spec.md
// §4.8 validates every call against, independent of any one provider's
// own narrower window.
const (
	globalFirst = 625673.5  // JD, 3000 BC
	globalLast  = 2816787.5 // JD, 3000 AD
)

var planetNames = map[string]bool{
	"Sun": true, "Mercury": true, "Venus": true, "Earth": true,
	"Mars": true, "Jupiter": true, "Saturn": true, "Uranus": true,
	"Neptune": true, "Pluto": true,
}

// Dispatcher holds providers in a fixed, documented priority order
// (most accurate first), plus the single Keplerian planetary provider
// used by step 4's last-resort fallback (spec.md §4.8). It carries no
// mutable state: two calls with the same (name, t) always return
// identical doubles (spec.md §8 invariant 6).
type Dispatcher struct {
	providers []provider.Provider
	planetary provider.Provider
}

// New builds a dispatcher from providers in priority order (most
// accurate first). A Keplerian planetary provider is always built and
// kept separately for the fallback steps, whether or not the caller
// already included one among providers.
func New(providers []provider.Provider) *Dispatcher {
	return &Dispatcher{
		providers: providers,
		planetary: provider.NewPlanetary(),
	}
}

// Dispatch returns (position, velocity) for name at Julian date jd,
// per the five-step priority order of spec.md §4.8.
func (d *Dispatcher) Dispatch(name string, jd float64) (pos, vel vector.V, err error) {
	if jd < globalFirst || jd > globalLast {
		return vector.Zero, vector.Zero, ephemerr.Wrapf(ephemerr.ErrDateOutOfRange, "dispatcher: %s at jd %v", name, jd)
	}
	if !d.knownName(name) {
		return vector.Zero, vector.Zero, ephemerr.Wrapf(ephemerr.ErrUnknownBody, "dispatcher: %q", name)
	}

	// Step 1: fixed-order providers, most accurate first.
	for _, p := range d.providers {
		if p.Handles(name) && p.InWindow(jd) {
			return p.State(name, jd)
		}
	}

	// Step 2: Earth/Moon periodic fallback.
	if name == "Earth" || name == "Moon" {
		if pos, vel, ok := d.earthMoonFallback(name, jd); ok {
			return pos, vel, nil
		}
	}

	// Step 3: generic moon periodic fallback.
	if !planetNames[name] {
		if pos, vel, ok := d.moonPeriodicFallback(name, jd); ok {
			return pos, vel, nil
		}
	}

	// Step 4: planetary Keplerian series.
	if planetNames[name] && d.planetary.Handles(name) {
		return d.planetary.State(name, jd)
	}

	// Step 5: zero state.
	return vector.Zero, vector.Zero, nil
}

// Position returns only the position half of Dispatch.
func (d *Dispatcher) Position(name string, jd float64) (vector.V, error) {
	pos, _, err := d.Dispatch(name, jd)
	return pos, err
}

// Velocity returns only the velocity half of Dispatch.
func (d *Dispatcher) Velocity(name string, jd float64) (vector.V, error) {
	_, vel, err := d.Dispatch(name, jd)
	return vel, err
}

func (d *Dispatcher) knownName(name string) bool {
	if _, ok := registry.Table[name]; ok {
		return true
	}
	for _, p := range d.providers {
		if p.Handles(name) {
			return true
		}
	}
	return d.planetary.Handles(name)
}

// accurateEarthMoonProvider returns the first configured provider that
// serves Earth, Moon, and the Earth-Moon barycentre directly (as a
// real SPK planetary kernel does via NAIF ID 3, registered in
// registry.Table under the key "EMB") -- the "accurate provider"
// spec.md §4.8 step 2 means.
func (d *Dispatcher) accurateEarthMoonProvider() (provider.Provider, bool) {
	for _, p := range d.providers {
		if p.Handles("Earth") && p.Handles("Moon") && p.Handles("EMB") {
			return p, true
		}
	}
	return provider.Provider{}, false
}

// earthMoonFallback implements spec.md §4.8 step 2: find t' inside the
// accurate provider's window shifted by an integer number of lunar
// periods from t, then return EMB_approx(t) + (accurate(t') -
// EMB_accurate(t')), using the Keplerian planetary provider's "Earth"
// slot as the approximate Earth-Moon barycentre (the conventional
// meaning of the classical 8-planet series' Earth elements) at t, and
// the accurate provider's own "EMB" state -- not the approximate
// series -- at t', per spec.md:134's "evaluate accurate positions of
// Earth, Moon, and Earth-Moon barycentre at t'".
func (d *Dispatcher) earthMoonFallback(name string, jd float64) (pos, vel vector.V, ok bool) {
	acc, found := d.accurateEarthMoonProvider()
	if !found {
		return vector.Zero, vector.Zero, false
	}
	period := registry.Table["Moon"].OrbitalPeriod / 86400
	tPrime, shifted := nearestShift(jd, period, acc.FirstValid(), acc.LastValid())
	if !shifted {
		return vector.Zero, vector.Zero, false
	}

	embPos, embVel, err := d.planetary.State("Earth", jd)
	if err != nil {
		return vector.Zero, vector.Zero, false
	}
	embPosP, embVelP, err := acc.State("EMB", tPrime)
	if err != nil {
		return vector.Zero, vector.Zero, false
	}
	accPosP, accVelP, err := acc.State(name, tPrime)
	if err != nil {
		return vector.Zero, vector.Zero, false
	}

	pos = embPos.Add(accPosP.Sub(embPosP))
	vel = embVel.Add(accVelP.Sub(embVelP))
	return pos, vel, true
}

// moonPeriodicFallback implements spec.md §4.8 step 3: shift t by an
// integer number of name's own orbital period until it lands inside
// some provider's window, then re-dispatch at that shifted instant.
func (d *Dispatcher) moonPeriodicFallback(name string, jd float64) (pos, vel vector.V, ok bool) {
	params, found := registry.Table[name]
	if !found || params.OrbitalPeriod == 0 {
		return vector.Zero, vector.Zero, false
	}
	period := math.Abs(params.OrbitalPeriod) / 86400

	for _, p := range d.providers {
		if !p.Handles(name) {
			continue
		}
		tPrime, shifted := nearestShift(jd, period, p.FirstValid(), p.LastValid())
		if !shifted {
			continue
		}
		pos, vel, err := d.Dispatch(name, tPrime)
		if err != nil {
			continue
		}
		return pos, vel, true
	}
	return vector.Zero, vector.Zero, false
}

// nearestShift returns t shifted by an integer multiple of period so
// that it falls inside [lo, hi], choosing the multiple nearest the
// window's centre, or false if no integer shift lands inside the
// window.
func nearestShift(t, period, lo, hi float64) (float64, bool) {
	if period <= 0 || hi <= lo {
		return 0, false
	}
	mid := (lo + hi) / 2
	k := math.Round((t - mid) / period)
	tPrime := t - k*period
	for i := 0; i < 4 && (tPrime < lo || tPrime > hi); i++ {
		if tPrime < lo {
			tPrime += period
		} else {
			tPrime -= period
		}
	}
	if tPrime < lo || tPrime > hi {
		return 0, false
	}
	return tPrime, true
}
