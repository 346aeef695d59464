// Package timescale converts between civil calendar dates, Julian Date,
// and the time scales (TT, UT1, TDB) the ephemeris kernel needs.
//
// J2000 is JD 2451545.0 exactly; a Julian century is 36525 days exactly,
// matching spec.md §6.
package timescale

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// SecPerDay is the number of SI seconds in a day.
const SecPerDay = 86400.0

// unixEpochJD is the Julian Date of the Unix epoch (1970-01-01T00:00:00Z).
const unixEpochJD = 2440587.5

// CenturiesSinceJ2000 returns T = (jd - J2000) / DaysPerCentury.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// SecondsSinceJ2000 returns the number of SI seconds between J2000 and jd.
func SecondsSinceJ2000(jd float64) float64 {
	return (jd - J2000) * SecPerDay
}

// CalendarToJD converts a proleptic Gregorian civil date/time (UTC) to a
// Julian Date, using the standard Fliegel & Van Flandern algorithm. Hour,
// min, sec may be fractional or out of their normal ranges.
func CalendarToJD(year, month, day int, hour, min, sec float64) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	dayFrac := (hour-12)/24 + min/1440 + sec/SecPerDay
	return float64(jdn) + dayFrac
}

// TimeToJDUTC converts a time.Time (interpreted in UTC, any zone accepted
// and converted) to a Julian Date.
func TimeToJDUTC(t time.Time) float64 {
	t = t.UTC()
	y, mo, d := t.Date()
	h, mi, s := t.Hour(), t.Minute(), t.Second()
	secFrac := float64(s) + float64(t.Nanosecond())/1e9
	return CalendarToJD(y, int(mo), d, float64(h), float64(mi), secFrac)
}

// leapSecondTable is a sparse list of (JD at which a new TAI-UTC offset
// takes effect, offset in seconds), covering the intervals a 3000 BC-3000
// AD request can plausibly need historical accuracy for. Since 1972 this
// tracks the IERS bulletin; after the last announced leap second the final
// offset is held constant (UTC is not expected to diverge further in this
// implementation's lifetime).
var leapSecondTable = []struct {
	jd     float64
	offset float64
}{
	{2441317.5, 10}, // 1972-01-01
	{2441499.5, 11}, // 1972-07-01
	{2441683.5, 12}, // 1973-01-01
	{2442048.5, 13}, // 1974-01-01
	{2442413.5, 14}, // 1975-01-01
	{2442778.5, 15}, // 1976-01-01
	{2443144.5, 16}, // 1977-01-01
	{2443509.5, 17}, // 1978-01-01
	{2443874.5, 18}, // 1979-01-01
	{2444239.5, 19}, // 1980-01-01
	{2444786.5, 20}, // 1981-07-01
	{2445151.5, 21}, // 1982-07-01
	{2445516.5, 22}, // 1983-07-01
	{2446247.5, 23}, // 1985-07-01
	{2447161.5, 24}, // 1988-01-01
	{2447892.5, 25}, // 1990-01-01
	{2448257.5, 26}, // 1991-01-01
	{2448804.5, 27}, // 1992-07-01
	{2449169.5, 28}, // 1993-07-01
	{2449534.5, 29}, // 1994-07-01
	{2450083.5, 30}, // 1996-01-01
	{2450630.5, 31}, // 1997-07-01
	{2451179.5, 32}, // 1999-01-01
	{2453736.5, 33}, // 2006-01-01
	{2454832.5, 34}, // 2009-01-01
	{2456109.5, 35}, // 2012-07-01
	{2457204.5, 36}, // 2015-07-01
	{2457754.5, 37}, // 2017-01-01
}

// LeapSecondOffset returns TAI-UTC in seconds for the given UTC Julian
// date. Before 1972 it returns the initial post-1972 offset; after the
// last tabulated entry it holds the latest value.
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapSecondTable[0].jd {
		return leapSecondTable[0].offset
	}
	offset := leapSecondTable[0].offset
	for _, e := range leapSecondTable {
		if jdUTC < e.jd {
			break
		}
		offset = e.offset
	}
	return offset
}

// deltaTYears and deltaTValues hold historical and extrapolated ΔT =
// TT - UT1 in seconds, indexed by decimal year, per the Espenak/Meeus polynomial-fit tradition
// used throughout this corpus (soniakeys-meeus/deltat).
var deltaTYears = []float64{
	1800, 1820, 1840, 1860, 1880, 1900, 1920, 1940, 1960,
	1970, 1980, 1990, 2000, 2010, 2020, 2050, 2100, 2150, 2200,
}

var deltaTValues = []float64{
	18.3670, 11.9, 6.8, 7.9, -5.4, -2.8, 21.2, 24.3, 33.2,
	40.2, 50.5, 56.9, 63.829, 66.1, 73.0, 93.0, 202.0, 340.0, 508.0,
}

// DeltaT returns an interpolated estimate of ΔT = TT - UT1 in seconds for
// the given decimal year, clamped to the tabulated range at the
// boundaries and linearly interpolated between entries.
func DeltaT(year float64) float64 {
	n := len(deltaTYears)
	if year <= deltaTYears[0] {
		return deltaTValues[0]
	}
	if year >= deltaTYears[n-1] {
		return deltaTValues[n-1]
	}
	idx := 0
	for idx < n-2 && deltaTYears[idx+1] < year {
		idx++
	}
	y0, y1 := deltaTYears[idx], deltaTYears[idx+1]
	v0, v1 := deltaTValues[idx], deltaTValues[idx+1]
	frac := (year - y0) / (y1 - y0)
	return v0 + frac*(v1-v0)
}

// UTCToTT converts a UTC Julian date to Terrestrial Time: TT = UTC +
// (leap seconds + 32.184s).
func UTCToTT(jdUTC float64) float64 {
	offset := LeapSecondOffset(jdUTC) + 32.184
	return jdUTC + offset/SecPerDay
}

// TTToUT1 converts a TT Julian date to UT1 using the tabulated/interpolated
// ΔT: UT1 = TT - ΔT.
func TTToUT1(jdTT float64) float64 {
	year := 2000.0 + (jdTT-J2000)/365.25
	dt := DeltaT(year)
	return jdTT - dt/SecPerDay
}

// TDBMinusTT returns TDB-TT in seconds for a given Julian date (TT or TDB
// — the difference is small enough that using either as the argument is
// within the approximation's own error budget). Fairhead & Bretagnon
// series, USNO Circular 179 eq. 2.6.
func TDBMinusTT(jd float64) float64 {
	t := (jd - J2000) / DaysPerCentury
	return 0.001657*math.Sin(628.3076*t+6.2401) +
		0.000022*math.Sin(575.3385*t+4.2970) +
		0.000014*math.Sin(1256.6152*t+6.1969) +
		0.000005*math.Sin(606.9777*t+4.0212) +
		0.000005*math.Sin(52.9691*t+0.4444) +
		0.000002*math.Sin(21.3299*t+5.5431) +
		0.000010*t*math.Sin(628.3076*t+4.2490)
}
