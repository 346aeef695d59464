package timescale

import (
	"math"
	"testing"
	"time"
)

func TestLeapSecondOffset(t *testing.T) {
	tests := []struct {
		jdUTC float64
		want  float64
	}{
		{2441317.5, 10}, // 1972-01-01 exactly
		{2441318.0, 10}, // just after
		{2441499.5, 11}, // 1972-07-01
		{2457754.5, 37}, // 2017-01-01 (latest)
		{2460000.0, 37}, // future: should return latest
		{2400000.0, 10}, // pre-1972: returns initial 10
	}
	for _, tc := range tests {
		got := LeapSecondOffset(tc.jdUTC)
		if got != tc.want {
			t.Errorf("LeapSecondOffset(%.1f) = %v, want %v", tc.jdUTC, got, tc.want)
		}
	}
}

func TestDeltaTKnownValues(t *testing.T) {
	dt := DeltaT(2000.0)
	if math.Abs(dt-63.829) > 0.001 {
		t.Errorf("DeltaT(2000) = %v, want ~63.829", dt)
	}

	dt = DeltaT(2000.5)
	dt2000 := DeltaT(2000.0)
	dt2010 := DeltaT(2010.0)
	if dt < math.Min(dt2000, dt2010) || dt > math.Max(dt2000, dt2010) {
		t.Errorf("DeltaT(2000.5) = %v, not between %v and %v", dt, dt2000, dt2010)
	}
}

func TestDeltaTBoundaryClamp(t *testing.T) {
	if got, want := DeltaT(1700.0), DeltaT(1800.0); got != want {
		t.Errorf("DeltaT(1700) = %v, want %v (first entry)", got, want)
	}
	if got, want := DeltaT(2300.0), DeltaT(2200.0); got != want {
		t.Errorf("DeltaT(2300) = %v, want %v (last entry)", got, want)
	}
}

func TestDeltaTExactTableEntry(t *testing.T) {
	dt := DeltaT(1800.0)
	if math.Abs(dt-18.3670) > 0.0001 {
		t.Errorf("DeltaT(1800) = %v, want 18.3670", dt)
	}
}

func TestTimeToJDUTC(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if jd := TimeToJDUTC(j2000); math.Abs(jd-2451545.0) > 1e-9 {
		t.Errorf("J2000 JD = %.10f, want 2451545.0", jd)
	}

	unix0 := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if jd := TimeToJDUTC(unix0); math.Abs(jd-2440587.5) > 1e-9 {
		t.Errorf("Unix epoch JD = %.10f, want 2440587.5", jd)
	}
}

func TestTimeToJDUTCNanoseconds(t *testing.T) {
	t0 := time.Date(2024, 6, 15, 12, 0, 0, 500000000, time.UTC)
	t1 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	diffSec := (TimeToJDUTC(t0) - TimeToJDUTC(t1)) * SecPerDay
	if math.Abs(diffSec-0.5) > 1e-3 {
		t.Errorf("nanosecond diff: got %.9f s, want 0.5 s", diffSec)
	}
}

func TestUTCToTT(t *testing.T) {
	jdUTC := 2458849.5
	jdTT := UTCToTT(jdUTC)
	expectedOffset := (37.0 + 32.184) / SecPerDay
	if diff := jdTT - jdUTC - expectedOffset; math.Abs(diff) > 1e-9 {
		t.Errorf("UTCToTT offset error: %.15e days", diff)
	}
}

func TestTTToUT1(t *testing.T) {
	jdTT := 2451545.0
	jdUT1 := TTToUT1(jdTT)
	year := 2000.0 + (jdTT-2451545.0)/365.25
	dt := DeltaT(year)
	expected := jdTT - dt/SecPerDay
	if math.Abs(jdUT1-expected) > 1e-15 {
		t.Errorf("TTToUT1: got %.15f want %.15f", jdUT1, expected)
	}
}

func TestTDBMinusTTAmplitude(t *testing.T) {
	for year := 1850.0; year <= 2150.0; year += 10.0 {
		jd := J2000 + (year-2000.0)*365.25
		if dt := TDBMinusTT(jd); math.Abs(dt) > 0.002 {
			t.Errorf("TDB-TT at year %.0f = %v s, exceeds 2ms", year, dt)
		}
	}
}

func TestTDBMinusTTVariesWithTime(t *testing.T) {
	dt1 := TDBMinusTT(J2000)
	dt2 := TDBMinusTT(J2000 + 182.625) // half year later
	if dt1 == dt2 {
		t.Error("TDB-TT unchanged after half year")
	}
}

func TestCenturiesSinceJ2000(t *testing.T) {
	if got := CenturiesSinceJ2000(J2000 + DaysPerCentury); math.Abs(got-1) > 1e-12 {
		t.Errorf("CenturiesSinceJ2000 = %v, want 1", got)
	}
}

func TestCalendarToJDKnownEpoch(t *testing.T) {
	jd := CalendarToJD(2000, 1, 1, 12, 0, 0)
	if math.Abs(jd-2451545.0) > 1e-9 {
		t.Errorf("CalendarToJD(2000-01-01 12:00) = %.10f, want 2451545.0", jd)
	}
}
