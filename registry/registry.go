// Package registry holds the static physical-parameter table described
// in spec.md §3/§6: for each body, any subset of mass, GM, radius,
// flattening, rotation pole, rotation period, orbital period, and an
// orbit-parameter record (16- or 7-element, per spec.md §3). The table
// is a process-wide, read-only singleton built once at package init.
package registry

import "github.com/kdrennan/ephem/orbit"

// Pole describes a body's rotation axis as right ascension and
// declination of the north pole at the J2000 epoch, plus per-century
// rates (IAU rotation-model convention), both in degrees.
type Pole struct {
	RA0, RADot   float64
	Dec0, DecDot float64
}

// Params is the subset-of-fields physical-parameter record spec.md §6
// describes: every field is independently optional (zero value means
// "not recorded for this body"), except Name and NaifID.
type Params struct {
	Name   string
	NaifID int

	Mass              float64 // kg; 0 if unknown
	GM                float64 // m^3/s^2 (standard gravitational parameter)
	EquatorialRadius  float64 // m
	Flattening        float64 // (a-c)/a
	Ellipticity       float64
	ZonalCoefficients []float64 // J2, J3, J4, ... (dimensionless)

	Pole                   *Pole
	SiderealRotationPeriod float64 // seconds; negative for retrograde rotation
	OrbitalPeriod          float64 // seconds

	// OrbitParameters is *orbit.Record16 or *orbit.Record7 for bodies
	// whose Keplerian-series provider (spec.md §4.2) applies, or nil
	// for bodies whose state comes from an SPK segment or an
	// analytical satellite series instead (spec.md §4.5/§4.7).
	OrbitParameters interface{}
}

// auMeters is 1 AU in meters (spec.md GLOSSARY).
const auMeters = 1.49597870691e11

// Table is the process-wide, read-only physical-parameter registry,
// keyed by the body identifier strings used throughout this module
// (spec.md §3 "Body identifier"). Values reproduce publicly published
// IAU/JPL constants (equatorial radii from the IAU WGCCRE reports,
// standard gravitational parameters and the 3000 BC-3000 AD Keplerian
// element rates from Standish & Williams, JPL Solar System Dynamics).
var Table = map[string]Params{
	"Sun": {
		Name: "Sun", NaifID: 10,
		Mass: 1.988500e30, GM: 1.32712440018e20,
		EquatorialRadius: 6.957e8,
		SiderealRotationPeriod: 25.05 * 86400,
	},
	"Mercury": {
		Name: "Mercury", NaifID: 199,
		Mass: 3.302e23, GM: 2.2032e13,
		EquatorialRadius: 2.4397e6, Flattening: 0.0,
		Pole:                   &Pole{RA0: 281.0097, RADot: -0.0328, Dec0: 61.4143, DecDot: -0.0049},
		SiderealRotationPeriod: 58.6462 * 86400,
		OrbitalPeriod:          87.9691 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 0.38709927, ADot: 0.00000037,
			E0: 0.20563593, EDot: 0.00001906,
			I0: 7.00497902, IDot: -0.00594749,
			L0: 252.25032350, LDot: 149472.67411175,
			Peri0: 77.45779628, PeriDot: 0.16047689,
			Node0: 48.33076593, NodeDot: -0.12534081,
		},
	},
	"Venus": {
		Name: "Venus", NaifID: 299,
		Mass: 4.8685e24, GM: 3.24859e14,
		EquatorialRadius:       6.0518e6,
		SiderealRotationPeriod: -243.0226 * 86400,
		OrbitalPeriod:          224.701 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 0.72333566, ADot: 0.00000390,
			E0: 0.00677672, EDot: -0.00004107,
			I0: 3.39467605, IDot: -0.00078890,
			L0: 181.97909950, LDot: 58517.81538729,
			Peri0: 131.60246718, PeriDot: 0.00268329,
			Node0: 76.67984255, NodeDot: -0.27769418,
		},
	},
	"Earth": {
		Name: "Earth", NaifID: 399,
		Mass: 5.97219e24, GM: 3.986004418e14,
		EquatorialRadius: 6.378137e6, Flattening: 1.0 / 298.257223563,
		ZonalCoefficients:      []float64{1.08263e-3},
		SiderealRotationPeriod: 0.99726968 * 86400,
		OrbitalPeriod:          365.256 * 86400,
		// The classical series' Earth-Moon barycentre elements, served
		// by the planetary provider as "Earth".
		OrbitParameters: &orbit.Record16{
			A0: 1.00000261, ADot: 0.00000562,
			E0: 0.01671123, EDot: -0.00004392,
			I0: -0.00001531, IDot: -0.01294668,
			L0: 100.46457166, LDot: 35999.37244981,
			Peri0: 102.93768193, PeriDot: 0.32327364,
			Node0: 0.0, NodeDot: 0.0,
		},
	},
	"EMB": {
		Name: "EMB", NaifID: 3,
		OrbitalPeriod: 365.256 * 86400,
	},
	"Moon": {
		Name: "Moon", NaifID: 301,
		Mass: 7.342e22, GM: 4.9048695e12,
		EquatorialRadius:       1.7374e6,
		SiderealRotationPeriod: 27.321661 * 86400,
		OrbitalPeriod:          27.321661 * 86400,
		// Mean geocentric lunar orbit (Brown's tables, reduced to mean
		// elements with their dominant secular rates), used by the
		// analytical Moon provider. Node/perigee precess on ~18.6yr/8.85yr
		// periods; only the linear secular term is carried here.
		OrbitParameters: &orbit.Record16{
			A0: 0.002569555, ADot: 0,
			E0: 0.0554, EDot: 0,
			I0: 5.145, IDot: 0,
			L0: 218.3164477, LDot: 481267.88123421,
			Peri0: 83.3532465, PeriDot: 4069.0137287,
			Node0: 125.0445479, NodeDot: -1934.1362891,
		},
	},
	"Mars": {
		Name: "Mars", NaifID: 499,
		Mass: 6.4171e23, GM: 4.282837e13,
		EquatorialRadius: 3.3962e6, Flattening: 1.0 / 169.8,
		SiderealRotationPeriod: 1.025957 * 86400,
		OrbitalPeriod:          686.980 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 1.52371034, ADot: 0.00001847,
			E0: 0.09339410, EDot: 0.00007882,
			I0: 1.84969142, IDot: -0.00813131,
			L0: -4.55343205, LDot: 19140.30268499,
			Peri0: -23.94362959, PeriDot: 0.44441088,
			Node0: 49.55953891, NodeDot: -0.29257343,
		},
	},
	"Jupiter": {
		Name: "Jupiter", NaifID: 599,
		Mass: 1.89819e27, GM: 1.26686534e17,
		EquatorialRadius: 7.1492e7, Flattening: 0.06487,
		ZonalCoefficients:      []float64{0.014736, -0.00058},
		SiderealRotationPeriod: 0.41354 * 86400,
		OrbitalPeriod:          4332.589 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 5.20288700, ADot: -0.00011607,
			E0: 0.04838624, EDot: -0.00013253,
			I0: 1.30439695, IDot: -0.00183714,
			L0: 34.39644051, LDot: 3034.74612775,
			Peri0: 14.72847983, PeriDot: 0.21252668,
			Node0: 100.47390909, NodeDot: 0.20469106,
			B: -0.00012452, C: 0.06064060, S: -0.35635438, F: 38.35125000,
		},
	},
	"Saturn": {
		Name: "Saturn", NaifID: 699,
		Mass: 5.6834e26, GM: 3.7931187e16,
		EquatorialRadius: 6.0268e7, Flattening: 0.09796,
		ZonalCoefficients:      []float64{0.016298, -0.000915},
		SiderealRotationPeriod: 0.44401 * 86400,
		OrbitalPeriod:          10759.22 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 9.53667594, ADot: -0.00125060,
			E0: 0.05386179, EDot: -0.00050991,
			I0: 2.48599187, IDot: 0.00193609,
			L0: 49.95424423, LDot: 1222.49362201,
			Peri0: 92.59887831, PeriDot: -0.41897216,
			Node0: 113.66242448, NodeDot: -0.28867794,
			B: 0.00025899, C: -0.13434469, S: 0.87320147, F: 38.35125000,
		},
	},
	"Uranus": {
		Name: "Uranus", NaifID: 799,
		Mass: 8.6813e25, GM: 5.793939e15,
		EquatorialRadius:       2.5559e7,
		Flattening:             0.02293,
		SiderealRotationPeriod: -0.71833 * 86400,
		OrbitalPeriod:          30688.5 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 19.18916464, ADot: -0.00196176,
			E0: 0.04725744, EDot: -0.00004397,
			I0: 0.77263783, IDot: -0.00242939,
			L0: 313.23810451, LDot: 428.48202785,
			Peri0: 170.95427630, PeriDot: 0.40805281,
			Node0: 74.01692503, NodeDot: 0.04240589,
			B: 0.00058331, C: -0.97731848, S: 0.17689245, F: 7.67025000,
		},
	},
	"Neptune": {
		Name: "Neptune", NaifID: 899,
		Mass: 1.02409e26, GM: 6.836529e15,
		EquatorialRadius:       2.4764e7,
		Flattening:             0.01708,
		SiderealRotationPeriod: 0.6713 * 86400,
		OrbitalPeriod:          60182 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 30.06992276, ADot: 0.00026291,
			E0: 0.00859048, EDot: 0.00005105,
			I0: 1.77004347, IDot: 0.00035372,
			L0: -55.12002969, LDot: 218.45945325,
			Peri0: 44.96476227, PeriDot: -0.32241464,
			Node0: 131.78422574, NodeDot: -0.00508664,
			B: -0.00041348, C: 0.68346318, S: -0.10162547, F: 7.67025000,
		},
	},
	"Pluto": {
		Name: "Pluto", NaifID: 999,
		Mass: 1.303e22, GM: 8.71e11,
		EquatorialRadius:       1.1883e6,
		SiderealRotationPeriod: -6.38718 * 86400,
		OrbitalPeriod:          90560 * 86400,
		OrbitParameters: &orbit.Record16{
			A0: 39.48211675, ADot: -0.00031596,
			E0: 0.24882730, EDot: 0.00005170,
			I0: 17.14001206, IDot: 0.00004818,
			L0: 238.92903833, LDot: 145.20780515,
			Peri0: 224.06891629, PeriDot: -0.04062942,
			Node0: 110.30393684, NodeDot: -0.01183482,
			B: -0.01262724,
		},
	},
	"Io":       {Name: "Io", NaifID: 501, Mass: 8.931938e22, GM: 5.959916e12, EquatorialRadius: 1.8216e6, OrbitalPeriod: 1.769138 * 86400},
	"Europa":   {Name: "Europa", NaifID: 502, Mass: 4.799844e22, GM: 3.202739e12, EquatorialRadius: 1.5608e6, OrbitalPeriod: 3.551181 * 86400},
	"Ganymede": {Name: "Ganymede", NaifID: 503, Mass: 1.4819e23, GM: 9.887834e12, EquatorialRadius: 2.6341e6, OrbitalPeriod: 7.154553 * 86400},
	"Callisto": {Name: "Callisto", NaifID: 504, Mass: 1.075938e23, GM: 7.179289e12, EquatorialRadius: 2.4103e6, OrbitalPeriod: 16.689018 * 86400},
	"Titan":    {Name: "Titan", NaifID: 606, Mass: 1.34553e23, GM: 8.9781382e12, EquatorialRadius: 2.5747e6, OrbitalPeriod: 15.945 * 86400},
	"Triton":   {Name: "Triton", NaifID: 801, Mass: 2.139e22, GM: 1.4276e12, EquatorialRadius: 1.3534e6, OrbitalPeriod: -5.876854 * 86400, Pole: &Pole{RA0: 299.36, Dec0: 41.17}},
	"Miranda":  {Name: "Miranda", NaifID: 705, Mass: 6.59e19, GM: 4.4e9, EquatorialRadius: 2.3557e5, OrbitalPeriod: 1.413 * 86400},
	"Ariel":    {Name: "Ariel", NaifID: 701, Mass: 1.353e21, GM: 9.03e10, EquatorialRadius: 5.789e5, OrbitalPeriod: 2.520 * 86400},
	"Umbriel":  {Name: "Umbriel", NaifID: 702, Mass: 1.172e21, GM: 7.82e10, EquatorialRadius: 5.847e5, OrbitalPeriod: 4.144 * 86400},
	"Titania":  {Name: "Titania", NaifID: 703, Mass: 3.527e21, GM: 2.353e11, EquatorialRadius: 7.889e5, OrbitalPeriod: 8.706 * 86400},
	"Oberon":   {Name: "Oberon", NaifID: 704, Mass: 3.014e21, GM: 2.011e11, EquatorialRadius: 7.614e5, OrbitalPeriod: 13.463 * 86400},
}

// Lookup returns the registered physical parameters for name and
// whether an entry exists.
func Lookup(name string) (Params, bool) {
	p, ok := Table[name]
	return p, ok
}

// GM returns the gravitational parameter for name, or 0 if unknown.
func GM(name string) float64 {
	return Table[name].GM
}
