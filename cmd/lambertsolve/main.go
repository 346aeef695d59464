// lambertsolve solves the two-point boundary value problem between two
// positions for a given time of flight, printing every transfer orbit
// Izzo's algorithm finds, exercising the lambert package directly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kdrennan/ephem/lambert"
	"github.com/kdrennan/ephem/units"
	"github.com/kdrennan/ephem/vector"
)

// gmSun is the Sun's standard gravitational parameter (m^3/s^2).
const gmSun = 1.32712440018e20

func main() {
	r1x := flag.Float64("r1x", 1.0, "r1 x-component, AU")
	r1y := flag.Float64("r1y", 0.0, "r1 y-component, AU")
	r1z := flag.Float64("r1z", 0.0, "r1 z-component, AU")
	r2x := flag.Float64("r2x", 0.0, "r2 x-component, AU")
	r2y := flag.Float64("r2y", 1.0, "r2 y-component, AU")
	r2z := flag.Float64("r2z", 0.0, "r2 z-component, AU")
	tof := flag.Float64("tof", 2.5e6, "time of flight, seconds")
	mu := flag.Float64("mu", gmSun, "gravitational parameter, m^3/s^2")
	cw := flag.Bool("cw", false, "clockwise transfer")
	nmaxCap := flag.Int("nmax", 0, "maximum number of revolutions")
	flag.Parse()

	r1 := vector.V{
		units.DistanceFromAU(*r1x).M(),
		units.DistanceFromAU(*r1y).M(),
		units.DistanceFromAU(*r1z).M(),
	}
	r2 := vector.V{
		units.DistanceFromAU(*r2x).M(),
		units.DistanceFromAU(*r2y).M(),
		units.DistanceFromAU(*r2z).M(),
	}

	sols, err := lambert.Solve(r1, r2, *tof, *mu, *cw, *nmaxCap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lambertsolve: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d solution(s):\n", len(sols))
	for i, sol := range sols {
		v1 := units.NewVelocity(sol.V1.Norm())
		v2 := units.NewVelocity(sol.V2.Norm())
		fmt.Printf("  [%d] revs=%d iterations=%d\n", i, sol.Revolutions, sol.Iterations)
		fmt.Printf("      v1 = %.3f %.3f %.3f m/s  (|v1| = %.6f km/s)\n",
			sol.V1[0], sol.V1[1], sol.V1[2], v1.KmPerSec())
		fmt.Printf("      v2 = %.3f %.3f %.3f m/s  (|v2| = %.6f km/s)\n",
			sol.V2[0], sol.V2[1], sol.V2[2], v2.KmPerSec())
	}
}
