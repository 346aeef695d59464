// ephstate prints the dispatched state of a named body at a given
// instant, exercising the dispatcher, provider, and registry packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kdrennan/ephem/dispatcher"
	"github.com/kdrennan/ephem/provider"
	"github.com/kdrennan/ephem/timescale"
	"github.com/kdrennan/ephem/units"
)

func main() {
	name := flag.String("body", "Earth", "body name to evaluate")
	jd := flag.Float64("jd", timescale.J2000, "Julian date (TDB) to evaluate at")
	flag.Parse()

	d := dispatcher.New([]provider.Provider{
		provider.NewMoonAnalytical(),
		provider.NewGUST86(),
		provider.NewTriton(),
	})

	pos, vel, err := d.Dispatch(*name, *jd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ephstate: %v\n", err)
		os.Exit(1)
	}

	distAU := units.DistanceFromMeters(pos.Norm()).AU()
	speed := units.NewVelocity(vel.Norm()).KmPerSec()

	fmt.Printf("state(%s, jd=%v):\n", *name, *jd)
	fmt.Printf("  position: %.6f %.6f %.6f m  (|r| = %.6f AU)\n", pos[0], pos[1], pos[2], distAU)
	fmt.Printf("  velocity: %.6f %.6f %.6f m/s  (|v| = %.6f km/s)\n", vel[0], vel[1], vel[2], speed)
}
