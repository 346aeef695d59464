// spkdump lists the segments of an SPK/DAF kernel file, and optionally
// evaluates a single (target, observer, epoch) state, exercising the
// spk package directly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kdrennan/ephem/spk"
	"github.com/kdrennan/ephem/timescale"
	"github.com/kdrennan/ephem/units"
)

func main() {
	path := flag.String("kernel", "", "path to an SPK/DAF .bsp file")
	target := flag.Int("target", 0, "NAIF target ID to evaluate (0 = list segments only)")
	observer := flag.Int("observer", 0, "NAIF observer ID")
	jd := flag.Float64("jd", timescale.J2000, "Julian date (TDB) to evaluate at")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "spkdump: -kernel is required")
		os.Exit(2)
	}

	k, err := spk.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spkdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-8s %-8s %-6s %-5s %14s %14s\n", "target", "observer", "frame", "type", "etbeg", "etend")
	for _, seg := range k.Segments() {
		fmt.Printf("%-8d %-8d %-6d %-5d %14.2f %14.2f\n",
			seg.Target, seg.Observer, seg.Frame, seg.Type, seg.EtBeg, seg.EtEnd)
	}

	if *target == 0 {
		return
	}

	et := timescale.SecondsSinceJ2000(*jd)
	pos, vel, err := k.State(et, *target, *observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spkdump: state(%d, %d, jd=%v): %v\n", *target, *observer, *jd, err)
		os.Exit(1)
	}

	d := units.DistanceFromMeters(pos.Norm())
	v := units.NewVelocity(vel.Norm())
	fmt.Printf("\nstate(target=%d, observer=%d, jd=%v):\n", *target, *observer, *jd)
	fmt.Printf("  position: %.3f %.3f %.3f m  (%.6f AU)\n", pos[0], pos[1], pos[2], d.AU())
	fmt.Printf("  velocity: %.3f %.3f %.3f m/s  (%.6f km/s)\n", vel[0], vel[1], vel[2], v.KmPerSec())
}
