// Package spk reads NAIF DAF/SPK binary ephemeris kernels (Type 2 and
// Type 3 segments) and evaluates a single body's state relative to a
// single center at a requested epoch, per spec.md §4.4.
package spk

import (
	"encoding/binary"
	"math"
	"os"
	"strings"

	"github.com/kdrennan/ephem/cheby"
	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/vector"
)

const (
	recordBytes = 1024

	// maxSegments is the nominal size of the segment table. The
	// reference reader this was ported from used a fixed-capacity array
	// of 128; this implementation grows a slice instead and indexes
	// every segment a file holds, keeping the same number documented as
	// the expected working set for its linear-scan lookup.
	maxSegments = 128
)

// Segment describes one DAF summary entry: the (target, observer) pair
// it covers, the coordinate frame and SPK data type, the epoch range,
// and the record range within the file holding its Chebyshev data.
type Segment struct {
	Target, Observer int
	Frame            int
	Type             int
	EtBeg, EtEnd     float64 // TDB seconds past J2000
	RBeg, REnd       int     // 1-based word addresses into the file
}

// Kernel holds a parsed SPK/DAF file: its header fields and the flat
// summary table read by following the forward-pointer chain.
type Kernel struct {
	nd, ni    int
	bigEndian bool
	segments  []Segment

	path string
	data []byte
}

// Open reads and parses an SPK file's header and summary records. The
// full file is read into memory; segment data is decoded on demand by
// State.
func Open(path string) (*Kernel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: reading %s: %v", path, err)
	}
	if len(raw) < recordBytes {
		return nil, ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: %s is too short to hold a DAF header", path)
	}

	ident := string(raw[0:8])
	if !strings.HasPrefix(ident, "DAF/SPK") && !strings.HasPrefix(ident, "NAIF/DA") {
		return nil, ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: %s: unrecognized magic %q", path, ident)
	}

	k := &Kernel{path: path, data: raw}

	// REDESIGN: rather than choosing endianness from a substring of the
	// file path (a latent bug source for any kernel whose path happens
	// to contain "405"), probe the nd/ni fields themselves. Every real
	// SPK file has ni == 6 (TARGET, OBSERVER, FRAME, TYPE, RBEG, REND);
	// try little-endian first and fall back to big-endian only if the
	// decoded ni fails that check.
	k.bigEndian = false
	nd, ni := k.readHeaderInts(raw)
	if ni != 6 {
		k.bigEndian = true
		nd, ni = k.readHeaderInts(raw)
		if ni != 6 {
			return nil, ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: %s: could not determine endianness (ni=%d in either order)", path, ni)
		}
	}
	k.nd, k.ni = nd, ni

	fward := int(k.endian().Uint32(raw[76:80]))

	summaryDoubles := nd + (ni+1)/2
	summarySize := summaryDoubles * 8

	recNum := fward
	for recNum != 0 {
		if err := k.readSummaryRecord(recNum, summarySize); err != nil {
			return nil, err
		}
		next := k.float64At((recNum-1)*recordBytes + 0)
		if next == 0 {
			break
		}
		recNum = int(next)
	}

	return k, nil
}

func (k *Kernel) endian() binary.ByteOrder {
	if k.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// readHeaderInts decodes nd at offset 8 and ni at offset 12 using the
// kernel's current endianness guess.
func (k *Kernel) readHeaderInts(raw []byte) (nd, ni int) {
	bo := binary.LittleEndian
	if k.bigEndian {
		bo = binary.BigEndian
	}
	return int(bo.Uint32(raw[8:12])), int(bo.Uint32(raw[12:16]))
}

func (k *Kernel) float64At(byteOffset int) float64 {
	return math.Float64frombits(k.endian().Uint64(k.data[byteOffset : byteOffset+8]))
}

// readSummaryRecord decodes one 1024-byte summary record starting at
// 1-based record number recNum: a 3-double header (next, prev, nsum)
// followed by nsum summaries, each (nd doubles, ceil(ni/2) packed
// doubles), per spec.md §4.4.
func (k *Kernel) readSummaryRecord(recNum, summarySize int) error {
	base := (recNum - 1) * recordBytes
	if base+recordBytes > len(k.data) {
		return ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: %s: summary record %d out of bounds", k.path, recNum)
	}
	nsum := int(k.float64At(base + 16))

	pos := base + 24
	for i := 0; i < nsum; i++ {
		if pos+summarySize > len(k.data) {
			return ephemerr.Wrapf(ephemerr.ErrBadKernelFile, "spk: %s: truncated summary", k.path)
		}
		etbeg := k.float64At(pos)
		etend := k.float64At(pos + 8)

		intBase := pos + k.nd*8
		bo := k.endian()
		target := int(int32(bo.Uint32(k.data[intBase : intBase+4])))
		observer := int(int32(bo.Uint32(k.data[intBase+4 : intBase+8])))
		frame := int(int32(bo.Uint32(k.data[intBase+8 : intBase+12])))
		typ := int(int32(bo.Uint32(k.data[intBase+12 : intBase+16])))
		rbeg := int(int32(bo.Uint32(k.data[intBase+16 : intBase+20])))
		rend := int(int32(bo.Uint32(k.data[intBase+20 : intBase+24])))

		k.segments = append(k.segments, Segment{
			Target: target, Observer: observer, Frame: frame, Type: typ,
			EtBeg: etbeg, EtEnd: etend, RBeg: rbeg, REnd: rend,
		})

		pos += summarySize
	}
	return nil
}

// findSegment performs the linear scan of spec.md §4.4's Lookup step:
// the first summary whose (target, observer) match and whose epoch
// range contains et wins.
func (k *Kernel) findSegment(target, observer int, et float64) (Segment, bool) {
	for _, seg := range k.segments {
		if seg.Target == target && seg.Observer == observer && et >= seg.EtBeg && et <= seg.EtEnd {
			return seg, true
		}
	}
	return Segment{}, false
}

// State returns the position (meters) and velocity (m/s) of target
// relative to observer at the TDB epoch et (seconds past J2000), per
// spec.md §4.4. If no segment in the kernel covers (target, observer,
// et), it returns a zero state wrapping ephemerr.ErrNoSegment.
func (k *Kernel) State(et float64, target, observer int) (pos, vel vector.V, err error) {
	seg, ok := k.findSegment(target, observer, et)
	if !ok {
		return vector.V{}, vector.V{}, ephemerr.Wrapf(ephemerr.ErrNoSegment, "spk: no segment for target=%d observer=%d et=%v", target, observer, et)
	}

	switch seg.Type {
	case 2:
		pos, vel = k.evalType2(seg, et)
	case 3:
		pos, vel = k.evalType3(seg, et)
	default:
		return vector.V{}, vector.V{}, ephemerr.Wrapf(ephemerr.ErrUnsupported, "spk: segment type %d not supported", seg.Type)
	}

	const kmToM = 1000.0
	return pos.Scale(kmToM), vel.Scale(kmToM), nil
}

// trailer reads the four doubles (init, intlen, rsize, n) stored at
// byte (rend-4)*8, per spec.md §4.4.
func (k *Kernel) trailer(seg Segment) (init, intlen float64, rsize, n int) {
	byteOff := (seg.REnd - 4) * 8
	init = k.float64At(byteOff)
	intlen = k.float64At(byteOff + 8)
	rsize = int(k.float64At(byteOff + 16))
	n = int(k.float64At(byteOff + 24))
	return
}

// miniRecord returns the rsize doubles of the mini-record covering et,
// and the normalized Chebyshev argument tau in [-1, 1].
func (k *Kernel) miniRecord(seg Segment, et float64) (rec []float64, tau float64) {
	init, intlen, rsize, n := k.trailer(seg)

	idx := int((et - init) / intlen)
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}

	recordStart := 8*(seg.RBeg+idx*rsize) - 8 // byte offset, spec.md §4.4
	rec = make([]float64, rsize)
	for i := 0; i < rsize; i++ {
		rec[i] = k.float64At(recordStart + i*8)
	}

	mid, radius := rec[0], rec[1]
	tau = (et - mid) / radius
	return
}

// evalType2 evaluates a position-only segment: three Chebyshev blocks
// (x, y, z), velocity obtained from the derivative evaluator scaled by
// 1/RADIUS (spec.md §4.4).
func (k *Kernel) evalType2(seg Segment, et float64) (pos, vel vector.V) {
	rec, tau := k.miniRecord(seg, et)
	radius := rec[1]
	order := (len(rec)-2)/3 - 1
	nCoeff := order + 1

	for comp := 0; comp < 3; comp++ {
		start := 2 + comp*nCoeff
		block := rec[start : start+nCoeff]
		pos[comp] = cheby.Value(block, tau)
		vel[comp] = cheby.Derivative(block, tau) / radius
	}
	return
}

// evalType3 evaluates a position+velocity segment: six Chebyshev
// blocks, position from blocks 0-2, velocity read directly from blocks
// 3-5 (spec.md §4.4).
func (k *Kernel) evalType3(seg Segment, et float64) (pos, vel vector.V) {
	rec, tau := k.miniRecord(seg, et)
	nCoeff := (len(rec) - 2) / 6

	for comp := 0; comp < 3; comp++ {
		posStart := 2 + comp*nCoeff
		velStart := 2 + (3+comp)*nCoeff
		pos[comp] = cheby.Value(rec[posStart:posStart+nCoeff], tau)
		vel[comp] = cheby.Value(rec[velStart:velStart+nCoeff], tau)
	}
	return
}

// Segments returns a copy of the kernel's summary table, for callers
// (e.g. the dispatcher or cmd/spkdump) that need to enumerate coverage
// without re-parsing the file.
func (k *Kernel) Segments() []Segment {
	out := make([]Segment, len(k.segments))
	copy(out, k.segments)
	return out
}
