package spk

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/kdrennan/ephem/ephemerr"
)

// fileBuilder assembles a minimal but spec-conformant DAF/SPK file in
// memory: one file record, one summary record, and a data area holding
// one or more mini-records, so the reader can be exercised without a
// real JPL kernel on disk.
type fileBuilder struct {
	bo   binary.ByteOrder
	data []byte
}

func newFileBuilder(bigEndian bool) *fileBuilder {
	bo := binary.ByteOrder(binary.LittleEndian)
	if bigEndian {
		bo = binary.BigEndian
	}
	buf := make([]byte, 2*recordBytes)
	copy(buf[0:8], "DAF/SPK ")
	bo.PutUint32(buf[8:12], 2)  // nd
	bo.PutUint32(buf[12:16], 6) // ni
	bo.PutUint32(buf[76:80], 2) // fward: summaries start at record 2
	bo.PutUint32(buf[80:84], 2) // bward
	return &fileBuilder{bo: bo, data: buf}
}

type segSpec struct {
	target, observer, frame, typ int
	etbeg, etend                 float64
	init, intlen                 float64
	rsize                        int
	records                      [][]float64 // each of length rsize; len(records) is n
}

// addSegments writes nsum summaries into the (single) summary record,
// then appends each segment's raw data words after the header.
func (fb *fileBuilder) addSegments(specs []segSpec) {
	nd, ni := 2, 6
	summarySize := (nd + (ni+1)/2) * 8

	fb.bo.PutUint64(fb.data[recordBytes+16:recordBytes+24], math.Float64bits(float64(len(specs))))

	pos := recordBytes + 24
	dataOffset := len(fb.data)
	for _, s := range specs {
		n := len(s.records)
		words := make([]float64, 0, s.rsize*n+4)
		for _, r := range s.records {
			words = append(words, r...)
		}
		words = append(words, s.init, s.intlen, float64(s.rsize), float64(n))

		rbeg := dataOffset/8 + 1
		rend := rbeg + len(words) - 1

		fb.putF64(pos, s.etbeg)
		fb.putF64(pos+8, s.etend)
		intBase := pos + nd*8
		fb.putI32(intBase, s.target)
		fb.putI32(intBase+4, s.observer)
		fb.putI32(intBase+8, s.frame)
		fb.putI32(intBase+12, s.typ)
		fb.putI32(intBase+16, rbeg)
		fb.putI32(intBase+20, rend)
		pos += summarySize

		for _, w := range words {
			b := make([]byte, 8)
			fb.bo.PutUint64(b, math.Float64bits(w))
			fb.data = append(fb.data, b...)
		}
		dataOffset = len(fb.data)
	}
}

func (fb *fileBuilder) putF64(byteOff int, v float64) {
	for len(fb.data) < byteOff+8 {
		fb.data = append(fb.data, 0)
	}
	fb.bo.PutUint64(fb.data[byteOff:byteOff+8], math.Float64bits(v))
}

func (fb *fileBuilder) putI32(byteOff int, v int) {
	for len(fb.data) < byteOff+4 {
		fb.data = append(fb.data, 0)
	}
	fb.bo.PutUint32(fb.data[byteOff:byteOff+4], uint32(int32(v)))
}

func (fb *fileBuilder) writeTemp(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "test*.bsp")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(fb.data); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

const (
	testTarget   = 401
	testObserver = 399
)

func type2Segment() segSpec {
	// mid=0, radius=43200s (half a day): x,y,z constant at 10,20,30 km.
	rec := []float64{0, 43200, 10, 0, 20, 0, 30, 0}
	return segSpec{
		target: testTarget, observer: testObserver, frame: 1, typ: 2,
		etbeg: -43200, etend: 43200,
		init: -43200, intlen: 86400, rsize: len(rec), records: [][]float64{rec},
	}
}

func type3Segment() segSpec {
	// position constant (5,6,7) km, velocity constant (1,2,3) km/s.
	rec := []float64{0, 43200, 5, 0, 6, 0, 7, 0, 1, 0, 2, 0, 3, 0}
	return segSpec{
		target: 501, observer: 599, frame: 1, typ: 3,
		etbeg: -43200, etend: 43200,
		init: -43200, intlen: 86400, rsize: len(rec), records: [][]float64{rec},
	}
}

func TestOpenInvalidMagic(t *testing.T) {
	fb := newFileBuilder(false)
	copy(fb.data[0:8], "NOTASPK ")
	path := fb.writeTemp(t)
	_, err := Open(path)
	if !ephemerr.Is(err, ephemerr.ErrBadKernelFile) {
		t.Fatalf("expected ErrBadKernelFile, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/path/to/kernel.bsp")
	if !ephemerr.Is(err, ephemerr.ErrBadKernelFile) {
		t.Fatalf("expected ErrBadKernelFile, got %v", err)
	}
}

func TestOpenTooShort(t *testing.T) {
	f, err := os.CreateTemp("", "short*.bsp")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.Write([]byte("DAF/SPK "))
	f.Close()

	_, err = Open(f.Name())
	if !ephemerr.Is(err, ephemerr.ErrBadKernelFile) {
		t.Fatalf("expected ErrBadKernelFile, got %v", err)
	}
}

func TestOpenType2AndState(t *testing.T) {
	fb := newFileBuilder(false)
	fb.addSegments([]segSpec{type2Segment()})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(k.Segments()) != 1 {
		t.Fatalf("len(Segments()) = %d, want 1", len(k.Segments()))
	}

	pos, vel, err := k.State(0, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	want := [3]float64{10000, 20000, 30000} // km -> m
	for i := range want {
		if math.Abs(pos[i]-want[i]) > 1e-6 {
			t.Errorf("pos[%d] = %v, want %v", i, pos[i], want[i])
		}
		if vel[i] != 0 {
			t.Errorf("vel[%d] = %v, want 0 (constant position segment)", i, vel[i])
		}
	}
}

func TestOpenType3AndState(t *testing.T) {
	fb := newFileBuilder(false)
	fb.addSegments([]segSpec{type3Segment()})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}

	pos, vel, err := k.State(1000, 501, 599)
	if err != nil {
		t.Fatal(err)
	}
	wantPos := [3]float64{5000, 6000, 7000}
	wantVel := [3]float64{1000, 2000, 3000}
	for i := 0; i < 3; i++ {
		if math.Abs(pos[i]-wantPos[i]) > 1e-6 {
			t.Errorf("pos[%d] = %v, want %v", i, pos[i], wantPos[i])
		}
		if math.Abs(vel[i]-wantVel[i]) > 1e-6 {
			t.Errorf("vel[%d] = %v, want %v", i, vel[i], wantVel[i])
		}
	}
}

func TestStateNoSegment(t *testing.T) {
	fb := newFileBuilder(false)
	fb.addSegments([]segSpec{type2Segment()})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = k.State(0, 999, 888)
	if !ephemerr.Is(err, ephemerr.ErrNoSegment) {
		t.Fatalf("expected ErrNoSegment, got %v", err)
	}
}

func TestStateUnsupportedType(t *testing.T) {
	fb := newFileBuilder(false)
	seg := type2Segment()
	seg.typ = 13
	fb.addSegments([]segSpec{seg})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = k.State(0, testTarget, testObserver)
	if !ephemerr.Is(err, ephemerr.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestOpenBigEndian(t *testing.T) {
	fb := newFileBuilder(true)
	fb.addSegments([]segSpec{type2Segment()})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}
	pos, _, err := k.State(0, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos[0]-10000) > 1e-6 {
		t.Errorf("big-endian pos[0] = %v, want 10000", pos[0])
	}
}

// TestSegmentIndexing implements spec.md §8 invariant 4: for an et
// strictly inside a segment of known (init, intlen, n), the selected
// mini-record index equals floor((et-init)/intlen) and lies in [0, n).
// Two mini-records with distinct constant positions let the test tell
// which record was actually selected.
func TestSegmentIndexing(t *testing.T) {
	fb := newFileBuilder(false)
	rec0 := []float64{-43200, 43200, 1, 0, 2, 0, 3, 0}
	rec1 := []float64{43200, 43200, 4, 0, 5, 0, 6, 0}
	fb.addSegments([]segSpec{{
		target: testTarget, observer: testObserver, frame: 1, typ: 2,
		etbeg: -86400, etend: 86400,
		init: -86400, intlen: 86400, rsize: 8,
		records: [][]float64{rec0, rec1},
	}})

	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}

	// et = -1 is inside record 0's interval [-86400, 0).
	pos0, _, err := k.State(-1, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	want0 := [3]float64{1000, 2000, 3000}
	for i := range want0 {
		if math.Abs(pos0[i]-want0[i]) > 1e-6 {
			t.Errorf("record 0: pos[%d] = %v, want %v", i, pos0[i], want0[i])
		}
	}

	// et = 1 is inside record 1's interval [0, 86400).
	pos1, _, err := k.State(1, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	want1 := [3]float64{4000, 5000, 6000}
	for i := range want1 {
		if math.Abs(pos1[i]-want1[i]) > 1e-6 {
			t.Errorf("record 1: pos[%d] = %v, want %v", i, pos1[i], want1[i])
		}
	}

	// et beyond the segment's last record clamps to n-1, not a crash.
	posEnd, _, err := k.State(86400, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	if posEnd != pos1 {
		t.Errorf("clamped et: pos = %v, want %v (record 1, clamped)", posEnd, pos1)
	}
}

func TestTwoSegmentsIndependentLookup(t *testing.T) {
	fb := newFileBuilder(false)
	fb.addSegments([]segSpec{type2Segment(), type3Segment()})
	k, err := Open(fb.writeTemp(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(k.Segments()) != 2 {
		t.Fatalf("len(Segments()) = %d, want 2", len(k.Segments()))
	}

	pos2, _, err := k.State(0, testTarget, testObserver)
	if err != nil {
		t.Fatal(err)
	}
	pos3, vel3, err := k.State(0, 501, 599)
	if err != nil {
		t.Fatal(err)
	}
	if pos2 == pos3 {
		t.Error("segments should be independently addressable")
	}
	if vel3.Norm() == 0 && pos3.Norm() == 0 {
		t.Error("type 3 segment should have nonzero state")
	}
}
