package memscan

import (
	"encoding/binary"
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// selfRegion returns a MemoryRegion covering a live buffer in this
// process's own address space, for exercising Scanner against real
// memory without needing a separate target process.
func selfRegion(buf []byte) MemoryRegion {
	start := uint64(uintptr(unsafe.Pointer(&buf[0])))
	return MemoryRegion{
		StartAddr:   start,
		EndAddr:     start + uint64(len(buf)),
		Permissions: "rw-p",
	}
}

func openSelfScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := NewScanner(os.Getpid())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestScannerReadInt32(t *testing.T) {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[8:], uint32(int32(-42)))

	s := openSelfScanner(t)
	region := selfRegion(buf)

	v, err := s.ReadInt32(region.StartAddr + 8)
	require.NoError(t, err)
	require.Equal(t, int32(-42), v)
}

func TestScannerReadFloat32(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(3.5))

	s := openSelfScanner(t)
	region := selfRegion(buf)

	v, err := s.ReadFloat32(region.StartAddr)
	require.NoError(t, err)
	require.InDelta(t, 3.5, v, 0.0001)
}

func TestScannerReadStringTruncatesAtNUL(t *testing.T) {
	buf := make([]byte, 32)
	copy(buf, "hello\x00garbage-after-nul")

	s := openSelfScanner(t)
	region := selfRegion(buf)

	str, err := s.ReadString(region.StartAddr, len(buf))
	require.NoError(t, err)
	require.Equal(t, "hello", str)
}

func TestScannerSearchPatternFindsExactMatch(t *testing.T) {
	buf := make([]byte, 128)
	copy(buf[40:], []byte{0xDE, 0xAD, 0xBE, 0xEF})

	s := openSelfScanner(t)
	region := selfRegion(buf)

	matches, err := s.SearchPattern([]byte{0xDE, 0xAD, 0xBE, 0xEF}, []MemoryRegion{region}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, region.StartAddr+40, matches[0].Address)
}

func TestScannerSearchPatternMaskedWildcardsSkipBytes(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf[10:], []byte{0xAA, 0x00, 0xBB, 0xCC})

	s := openSelfScanner(t)
	region := selfRegion(buf)

	pattern := []byte{0xAA, 0xFF, 0xBB, 0xCC}
	mask := []bool{true, false, true, true}

	matches, err := s.SearchPatternMasked(pattern, mask, []MemoryRegion{region}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, region.StartAddr+10, matches[0].Address)
}

func TestScannerSearchPatternMaskedLengthMismatchIsError(t *testing.T) {
	s := openSelfScanner(t)
	_, err := s.SearchPatternMasked([]byte{1, 2, 3}, []bool{true, true}, nil, 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScannerSearchInt32(t *testing.T) {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[4:], uint32(int32(1234)))

	s := openSelfScanner(t)
	region := selfRegion(buf)

	matches, err := s.SearchInt32(1234, []MemoryRegion{region}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, region.StartAddr+4, matches[0].Address)
}

func TestScannerSearchFloat32WithinTolerance(t *testing.T) {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(100.05))

	s := openSelfScanner(t)
	region := selfRegion(buf)

	matches, err := s.SearchFloat32(100.0, 0.1, []MemoryRegion{region}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, region.StartAddr+8, matches[0].Address)
}

func TestScannerResolvePointerChain(t *testing.T) {
	target := make([]byte, 4)
	binary.LittleEndian.PutUint32(target, uint32(int32(999)))
	targetAddr := uint64(uintptr(unsafe.Pointer(&target[0])))

	base := make([]byte, 16)
	binary.LittleEndian.PutUint64(base[0:], targetAddr-8) // +8 offset lands on target

	s := openSelfScanner(t)
	baseAddr := uint64(uintptr(unsafe.Pointer(&base[0])))

	addr, err := s.ResolvePointerChain(baseAddr, []uint64{8})
	require.NoError(t, err)
	require.Equal(t, targetAddr, addr)
}

func TestScannerResolvePointerChainNullPointer(t *testing.T) {
	base := make([]byte, 16) // zeroed, reads as a null pointer

	s := openSelfScanner(t)
	baseAddr := uint64(uintptr(unsafe.Pointer(&base[0])))

	_, err := s.ResolvePointerChain(baseAddr, []uint64{8, 16})
	var nilPtr *ErrNullPointer
	require.ErrorAs(t, err, &nilPtr)
	require.Equal(t, 0, nilPtr.OffsetIndex)
}

