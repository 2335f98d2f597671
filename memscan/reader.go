package memscan

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// PatternMatch is one located occurrence of a search pattern.
type PatternMatch struct {
	Address        uint64
	RegionStart    uint64
	OffsetInRegion uint64
	MatchedBytes   []byte
}

// Scanner reads a target process's address space via /proc/<pid>/mem.
// Per-region read failures are logged at debug level and the scan moves
// on to the next region; they are never surfaced as a caller error.
type Scanner struct {
	pid    int
	mem    *os.File
	logger zerolog.Logger
}

// NewScanner opens /proc/<pid>/mem for a running process.
func NewScanner(pid int) (*Scanner, error) {
	mem, err := os.Open(fmt.Sprintf("/proc/%d/mem", pid))
	if err != nil {
		return nil, fmt.Errorf("%w: opening mem for pid %d: %v", ErrResourceFailure, pid, err)
	}
	return &Scanner{pid: pid, mem: mem, logger: zerolog.Nop()}, nil
}

// SetLogger attaches a logger used for per-region debug diagnostics.
func (s *Scanner) SetLogger(l zerolog.Logger) {
	s.logger = l
}

// Close releases the open /proc/<pid>/mem handle.
func (s *Scanner) Close() error {
	return s.mem.Close()
}

// OpenMaps opens /proc/<pid>/maps for this scanner's process.
func (s *Scanner) OpenMaps() (*os.File, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", s.pid))
	if err != nil {
		return nil, fmt.Errorf("%w: opening maps for pid %d: %v", ErrResourceFailure, s.pid, err)
	}
	return f, nil
}

// ReadValue reads size bytes starting at address.
func (s *Scanner) ReadValue(address uint64, size int) ([]byte, error) {
	buf := make([]byte, size)
	if err := s.pread(buf, int64(address)); err != nil {
		return nil, fmt.Errorf("%w: reading %d bytes at 0x%x: %v", ErrResourceFailure, size, address, err)
	}
	return buf, nil
}

// pread fills buf from offset using a raw positioned read against the
// open mem file descriptor, retrying on a short read the way a single
// os.File.ReadAt call would, but without the extra Seek a portable
// implementation needs.
func (s *Scanner) pread(buf []byte, offset int64) error {
	fd := int(s.mem.Fd())
	for len(buf) > 0 {
		n, err := unix.Pread(fd, buf, offset)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrUnexpectedEOF
		}
		buf = buf[n:]
		offset += int64(n)
	}
	return nil
}

// ReadInt32 reads a little-endian int32 at address.
func (s *Scanner) ReadInt32(address uint64) (int32, error) {
	buf, err := s.ReadValue(address, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf)), nil
}

// ReadFloat32 reads a little-endian float32 at address.
func (s *Scanner) ReadFloat32(address uint64) (float32, error) {
	buf, err := s.ReadValue(address, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// ReadString reads up to maxLen bytes at address, truncates at the
// first NUL byte, and validates the remainder as UTF-8.
func (s *Scanner) ReadString(address uint64, maxLen int) (string, error) {
	buf, err := s.ReadValue(address, maxLen)
	if err != nil {
		return "", err
	}

	n := len(buf)
	for i, b := range buf {
		if b == 0 {
			n = i
			break
		}
	}
	buf = buf[:n]

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: string at 0x%x is not valid utf-8", ErrDecodingFailure, address)
	}
	return string(buf), nil
}

// ResolvePointerChain dereferences an 8-byte little-endian pointer at
// baseAddress, adds offsets[0], dereferences again, adds offsets[1],
// and so on, returning the final address. A zero pointer read at any
// step yields *ErrNullPointer naming that step's index.
func (s *Scanner) ResolvePointerChain(baseAddress uint64, offsets []uint64) (uint64, error) {
	address := baseAddress

	for i, offset := range offsets {
		buf, err := s.ReadValue(address, 8)
		if err != nil {
			return 0, err
		}

		ptr := binary.LittleEndian.Uint64(buf)
		if ptr == 0 {
			return 0, &ErrNullPointer{OffsetIndex: i}
		}

		address = ptr + offset
	}

	return address, nil
}

// readRegion reads an entire region's bytes, logging and skipping on
// failure rather than returning an error.
func (s *Scanner) readRegion(region MemoryRegion) ([]byte, bool) {
	buf := make([]byte, region.Size())
	if err := s.pread(buf, int64(region.StartAddr)); err != nil {
		s.logger.Debug().Err(err).Uint64("start", region.StartAddr).Msg("memscan: skipping unreadable region")
		return nil, false
	}
	return buf, true
}

// SearchPattern performs an exact sliding-window byte search across
// every readable, non-empty region, stopping once limit matches are
// found.
func (s *Scanner) SearchPattern(pattern []byte, regions []MemoryRegion, limit int) ([]PatternMatch, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidInput)
	}

	var matches []PatternMatch
	for _, region := range regions {
		if !region.IsReadable() || region.Size() == 0 {
			continue
		}
		buf, ok := s.readRegion(region)
		if !ok {
			continue
		}

		for i := 0; i+len(pattern) <= len(buf); i++ {
			if bytesEqual(buf[i:i+len(pattern)], pattern) {
				matches = append(matches, PatternMatch{
					Address:        region.StartAddr + uint64(i),
					RegionStart:    region.StartAddr,
					OffsetInRegion: uint64(i),
					MatchedBytes:   append([]byte(nil), buf[i:i+len(pattern)]...),
				})
				if len(matches) >= limit {
					return matches, nil
				}
			}
		}
	}

	return matches, nil
}

// SearchPatternMasked performs a masked byte search: mask[j] == true
// requires pattern[j] to match exactly, mask[j] == false accepts any
// byte at that position.
func (s *Scanner) SearchPatternMasked(pattern []byte, mask []bool, regions []MemoryRegion, limit int) ([]PatternMatch, error) {
	if len(pattern) != len(mask) {
		return nil, fmt.Errorf("%w: pattern and mask length mismatch", ErrInvalidInput)
	}
	if len(pattern) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidInput)
	}

	var matches []PatternMatch
	for _, region := range regions {
		if !region.IsReadable() || region.Size() == 0 {
			continue
		}
		buf, ok := s.readRegion(region)
		if !ok {
			continue
		}

	outer:
		for i := 0; i+len(pattern) <= len(buf); i++ {
			for j := range pattern {
				if mask[j] && buf[i+j] != pattern[j] {
					continue outer
				}
			}

			matches = append(matches, PatternMatch{
				Address:        region.StartAddr + uint64(i),
				RegionStart:    region.StartAddr,
				OffsetInRegion: uint64(i),
				MatchedBytes:   append([]byte(nil), buf[i:i+len(pattern)]...),
			})
			if len(matches) >= limit {
				return matches, nil
			}
		}
	}

	return matches, nil
}

// SearchInt32 searches for the little-endian encoding of value.
func (s *Scanner) SearchInt32(value int32, regions []MemoryRegion, limit int) ([]PatternMatch, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(value))
	return s.SearchPattern(buf, regions, limit)
}

// SearchFloat32 searches every readable region at a 4-byte-aligned
// stride for a float32 within tolerance of value, skipping non-finite
// candidates.
func (s *Scanner) SearchFloat32(value, tolerance float32, regions []MemoryRegion, limit int) ([]PatternMatch, error) {
	var matches []PatternMatch
	for _, region := range regions {
		if !region.IsReadable() || region.Size() < 4 {
			continue
		}
		buf, ok := s.readRegion(region)
		if !ok {
			continue
		}

		for i := 0; i+4 <= len(buf); i += 4 {
			found := math.Float32frombits(binary.LittleEndian.Uint32(buf[i : i+4]))
			if !isFinite32(found) {
				continue
			}
			if abs32(found-value) <= tolerance {
				matches = append(matches, PatternMatch{
					Address:        region.StartAddr + uint64(i),
					RegionStart:    region.StartAddr,
					OffsetInRegion: uint64(i),
					MatchedBytes:   append([]byte(nil), buf[i:i+4]...),
				})
				if len(matches) >= limit {
					return matches, nil
				}
			}
		}
	}

	return matches, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
