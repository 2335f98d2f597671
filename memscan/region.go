// Package memscan reads a running process's address space through
// /proc/<pid>/maps and /proc/<pid>/mem: enumerating mapped regions,
// searching them for byte patterns or typed values, and parsing a
// handful of common Unity-shaped data structures out of the results.
package memscan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	minGameRegionSize = 4096
	maxGameRegionSize = 512 * 1024 * 1024
)

// MemoryRegion is one mapped range from /proc/<pid>/maps.
type MemoryRegion struct {
	StartAddr   uint64
	EndAddr     uint64
	Permissions string
	Offset      uint64
	Device      string
	Inode       uint64
	Pathname    string
}

// IsReadable reports whether the region's permissions allow reads.
func (r MemoryRegion) IsReadable() bool {
	return strings.HasPrefix(r.Permissions, "r")
}

// IsWritable reports whether the region's permissions allow writes.
func (r MemoryRegion) IsWritable() bool {
	return len(r.Permissions) > 1 && r.Permissions[1] == 'w'
}

// IsExecutable reports whether the region's permissions allow execution.
func (r MemoryRegion) IsExecutable() bool {
	return len(r.Permissions) > 2 && r.Permissions[2] == 'x'
}

// Size returns the region's length in bytes.
func (r MemoryRegion) Size() uint64 {
	return r.EndAddr - r.StartAddr
}

// IsHeap reports whether this is the process heap region.
func (r MemoryRegion) IsHeap() bool {
	return strings.Contains(r.Pathname, "[heap]")
}

// IsStack reports whether this is a thread stack region.
func (r MemoryRegion) IsStack() bool {
	return strings.Contains(r.Pathname, "[stack]")
}

// IsAnonymous reports whether the region has no backing file.
func (r MemoryRegion) IsAnonymous() bool {
	return r.Pathname == "" || r.Pathname == "[anon]"
}

// ParseMaps reads every region from an open /proc/<pid>/maps file,
// silently skipping lines it cannot parse.
func ParseMaps(r io.Reader) ([]MemoryRegion, error) {
	scanner := bufio.NewScanner(r)
	var regions []MemoryRegion

	for scanner.Scan() {
		if region, ok := parseMapsLine(scanner.Text()); ok {
			regions = append(regions, region)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading maps: %v", ErrResourceFailure, err)
	}

	return regions, nil
}

func parseMapsLine(line string) (MemoryRegion, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return MemoryRegion{}, false
	}

	addrParts := strings.SplitN(fields[0], "-", 2)
	if len(addrParts) != 2 {
		return MemoryRegion{}, false
	}

	start, err := strconv.ParseUint(addrParts[0], 16, 64)
	if err != nil {
		return MemoryRegion{}, false
	}
	end, err := strconv.ParseUint(addrParts[1], 16, 64)
	if err != nil {
		return MemoryRegion{}, false
	}

	offset, _ := strconv.ParseUint(fields[2], 16, 64)
	inode, _ := strconv.ParseUint(fields[4], 10, 64)

	pathname := ""
	if len(fields) > 5 {
		pathname = strings.Join(fields[5:], " ")
	}

	return MemoryRegion{
		StartAddr:   start,
		EndAddr:     end,
		Permissions: fields[1],
		Offset:      offset,
		Device:      fields[3],
		Inode:       inode,
		Pathname:    pathname,
	}, true
}

// FilterGameRegions keeps readable, writable, anonymous-or-heap regions
// sized between 4KiB and 512MiB, the shape a live game heap typically
// takes.
func FilterGameRegions(regions []MemoryRegion) []MemoryRegion {
	var out []MemoryRegion
	for _, r := range regions {
		if !r.IsReadable() || !r.IsWritable() {
			continue
		}
		if !r.IsAnonymous() && !r.IsHeap() {
			continue
		}
		size := r.Size()
		if size <= minGameRegionSize || size >= maxGameRegionSize {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FindLibraryRegions keeps regions whose backing pathname contains
// libName, letting a caller scope a search to a specific loaded
// library (e.g. libil2cpp.so) before calling SearchPattern.
func FindLibraryRegions(regions []MemoryRegion, libName string) []MemoryRegion {
	var out []MemoryRegion
	for _, r := range regions {
		if strings.Contains(r.Pathname, libName) {
			out = append(out, r)
		}
	}
	return out
}
