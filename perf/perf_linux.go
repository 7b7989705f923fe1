// SPDX-License-Identifier: MIT

//go:build linux

package perf

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fdUnavailable marks a hardware counter the kernel refused to open.
const fdUnavailable = -1

// Counters holds per-process hardware counter descriptors plus the monotonic
// clock. Open each instance once, sample as often as needed, Close when done.
type Counters struct {
	cycles int // perf fd for CPU cycles, fdUnavailable when refused
	instrs int // perf fd for retired instructions, fdUnavailable when refused
}

// Open acquires the hardware counters for the calling process.
// Each counter is opened independently and best-effort: a refusal (seccomp,
// paranoid level, missing PMU) leaves that counter unavailable without
// failing the open, since the monotonic clock always works.
// Complexity: O(1).
func Open() (*Counters, error) {
	return &Counters{
		cycles: openHardware(unix.PERF_COUNT_HW_CPU_CYCLES),
		instrs: openHardware(unix.PERF_COUNT_HW_INSTRUCTIONS),
	}, nil
}

// openHardware opens one process-wide hardware event, counting from the
// moment of the call. Returns fdUnavailable when the kernel refuses.
func openHardware(config uint64) int {
	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
		Config: config,
		Bits:   unix.PerfBitExcludeHv, // count user+kernel on this process, any CPU
	}

	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		return fdUnavailable
	}

	return fd
}

// Hardware reports whether at least one hardware counter is live.
// Complexity: O(1).
func (c *Counters) Hardware() bool {
	return c.cycles != fdUnavailable || c.instrs != fdUnavailable
}

// Sample reads all counters at one point in time.
// Unavailable hardware counters read as zero; the tick reading never fails.
// Complexity: O(1).
func (c *Counters) Sample() Snapshot {
	return Snapshot{
		Cycles:       readCounter(c.cycles),
		Ticks:        monotonicTicks(),
		Instructions: readCounter(c.instrs),
	}
}

// Close releases the counter descriptors. Safe to call once per instance;
// sampling after Close reads zero hardware counts.
func (c *Counters) Close() error {
	for _, fd := range []*int{&c.cycles, &c.instrs} {
		if *fd != fdUnavailable {
			_ = unix.Close(*fd)
			*fd = fdUnavailable
		}
	}

	return nil
}

// readCounter reads the 8-byte native-endian count from a perf descriptor.
func readCounter(fd int) uint64 {
	if fd == fdUnavailable {
		return 0
	}

	var buf [8]byte
	if n, err := unix.Read(fd, buf[:]); err != nil || n != len(buf) {
		return 0
	}

	return binary.NativeEndian.Uint64(buf[:])
}

// monotonicTicks reads CLOCK_MONOTONIC in nanoseconds.
func monotonicTicks() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}

	return uint64(ts.Sec)*1e9 + uint64(ts.Nsec)
}
