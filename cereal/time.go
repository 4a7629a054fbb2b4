package cereal

import "time"

var start = time.Now()

// GetTime is a monotonic timestamp in nanoseconds for logMonoTime.
func GetTime() uint64 {
	return uint64(time.Since(start).Nanoseconds())
}
