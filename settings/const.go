package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	SMALL_SEGMENT_SIZE   = 1024 * 1024
	LOOP_DELAY           = 10 * time.Millisecond
	DT_CTRL              = 0.01 // seconds, must match LOOP_DELAY
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
	SINK_RATE_DIVIDER    = 10 // publish to slow sinks every N cycles
)

// topics that carry one small struct per cycle
var smallSegments = map[string]bool{
	"carState":        true,
	"steeringCommand": true,
	"actuatorRequest": true,
	"controlsIn":      true,
}

func IsSmallSegment(name string) bool {
	return smallSegments[name]
}
