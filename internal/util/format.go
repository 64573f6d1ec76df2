package util

import (
	"fmt"
	"time"
)

// FrameDuration is the nominal length of one simulation frame. The loop has
// no adaptive timestep, so simulated time is frames times this.
const FrameDuration = 16 * time.Millisecond

// SimTime returns the simulated time after the given number of frames.
func SimTime(frames uint64) time.Duration {
	return time.Duration(frames) * FrameDuration
}

// FormatDuration formats a duration as m:ss.t.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	m := tenths / 600
	s := (tenths / 10) % 60
	return fmt.Sprintf("%d:%02d.%d", m, s, tenths%10)
}
