package utils

import "fmt"

const OuncesPerPound = 16

// OuncesFromLbsOz converts a pounds/ounces reading to ounces.
func OuncesFromLbsOz(lbs, oz int) int {
	return lbs*OuncesPerPound + oz
}

// LbsOz splits a weight in ounces into pounds and ounces.
func LbsOz(ounces int) (lbs, oz int) {
	return ounces / OuncesPerPound, ounces % OuncesPerPound
}

// FormatWeight renders ounces the way weights are called at the pit, e.g. 44 -> "2.12".
func FormatWeight(ounces int) string {
	lbs, oz := LbsOz(ounces)
	return fmt.Sprintf("%d.%02d", lbs, oz)
}

// ClockSeconds converts a fight clock reading into seconds.
// Seconds above 59 are clamped.
func ClockSeconds(minutes, seconds int) int {
	return minutes*60 + min(seconds, 59)
}
