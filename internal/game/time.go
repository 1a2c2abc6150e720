package game

import "fmt"

// Time is an hour of the simulated day, 0..=24. It has timestamp
// semantics: two times cannot be added, only shifted by a Duration.
type Time int

// Duration is a signed hour count.
type Duration int

// Add shifts a time forward by d hours.
func (t Time) Add(d Duration) Time { return Time(int(t) + int(d)) }

// Sub shifts a time backward by d hours.
func (t Time) Sub(d Duration) Time { return Time(int(t) - int(d)) }

// IsBetween9And19 reports whether the time is within the NPC working day.
func (t Time) IsBetween9And19() bool { return t >= 9 && t <= 19 }

// IsOptimalStudyTime reports whether studying now earns full knowledge.
func (t Time) IsOptimalStudyTime() bool { return t < 19 }

// IsSuboptimalStudyTime reports whether studying now costs extra health.
func (t Time) IsSuboptimalStudyTime() bool { return t > 21 || t < 4 }

// IsCafeOpen reports whether the PUNK cafe is open.
func (t Time) IsCafeOpen() bool { return t >= 10 && t <= 18 }

func (t Time) String() string { return fmt.Sprintf("%d:00", int(t)) }
