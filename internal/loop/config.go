package loop

import "time"

// Simulation tunables.
// All adjustable parameters are centralized here for easy adjustment.

// Timing. Logical updates run at a fixed tick rate; rendering is capped
// independently so slow terminals never change the physics.
const (
	TickRate     = 60 // Logical simulation ticks per second
	MaxFrameRate = 120

	tickDuration = time.Second / TickRate
	minFrameTime = time.Second / MaxFrameRate

	// Upper bound on ticks simulated per frame, so a stalled host
	// catches up gradually instead of spiraling.
	maxTicksPerFrame = 10
)

// Spawning
const (
	// DefaultSpawnChance is the per-tick probability of launching one
	// new firework.
	DefaultSpawnChance = 0.10

	// Launch speed is uniform in (minLaunchSpeed, maxLaunchSpeed];
	// negative is upward.
	minLaunchSpeed = -2.0
	maxLaunchSpeed = -1.0
)
