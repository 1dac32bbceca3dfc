package config

// DifficultyManager decides when fish speed up and by how much.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampEvery > 0
}

// ShouldRamp reports whether the tick with the given count is a ramp boundary.
// Tick zero is never a boundary.
func (d *DifficultyManager) ShouldRamp(ticks int) bool {
	if !d.IsEnabled() || ticks <= 0 {
		return false
	}
	return ticks%d.cfg.RampEvery == 0
}

// Apply returns velocity v after one ramp step, capped at MaxVelocity when set.
func (d *DifficultyManager) Apply(v float64) float64 {
	next := v + d.cfg.RampIncrement
	if d.cfg.MaxVelocity > 0 && next > d.cfg.MaxVelocity {
		// Never slow a fish that already starts above the cap.
		if v > d.cfg.MaxVelocity {
			return v
		}
		return d.cfg.MaxVelocity
	}
	return next
}

// VelocityAt returns the velocity a fish starting at base has during tick n
// (1-based), assuming no ramp has been skipped.
func (d *DifficultyManager) VelocityAt(base float64, n int) float64 {
	v := base
	if !d.IsEnabled() {
		return v
	}
	// Ramps happen after movement, so tick n sees the ramps of ticks < n.
	for r := (n - 1) / d.cfg.RampEvery; r > 0; r-- {
		v = d.Apply(v)
	}
	return v
}
