package reveal

// A ProgressClock converts the elapsed run time of one animation into
// a progress value in [0,1]. The caller supplies monotonic elapsed
// times; the clock additionally never lets an issued value go
// backwards, so downstream bounds are non-reversing during playback.
type ProgressClock struct {
	runTimeMs int64
	rate      RateFunc
	last      float64
}

// NewProgressClock creates a ProgressClock for an animation with the
// given run time and rate function. A nil rate falls back to Smooth.
func NewProgressClock(runTimeMs int64, rate RateFunc) *ProgressClock {
	c := new(ProgressClock)
	c.runTimeMs = runTimeMs
	if rate == nil {
		rate = Smooth
	}
	c.rate = rate
	return c
}

// Advance issues the progress value for the given elapsed time in
// milliseconds. Elapsed time is clamped to [0, runTime]; a zero run
// time is an instantaneous animation and reads 1.0 immediately.
func (c *ProgressClock) Advance(elapsedMs int64) float64 {
	p := c.rate(c.ratio(elapsedMs))
	p = clamp01(p)
	if p > c.last {
		c.last = p
	}
	return c.last
}

// Current returns the last issued progress value.
func (c *ProgressClock) Current() float64 {
	return c.last
}

func (c *ProgressClock) ratio(elapsedMs int64) float64 {
	if c.runTimeMs <= 0 {
		return 1.0
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > c.runTimeMs {
		elapsedMs = c.runTimeMs
	}
	return float64(elapsedMs) / float64(c.runTimeMs)
}
