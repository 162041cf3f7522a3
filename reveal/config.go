package reveal

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Frames  string `yaml:"frames"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Playback struct {
		FrameRate    float64 `yaml:"frameRate"`
		RateFunction string  `yaml:"rateFunction"`
		RunTimeMs    int64   `yaml:"runTimeMs"`
	} `yaml:"playback"`
}

// DefaultRate resolves the configured rate function, falling back to
// Smooth for an empty or unknown name.
func (c Config) DefaultRate() RateFunc {
	if f, ok := RateByName(c.Playback.RateFunction); ok {
		return f
	}
	return Smooth
}

// FrameInterval returns the configured frames-per-second as seconds
// per frame, defaulting to 30fps.
func (c Config) FrameInterval() float64 {
	rate := c.Playback.FrameRate
	if rate <= 0 {
		rate = 30
	}
	return 1.0 / rate
}
