package game

const (
	MinDimension = 3
	MaxDimension = 20

	// minSafeCells is how many cells the mine count clamp keeps free.
	minSafeCells = 3

	DefaultWidth  = 10
	DefaultHeight = 10
	DefaultMines  = 25
)

// Config is the set of options a Session is configured with.
type Config struct {
	Width       int
	Height      int
	Mines       int
	Hint        bool
	DebugReveal bool
}

// DefaultConfig starts with a hint so the first move is never a guess.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mines:  DefaultMines,
		Hint:   true,
	}
}

// LevelConfig returns the default config resized to a preset level. Level 0
// or an unknown level leaves the default size and reports false.
func LevelConfig(level int) (Config, bool) {
	cfg := DefaultConfig()
	switch level {
	case 1:
		cfg.Width, cfg.Height, cfg.Mines = 10, 10, 10 // 10x10 board with 10 mines
	case 2:
		cfg.Width, cfg.Height, cfg.Mines = 15, 15, 40 // 15x15 board with 40 mines
	case 3:
		cfg.Width, cfg.Height, cfg.Mines = 20, 20, 80 // 20x20 board with 80 mines
	default:
		return cfg, false
	}
	return cfg, true
}

func clampDimension(n int) int {
	return clamp(n, MinDimension, MaxDimension)
}

// clamp returns lo for n < lo, otherwise the smaller of n and hi. With hi < lo
// a value at or above lo yields hi.
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n < hi {
		return n
	}
	return hi
}
