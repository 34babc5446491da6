package domain

// GameType identifies a supported lottery game
type GameType string

const (
	GamePowerball    GameType = "powerball"
	GameMegaMillions GameType = "mega-millions"
	GamePick6        GameType = "pick-6"
	GamePick3        GameType = "pick-3"
)

// DefaultGameType is used when a summary has nothing to pick a favorite from
const DefaultGameType = GamePowerball

// Range is an inclusive integer interval
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Size returns how many distinct integers the range holds
func (r Range) Size() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether n lies within the range
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// GameConfig holds the drawing rules for one game.
// SpecialRange and SpecialName are only meaningful when SpecialCount > 0.
type GameConfig struct {
	ID           GameType `json:"id"`
	Name         string   `json:"name"`
	MainCount    int      `json:"main_count"`
	MainRange    Range    `json:"main_range"`
	SpecialCount int      `json:"special_count,omitempty"`
	SpecialRange Range    `json:"special_range,omitempty"`
	SpecialName  string   `json:"special_name,omitempty"`
	Cost         float64  `json:"cost"`
}

// HasSpecial reports whether the game draws a separate special number
func (g GameConfig) HasSpecial() bool {
	return g.SpecialCount > 0
}

// DrawResult is one generated (or played) set of numbers
type DrawResult struct {
	MainNumbers   []int  `json:"main_numbers"`
	SpecialNumber *int   `json:"special_number,omitempty"`
	SpecialLabel  string `json:"special_label,omitempty"`
}

// HasSpecial reports whether the draw carries a special number
func (d DrawResult) HasSpecial() bool {
	return d.SpecialNumber != nil
}
