package domain

// FilterByGame returns the encounters played on game, keeping their order.
// An empty game means no filter.
func FilterByGame(encounters []Encounter, game GameType) []Encounter {
	if game == "" {
		return encounters
	}
	out := make([]Encounter, 0, len(encounters))
	for _, e := range encounters {
		if e.GameType == game {
			out = append(out, e)
		}
	}
	return out
}
