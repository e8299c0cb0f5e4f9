package rules

// Notation is the birth/survival notation of the only supported rule.
const Notation = "B3/S23"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 living neighbors is born (B3); a living cell with 2 or 3
living neighbors survives (S23). Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
