package rules

/*
Next returns whether a cell is alive in the following generation under
Conway's B3/S23 rule.

A live cell survives with 2 or 3 live neighbors and dies otherwise.
A dead cell is born with exactly 3 live neighbors.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
