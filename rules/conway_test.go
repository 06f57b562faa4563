package rules

import "testing"

func TestNext(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := Next(true, neighbors); got != wantAlive {
			t.Errorf("live cell with %d neighbors: expected %v, got %v", neighbors, wantAlive, got)
		}

		wantBorn := neighbors == 3
		if got := Next(false, neighbors); got != wantBorn {
			t.Errorf("dead cell with %d neighbors: expected %v, got %v", neighbors, wantBorn, got)
		}
	}
}
