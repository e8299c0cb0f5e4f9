package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Errorf("alive cell with %d neighbors: expected %v, got %v", n, wantAlive, got)
		}

		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("dead cell with %d neighbors: expected %v, got %v", n, wantBorn, got)
		}
	}
}
