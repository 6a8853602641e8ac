package testutil

import "testing"

func TestRandomReproducible(t *testing.T) {
	a := Random(42, 3, 4)
	b := Random(42, 3, 4)
	RequireMatrixNearlyEqual(t, a, b, 0)
}

func TestMovingPatch(t *testing.T) {
	patch := [][]float64{{1, 2}, {3, 4}}
	frames := MovingPatch(5, 5, 3, patch, 1, 0, 0, 1)
	if len(frames) != 3 {
		t.Fatalf("len = %d, want 3", len(frames))
	}
	if got := frames[2].At(1, 2); got != 1 {
		t.Fatalf("frame 2 (1,2) = %v, want 1", got)
	}
	if got := frames[2].At(2, 3); got != 4 {
		t.Fatalf("frame 2 (2,3) = %v, want 4", got)
	}
	if got := frames[2].At(1, 0); got != 0 {
		t.Fatalf("frame 2 (1,0) = %v, want 0", got)
	}
}

func TestShiftedRowsClipsAtEdge(t *testing.T) {
	frames := ShiftedRows(4, 2, []float64{1, 2, 3, 4}, 1)
	if got := frames[1].At(3, 0); got != 0 {
		t.Fatalf("frame 1 (3,0) = %v, want 0", got)
	}
	if got := frames[1].At(3, 3); got != 3 {
		t.Fatalf("frame 1 (3,3) = %v, want 3", got)
	}
}
