package core

import "testing"

func TestPositionIn(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"bottom-left corner", Pos(0, 0), true},
		{"top-right corner", Pos(Columns-1, Rows-1), true},
		{"left of board", Pos(-1, 0), false},
		{"right of board", Pos(Columns, 0), false},
		{"below board", Pos(3, -1), false},
		{"above board", Pos(3, Rows), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.pos.In(Columns, Rows)
			if result != tc.expected {
				t.Errorf("%v.In(%d, %d) = %v, expected %v", tc.pos, Columns, Rows, result, tc.expected)
			}
		})
	}
}

func TestPositionStep(t *testing.T) {
	start := Pos(3, 2)

	tests := []struct {
		name     string
		o        Orientation
		n        int
		expected Position
	}{
		{"horizontal forward", Horizontal, 2, Pos(5, 2)},
		{"horizontal backward", Horizontal, -3, Pos(0, 2)},
		{"vertical forward", Vertical, 1, Pos(3, 3)},
		{"diagonal up forward", DiagonalUp, 2, Pos(5, 4)},
		{"diagonal up backward", DiagonalUp, -2, Pos(1, 0)},
		{"diagonal down forward", DiagonalDown, 2, Pos(5, 0)},
		{"diagonal down backward", DiagonalDown, -1, Pos(2, 3)},
		{"zero steps", Vertical, 0, start},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := start.Step(tc.o, tc.n)
			if result != tc.expected {
				t.Errorf("Step(%v, %d) = %v, expected %v", tc.o, tc.n, result, tc.expected)
			}
		})
	}
}

func TestOrientationsAreDistinctAndUndirected(t *testing.T) {
	seen := make(map[Orientation]bool)
	for _, o := range Orientations() {
		if seen[o] {
			t.Errorf("orientation %v listed twice", o)
		}
		seen[o] = true

		reverse := Orientation{DCol: -o.DCol, DRow: -o.DRow}
		if seen[reverse] {
			t.Errorf("orientation %v and its reverse both listed", o)
		}
		if o.String() == "unknown" {
			t.Errorf("orientation %+v has no name", o)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRotationNext(t *testing.T) {
	r := DefaultRotation()

	if r.First() != PlayerA {
		t.Errorf("First() = %v, expected %v", r.First(), PlayerA)
	}
	if r.Next(PlayerA) != PlayerB {
		t.Errorf("Next(PlayerA) = %v, expected %v", r.Next(PlayerA), PlayerB)
	}
	if r.Next(PlayerB) != PlayerA {
		t.Errorf("Next(PlayerB) = %v, expected %v", r.Next(PlayerB), PlayerA)
	}
	if r.Next(NoPlayer) != PlayerA {
		t.Errorf("Next(NoPlayer) = %v, expected %v", r.Next(NoPlayer), PlayerA)
	}

	swapped := Rotation{PlayerB, PlayerA}
	if swapped.First() != PlayerB || swapped.Next(PlayerB) != PlayerA {
		t.Error("swapped rotation should start with PlayerB and pass to PlayerA")
	}
}

func TestRotationValid(t *testing.T) {
	tests := []struct {
		name     string
		r        Rotation
		expected bool
	}{
		{"default", DefaultRotation(), true},
		{"swapped", Rotation{PlayerB, PlayerA}, true},
		{"duplicate", Rotation{PlayerA, PlayerA}, false},
		{"missing player", Rotation{PlayerA, NoPlayer}, false},
		{"zero value", Rotation{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Valid() != tc.expected {
				t.Errorf("Valid() = %v, expected %v", tc.r.Valid(), tc.expected)
			}
		})
	}
}

func TestPlayerIndex(t *testing.T) {
	if PlayerA.Index() != 0 || PlayerB.Index() != 1 || NoPlayer.Index() != -1 {
		t.Errorf("Index() = %d/%d/%d, expected 0/1/-1", PlayerA.Index(), PlayerB.Index(), NoPlayer.Index())
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Red "); !ok || c != ColorRed {
		t.Errorf("ParseColor(\" Red \") = %v, %v, expected %v, true", c, ok, ColorRed)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
