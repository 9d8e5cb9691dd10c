package connect4

import (
	"testing"

	"github.com/vovakirdan/dropfour/internal/core"
)

func TestWinningStreaks(t *testing.T) {
	tests := []struct {
		name    string
		drops   []drop
		at      core.Position
		longest int
		wins    bool
	}{
		{
			name:    "vertical four",
			drops:   []drop{{0, a}, {0, a}, {0, a}, {0, a}},
			at:      core.Pos(0, 3),
			longest: 4,
			wins:    true,
		},
		{
			name:    "vertical three",
			drops:   []drop{{0, a}, {0, a}, {0, a}},
			at:      core.Pos(0, 2),
			longest: 3,
			wins:    false,
		},
		{
			name:    "horizontal four",
			drops:   []drop{{0, a}, {1, a}, {2, a}, {3, a}},
			at:      core.Pos(3, 0),
			longest: 4,
			wins:    true,
		},
		{
			name:    "horizontal three",
			drops:   []drop{{0, a}, {1, a}, {2, a}},
			at:      core.Pos(2, 0),
			longest: 3,
			wins:    false,
		},
		{
			name:    "horizontal completed in the middle",
			drops:   []drop{{0, a}, {1, a}, {3, a}, {2, a}},
			at:      core.Pos(2, 0),
			longest: 4,
			wins:    true,
		},
		{
			name: "diagonal up four",
			drops: []drop{
				{0, a},
				{1, b}, {1, a},
				{2, b}, {2, b}, {2, a},
				{3, b}, {3, a}, {3, b}, {3, a},
			},
			at:      core.Pos(3, 3),
			longest: 4,
			wins:    true,
		},
		{
			name: "diagonal up three",
			drops: []drop{
				{0, a},
				{1, b}, {1, a},
				{2, b}, {2, b}, {2, a},
			},
			at:      core.Pos(2, 2),
			longest: 3,
			wins:    false,
		},
		{
			name: "diagonal down four",
			drops: []drop{
				{0, b}, {0, b}, {0, b}, {0, a},
				{1, b}, {1, b}, {1, a},
				{2, b}, {2, a},
				{3, a},
			},
			at:      core.Pos(3, 0),
			longest: 4,
			wins:    true,
		},
		{
			name:    "six in a row is still a win",
			drops:   []drop{{0, a}, {1, a}, {2, a}, {4, a}, {5, a}, {3, a}},
			at:      core.Pos(3, 0),
			longest: 6,
			wins:    true,
		},
		{
			name:    "opponent piece breaks the run",
			drops:   []drop{{0, a}, {1, a}, {2, b}, {3, a}, {4, a}},
			at:      core.Pos(4, 0),
			longest: 2,
			wins:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGrid(t, tc.drops...)

			if got := g.LongestStreakThrough(tc.at); got != tc.longest {
				t.Errorf("LongestStreakThrough(%v) = %d, expected %d", tc.at, got, tc.longest)
			}
			if got := g.HasWinningStreak(tc.at); got != tc.wins {
				t.Errorf("HasWinningStreak(%v) = %v, expected %v", tc.at, got, tc.wins)
			}
		})
	}
}

func TestStreakFromEveryPieceOfTheRun(t *testing.T) {
	g := buildGrid(t,
		drop{0, a},
		drop{1, b}, drop{1, a},
		drop{2, b}, drop{2, b}, drop{2, a},
		drop{3, b}, drop{3, a}, drop{3, b}, drop{3, a},
	)

	for _, pos := range []core.Position{core.Pos(0, 0), core.Pos(1, 1), core.Pos(2, 2), core.Pos(3, 3)} {
		if got := g.StreakLength(pos, core.DiagonalUp); got != 4 {
			t.Errorf("StreakLength(%v, diagonal up) = %d, expected 4", pos, got)
		}
	}
}

func TestStreakOnEmptyOrOffBoard(t *testing.T) {
	g := &Grid{}

	if got := g.LongestStreakThrough(core.Pos(3, 0)); got != 0 {
		t.Errorf("LongestStreakThrough on empty grid = %d, expected 0", got)
	}
	if g.HasWinningStreak(core.Pos(3, 0)) {
		t.Error("empty grid should have no winning streak")
	}
	if got := g.LongestStreakThrough(core.Pos(-1, 9)); got != 0 {
		t.Errorf("LongestStreakThrough off board = %d, expected 0", got)
	}
	if line := g.WinningLine(core.Pos(3, 0)); line != nil {
		t.Errorf("WinningLine on empty grid = %v, expected nil", line)
	}
}

func TestWinningLine(t *testing.T) {
	g := buildGrid(t,
		drop{0, b}, drop{0, b}, drop{0, b}, drop{0, a},
		drop{1, b}, drop{1, b}, drop{1, a},
		drop{2, b}, drop{2, a},
		drop{3, a},
	)

	expected := []core.Position{core.Pos(0, 3), core.Pos(1, 2), core.Pos(2, 1), core.Pos(3, 0)}
	line := g.WinningLine(core.Pos(3, 0))
	if len(line) != len(expected) {
		t.Fatalf("WinningLine() = %v, expected %v", line, expected)
	}
	for i := range expected {
		if line[i] != expected[i] {
			t.Errorf("WinningLine()[%d] = %v, expected %v", i, line[i], expected[i])
		}
	}

	if line := g.WinningLine(core.Pos(0, 0)); line != nil {
		t.Errorf("WinningLine through a non-winning piece = %v, expected nil", line)
	}
}

func TestNoFalseWinOnCheckeredBoard(t *testing.T) {
	// Owner alternates every row and every second column, so no line holds
	// more than two same-owner pieces in a row.
	g := &Grid{}
	for column := 0; column < core.Columns; column++ {
		for row := 0; row < core.Rows; row++ {
			player := a
			if (row+column/2)%2 == 1 {
				player = b
			}
			if _, err := g.Place(column, player); err != nil {
				t.Fatalf("Place(%d) failed: %v", column, err)
			}
		}
	}

	if !g.IsFull() {
		t.Fatal("grid should be full")
	}
	for column := 0; column < core.Columns; column++ {
		for row := 0; row < core.Rows; row++ {
			pos := core.Pos(column, row)
			if g.HasWinningStreak(pos) {
				t.Errorf("HasWinningStreak(%v) = true on a board with no four in a row", pos)
			}
			if got := g.LongestStreakThrough(pos); got > 2 {
				t.Errorf("LongestStreakThrough(%v) = %d, expected at most 2", pos, got)
			}
		}
	}
}
