package tetris

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestApplyClear(t *testing.T) {
	tests := []struct {
		name  string
		lines int
		level int
		combo int
		want  Award
	}{
		{"no clear", 0, 3, 4, Award{}},
		{"single", 1, 1, 0, Award{Lines: 1, ScoreDelta: 100, Weighted: 1, Combo: 1}},
		{"double", 2, 2, 0, Award{Lines: 2, ScoreDelta: 600, Weighted: 3, Combo: 1}},
		{"triple", 3, 1, 0, Award{Lines: 3, ScoreDelta: 500, Weighted: 5, Combo: 1}},
		{"tetris", 4, 1, 0, Award{Lines: 4, ScoreDelta: 800, Weighted: 8, Combo: 1}},
		{"pentris", 5, 1, 0, Award{Lines: 5, ScoreDelta: 1200, Weighted: 12, Combo: 1}},
		{"clamped", 7, 2, 0, Award{Lines: 7, ScoreDelta: 2400, Weighted: 12, Combo: 1}},
		{"combo", 1, 2, 1, Award{Lines: 1, ScoreDelta: 300, Weighted: 1, Combo: 2}},
		{"long combo", 2, 1, 3, Award{Lines: 2, ScoreDelta: 450, Weighted: 3, Combo: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyClear(tt.lines, tt.level, tt.combo); got != tt.want {
				t.Errorf("ApplyClear(%d, %d, %d) = %+v, want %+v", tt.lines, tt.level, tt.combo, got, tt.want)
			}
		})
	}
}

func TestScoreStateTetris(t *testing.T) {
	c := qt.New(t)

	state := NewScoreState(30)
	award, levelUp := state.Apply(4)
	c.Assert(levelUp, qt.IsFalse)
	c.Assert(award.ScoreDelta, qt.Equals, 800)
	c.Assert(state.Score, qt.Equals, 800)
	c.Assert(state.LinesTowardNextLevel, qt.Equals, 8)
	c.Assert(state.Lines, qt.Equals, 4)
	c.Assert(state.Combo, qt.Equals, 1)

	_, levelUp = state.Apply(0)
	c.Assert(levelUp, qt.IsFalse)
	c.Assert(state.Combo, qt.Equals, 0)
	c.Assert(state.Score, qt.Equals, 800)

	award, levelUp = state.Apply(2)
	c.Assert(levelUp, qt.IsTrue)
	c.Assert(award.ScoreDelta, qt.Equals, 300)
	c.Assert(state.Level, qt.Equals, 2)
	c.Assert(state.LinesTowardNextLevel, qt.Equals, 0)
}

func TestScoreStateMaxLevel(t *testing.T) {
	c := qt.New(t)

	state := NewScoreState(2)
	for i := 0; i < 10; i++ {
		state.Apply(5)
	}
	c.Assert(state.Level, qt.Equals, 2)
}

func TestTickInterval(t *testing.T) {
	c := qt.New(t)

	c.Assert(TickInterval(500*time.Millisecond, 1), qt.Equals, 500*time.Millisecond)
	c.Assert(TickInterval(500*time.Millisecond, 4), qt.Equals, 250*time.Millisecond)
	c.Assert(TickInterval(500*time.Millisecond, 0), qt.Equals, 500*time.Millisecond)
	c.Assert(TickInterval(500*time.Millisecond, 9) < TickInterval(500*time.Millisecond, 8), qt.IsTrue)

	rules := DefaultRules()
	c.Assert(rules.GravityFrames(1), qt.Equals, 30)
	c.Assert(rules.GravityFrames(4), qt.Equals, 15)
	c.Assert(rules.GravityFrames(100000), qt.Equals, 1)
}

func TestRulesValidate(t *testing.T) {
	c := qt.New(t)

	c.Assert(DefaultRules().Validate(), qt.IsNil)

	rules := DefaultRules()
	rules.SpawnRow = 40
	c.Assert(rules.Validate(), qt.ErrorIs, ErrInvalidRules)

	rules = DefaultRules()
	rules.FPS = 0
	c.Assert(rules.Validate(), qt.ErrorIs, ErrInvalidRules)
}

func TestRankingMerge(t *testing.T) {
	c := qt.New(t)

	ranking := Ranking{Score: 1000, Level: 3}
	c.Assert(ranking.Merge(500, 5), qt.IsTrue)
	c.Assert(ranking, qt.Equals, Ranking{Score: 1000, Level: 5})
	c.Assert(ranking.Merge(2000, 1), qt.IsTrue)
	c.Assert(ranking, qt.Equals, Ranking{Score: 2000, Level: 5})
	c.Assert(ranking.Merge(10, 1), qt.IsFalse)
	c.Assert(ranking, qt.Equals, Ranking{Score: 2000, Level: 5})
}

func TestInsertScore(t *testing.T) {
	c := qt.New(t)

	scores := make([]int, 3)
	c.Assert(InsertScore(scores, 10), qt.Equals, 0)
	c.Assert(InsertScore(scores, 30), qt.Equals, 0)
	c.Assert(InsertScore(scores, 20), qt.Equals, 1)
	c.Assert(InsertScore(scores, 5), qt.Equals, -1)
	c.Assert(scores, qt.DeepEquals, []int{30, 20, 10})
}
