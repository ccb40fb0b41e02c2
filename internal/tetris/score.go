package tetris

import (
	"math"
	"time"
)

var (
	lineRewards = []int{0, 100, 300, 500, 800, 1200}
	lineWeights = []int{0, 1, 3, 5, 8, 12}
)

const (
	comboBonus      = 50
	levelGoalFactor = 10
	maxScore        = 99999999
)

// Award is the outcome of one lock for the score policy
type Award struct {
	Lines      int
	ScoreDelta int
	Weighted   int
	Combo      int
}

// ApplyClear computes the score delta, weighted lines and the new combo
// count for a lock that cleared lines rows at level.
func ApplyClear(lines int, level int, combo int) Award {
	if lines <= 0 {
		return Award{}
	}
	index := lines
	if index >= len(lineRewards) {
		index = len(lineRewards) - 1
	}

	award := Award{
		Lines:      lines,
		ScoreDelta: lineRewards[index] * level,
		Weighted:   lineWeights[index],
		Combo:      combo + 1,
	}
	if award.Combo > 1 {
		award.ScoreDelta += comboBonus * (award.Combo - 1) * level
	}
	return award
}

// LevelGoal returns the weighted lines needed to leave level
func LevelGoal(level int) int {
	return level * levelGoalFactor
}

// TickInterval returns the gravity interval at level: base / sqrt(level)
func TickInterval(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return time.Duration(float64(base) / math.Sqrt(float64(level)))
}

// ScoreState is the running score of a game
type ScoreState struct {
	Score                int
	Level                int
	LinesTowardNextLevel int
	Combo                int
	Lines                int
	maxLevel             int
}

// NewScoreState creates a score state at level 1
func NewScoreState(maxLevel int) ScoreState {
	return ScoreState{Level: 1, maxLevel: maxLevel}
}

// Apply folds a lock that cleared lines rows into the state and reports
// whether the level went up.
func (state *ScoreState) Apply(lines int) (Award, bool) {
	award := ApplyClear(lines, state.Level, state.Combo)
	state.Combo = award.Combo
	state.Lines += award.Lines
	state.Score += award.ScoreDelta
	if state.Score > maxScore {
		state.Score = maxScore
	}

	state.LinesTowardNextLevel += award.Weighted
	if state.LinesTowardNextLevel < LevelGoal(state.Level) {
		return award, false
	}
	if state.maxLevel > 0 && state.Level >= state.maxLevel {
		return award, false
	}
	state.Level++
	state.LinesTowardNextLevel = 0
	return award, true
}
