package tetris

// Ranking is the best score and the best level reached for a variant.
// The two are tracked independently.
type Ranking struct {
	Score int
	Level int
}

// Merge keeps the maximum of each field and reports whether either improved
func (ranking *Ranking) Merge(score int, level int) bool {
	improved := false
	if score > ranking.Score {
		ranking.Score = score
		improved = true
	}
	if level > ranking.Level {
		ranking.Level = level
		improved = true
	}
	return improved
}

// InsertScore inserts score into a descending top list of fixed length,
// sliding lower scores down. It returns the position or -1.
func InsertScore(scores []int, score int) int {
	for index, current := range scores {
		if score > current {
			slideScores(scores, index)
			scores[index] = score
			return index
		}
	}
	return -1
}

// slideScores slides the scores down to make room for a new score
func slideScores(scores []int, index int) {
	for i := len(scores) - 1; i > index; i-- {
		scores[i] = scores[i-1]
	}
}
