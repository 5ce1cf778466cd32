package service

import "math"

// Level ambang penilaian.
const (
	LevelGood    = "good"
	LevelAverage = "average"
	LevelWeak    = "weak"
)

// ComputeScore: skor = round(benar/total * maxScore). Total 0 → 0.
func ComputeScore(correct, total, maxScore int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * float64(maxScore)))
}

// Percent: persentase benar (0-100). Total 0 → 0.
func Percent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10000) / 100
}

// ScorePercent: persentase skor terhadap nilai maksimum kuis.
func ScorePercent(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return math.Round(float64(score)/float64(maxScore)*10000) / 100
}

// LevelFor: >=90 good, >=60 average, sisanya weak.
func LevelFor(percent float64) string {
	switch {
	case percent >= 90:
		return LevelGood
	case percent >= 60:
		return LevelAverage
	default:
		return LevelWeak
	}
}
