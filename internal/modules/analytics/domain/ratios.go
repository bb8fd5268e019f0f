package domain

import "math"

// RatioCategories is the fixed breakdown the ratio report always carries,
// zero counts included. GOAL and unknown categories are excluded.
var RatioCategories = []string{"THEORY", "PRACTICE", "TASK", "GAME"}

type RatioReport struct {
	Timeframe        string
	TotalSessions    int
	Breakdown        map[string]int
	Ratios           map[string]float64
	TheoryToPractice float64
	NoData           bool
}

// CalculateRatios counts sessions per category and reports each share as a
// percentage with one decimal. Theory to practice divides by
// max(practice, 1) so it is always defined.
func CalculateRatios(sessions []Session, timeframe string) RatioReport {
	counts := make(map[string]int, len(RatioCategories))
	for _, cat := range RatioCategories {
		counts[cat] = 0
	}
	total := 0
	for _, s := range sessions {
		if _, ok := counts[s.Category]; ok {
			counts[s.Category]++
			total++
		}
	}
	if total == 0 {
		return RatioReport{Timeframe: timeframe, Breakdown: counts, NoData: true}
	}

	ratios := make(map[string]float64, len(counts))
	for cat, count := range counts {
		ratios[cat] = round1(float64(count) / float64(total) * 100)
	}
	practice := counts["PRACTICE"]
	if practice < 1 {
		practice = 1
	}
	return RatioReport{
		Timeframe:        timeframe,
		TotalSessions:    total,
		Breakdown:        counts,
		Ratios:           ratios,
		TheoryToPractice: round2(float64(counts["THEORY"]) / float64(practice)),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
