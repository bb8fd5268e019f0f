package dto

type SessionOutput struct {
	Category    string
	Activity    string
	StartStamp  string
	EndStamp    string
	DurationMin int
	HasDuration bool
	Display     string
	Active      bool
}

type RatioOutput struct {
	Timeframe        string
	TotalSessions    int
	Breakdown        map[string]int
	Ratios           map[string]float64
	TheoryToPractice float64
	NoData           bool
}

type TimeSpentInput struct {
	Timeframe string
	Category  string
	Activity  string
}

type ActivityRollupOutput struct {
	Activity string
	Minutes  int
	Display  string
	Sessions int
}

type TimeSpentOutput struct {
	Timeframe    string
	Category     string
	Activity     string
	TotalMinutes int
	TotalDisplay string
	SessionCount int
	ByActivity   []ActivityRollupOutput
}

type TimelineOutput struct {
	RecentSessions []SessionOutput
	Count          int
}

type SummaryOutput struct {
	Activities      []string
	TotalActivities int
}

type AnswerInput struct {
	Query     string
	Timeframe string
}

// AnswerOutput carries exactly one payload, selected by Type: "ratio",
// "time_spent", "timeline", "summary" or "unknown".
type AnswerOutput struct {
	Type      string
	Ratio     *RatioOutput
	TimeSpent *TimeSpentOutput
	Timeline  *TimelineOutput
	Summary   *SummaryOutput
	Message   string
}
