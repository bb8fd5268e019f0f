package dto

type ParseInput struct {
	Text string
}

type SuggestionOutput struct {
	Action               string
	Category             string
	Activity             string
	Context              string
	RawInput             string
	Confidence           float64
	Method               string
	NeedsClarification   bool
	ClarificationMessage string
	FormattedEvent       string
	Timestamp            string
}

type CaptureOutput struct {
	Suggestion SuggestionOutput
	Recorded   bool
	Seq        int64
	Line       string
}
