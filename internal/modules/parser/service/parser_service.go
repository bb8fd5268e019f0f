package service

import (
	"strings"

	"tvp/internal/modules/parser/domain"
	"tvp/internal/platform/clock"
)

type ParserService struct {
	clock clock.Clock
}

func NewParserService(clk clock.Clock) *ParserService {
	return &ParserService{clock: clk}
}

// Suggest runs the rule-based parse and stamps the suggestion with the
// current time. Blank input is a clarification, not an event.
func (s *ParserService) Suggest(text string) (domain.Suggestion, string) {
	timestamp := s.clock.Now().Format("2006-01-02T15:04:05")
	if strings.TrimSpace(text) == "" {
		return domain.Suggestion{
			Action:               domain.ActionStart,
			RawInput:             text,
			Method:               "rule_based",
			NeedsClarification:   true,
			ClarificationMessage: "Please describe what you are doing.",
		}, timestamp
	}
	return domain.Parse(text), timestamp
}
