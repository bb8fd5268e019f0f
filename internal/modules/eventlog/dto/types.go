package dto

type RecordInput struct {
	Timestamp string
	EventType string
	Category  string
	Activity  string
	Context   string
	RawInput  string
}

type RecordOutput struct {
	Seq  int64
	Line string
}

type EventOutput struct {
	Seq       int64
	Timestamp string
	EventType string
	Category  string
	Activity  string
	Context   string
	RawInput  string
}
