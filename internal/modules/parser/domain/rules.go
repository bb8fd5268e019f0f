package domain

// Rule tables for the rule-based parser. Action and category cues match as
// substrings of the lowered input; skip words match whole cleaned tokens.

var gameNames = wordSet("valorant", "minecraft", "fortnite", "overwatch", "apex", "rust")

var gameCues = wordSet("game", "gaming", "play", "playing")

var startCues = []string{"start", "begin", "starting", "began", "commence", "launch", "add", "set"}

var doneCues = []string{"done", "finished", "complete", "completed", "end", "ended", "stop"}

var noteCues = []string{"note", "noted", "jot", "remember", "thought"}

var theoryCues = []string{"theory", "learn", "learning", "study", "studying", "read", "reading"}

var practiceCues = []string{"practice", "practicing", "exercise", "implement", "coding", "writing"}

var taskCues = []string{"task", "work", "project", "job", "assignment"}

var stopWords = wordSet(
	"on", "with", "for", "the", "a", "an", "are", "is", "doing", "and",
	"to", "of", "in", "at", "i", "my", "this", "that", "it", "am",
	"im", "i'm", "now", "currently", "just",
)

var inflectedActionWords = wordSet("started", "beginning", "finished", "ended", "stopped", "completing")

// compoundTails are process nouns that name the activity when preceded by a
// subject word, as in "database refactor".
var compoundTails = wordSet("refactor", "migration", "update", "build", "code")

// activitySkipWords is every cue word plus filler. A token in this set can
// never be the activity.
var activitySkipWords = buildSkipWords()

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func buildSkipWords() map[string]struct{} {
	skip := make(map[string]struct{})
	for _, group := range [][]string{startCues, doneCues, noteCues, theoryCues, practiceCues, taskCues, {"goal", "goals"}} {
		for _, w := range group {
			skip[w] = struct{}{}
		}
	}
	for _, set := range []map[string]struct{}{gameNames, gameCues, stopWords, inflectedActionWords} {
		for w := range set {
			skip[w] = struct{}{}
		}
	}
	return skip
}

func isSkipWord(word string) bool {
	_, ok := activitySkipWords[word]
	return ok
}
