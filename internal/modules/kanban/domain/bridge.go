package domain

import (
	"fmt"

	"tvp/internal/platform/normalize"
)

// BridgeEvent is the slice of a recent event the bridge projection needs.
type BridgeEvent struct {
	Timestamp string
	EventType string
	Category  string
	Activity  string
	RawInput  string
}

// Bridge reconciles declared intent (the manual backlog) with observed
// reality (the event stream) into bounded lists.
type Bridge struct {
	Now      []string
	Paused   []string
	Captured []string
	Next     []string
}

type taskState struct {
	status     string
	activity   string
	category   string
	fromManual bool
}

// BuildBridge replays the event window chronologically. A start demotes the
// previously active task to paused unless that task is a GAME; a done marks
// the task done and frees the active slot. Next is filled from paused, then
// untouched backlog, then captured, deduped by normalized key and capped at
// three entries.
func BuildBridge(events []BridgeEvent, backlog []string) Bridge {
	bridge := Bridge{Now: []string{}, Paused: []string{}, Captured: []string{}, Next: []string{}}
	if len(events) == 0 {
		return bridge
	}

	manual := make(map[normalize.Key]struct{})
	for _, item := range backlog {
		if item == "" {
			continue
		}
		manual[normalize.Task(item)] = struct{}{}
	}

	states := make(map[normalize.Key]*taskState)
	var order []normalize.Key
	var activeKey normalize.Key
	haveActive := false

	upsert := func(key normalize.Key, state *taskState) {
		if _, ok := states[key]; !ok {
			order = append(order, key)
		}
		states[key] = state
	}

	for _, event := range events {
		if event.Activity == "" {
			continue
		}
		key := normalize.Task(event.Activity)
		if key.Empty() {
			continue
		}

		switch event.EventType {
		case "start":
			if haveActive {
				if prev, ok := states[activeKey]; ok && prev.status == "active" && prev.category != "GAME" {
					prev.status = "paused"
				}
			}
			category := event.Category
			if category == "" {
				category = "TASK"
			}
			_, fromManual := manual[key]
			upsert(key, &taskState{
				status:     "active",
				activity:   displayActivity(event.Activity),
				category:   category,
				fromManual: fromManual,
			})
			activeKey = key
			haveActive = true

		case "done":
			if state, ok := states[key]; ok {
				state.status = "done"
			} else {
				category := event.Category
				if category == "" {
					category = "TASK"
				}
				_, fromManual := manual[key]
				upsert(key, &taskState{
					status:     "done",
					activity:   displayActivity(event.Activity),
					category:   category,
					fromManual: fromManual,
				})
			}
			if haveActive && activeKey == key {
				haveActive = false
			}
		}
	}

	for _, key := range order {
		state := states[key]
		if state.status != "active" && state.status != "paused" {
			continue
		}
		line := fmt.Sprintf("%s [category:: %s] [source:: Event]", state.activity, titleWord(state.category))
		if state.status == "active" {
			bridge.Now = append(bridge.Now, line)
		} else {
			bridge.Paused = append(bridge.Paused, line)
		}
		if !state.fromManual {
			bridge.Captured = append(bridge.Captured, line)
		}
	}

	seen := make(map[normalize.Key]struct{})
	addNext := func(item string) {
		if len(bridge.Next) >= nextListCap {
			return
		}
		key := normalize.Task(item)
		if key.Empty() {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		bridge.Next = append(bridge.Next, item)
	}

	for _, item := range bridge.Paused {
		addNext(item)
	}
	for _, item := range backlog {
		addNext(item + " [source:: Manual]")
	}
	for _, item := range bridge.Captured {
		addNext(item)
	}

	return bridge
}

const nextListCap = 3
