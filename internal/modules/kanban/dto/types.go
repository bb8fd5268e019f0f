package dto

type SyncInput struct {
	// Mode is "prod" (default) or "guide". Guide mode writes the bridge
	// columns to separate guide boards.
	Mode string
}

type SyncOutput struct {
	Updated []string
}

type BridgeOutput struct {
	Now      []string
	Paused   []string
	Captured []string
	Next     []string
}

type GoalBoardOutput struct {
	Order    []string
	Sections map[string][]string
}
