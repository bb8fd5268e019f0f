package out

import (
	"context"
	"fmt"
	"os"

	"tvp/internal/modules/kanban/domain"
	kanbanout "tvp/internal/modules/kanban/port/out"
)

// TodoBacklogStore reads the manual backlog from a checklist file. A
// missing file is an empty backlog.
type TodoBacklogStore struct {
	path string
}

func NewTodoBacklogStore(path string) *TodoBacklogStore {
	return &TodoBacklogStore{path: path}
}

var _ kanbanout.BacklogStore = (*TodoBacklogStore)(nil)

func (s *TodoBacklogStore) Items(ctx context.Context) (backlog, done []string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read todo file: %w", err)
	}
	backlog, done = domain.ParseBacklog(string(data))
	return backlog, done, nil
}
