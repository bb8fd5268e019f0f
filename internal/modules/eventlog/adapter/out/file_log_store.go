package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	eventlogout "tvp/internal/modules/eventlog/port/out"
)

// FileLogStore appends canonical event lines to the flat master.log. The
// file is the human-readable mirror of the event table and the input for
// fallback session derivation when the table is empty.
type FileLogStore struct {
	path string
}

func NewFileLogStore(path string) *FileLogStore {
	return &FileLogStore{path: path}
}

var _ eventlogout.LogStore = (*FileLogStore)(nil)

func (s *FileLogStore) AppendLine(ctx context.Context, line string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open master log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append master log: %w", err)
	}
	return nil
}

func (s *FileLogStore) Lines(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read master log: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
