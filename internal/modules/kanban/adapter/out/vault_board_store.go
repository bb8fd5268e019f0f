package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kanbanout "tvp/internal/modules/kanban/port/out"
)

// VaultBoardStore keeps board files in the vault's Kanban directory.
type VaultBoardStore struct {
	dir string
}

func NewVaultBoardStore(dir string) *VaultBoardStore {
	return &VaultBoardStore{dir: dir}
}

var _ kanbanout.BoardStore = (*VaultBoardStore)(nil)

func (s *VaultBoardStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func (s *VaultBoardStore) Read(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read board %s: %w", name, err)
	}
	return string(data), nil
}

func (s *VaultBoardStore) Write(ctx context.Context, name, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create kanban dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write board %s: %w", name, err)
	}
	return path, nil
}
