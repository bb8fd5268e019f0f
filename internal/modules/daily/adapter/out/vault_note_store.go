package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	dailyout "tvp/internal/modules/daily/port/out"
)

// VaultNoteStore writes daily notes as <dir>/<date>.md.
type VaultNoteStore struct {
	dir string
}

func NewVaultNoteStore(dir string) *VaultNoteStore {
	return &VaultNoteStore{dir: dir}
}

var _ dailyout.NoteStore = (*VaultNoteStore)(nil)

func (s *VaultNoteStore) Write(ctx context.Context, date, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create daily dir: %w", err)
	}
	path := filepath.Join(s.dir, date+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write daily note: %w", err)
	}
	return path, nil
}
