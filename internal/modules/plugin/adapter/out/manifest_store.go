package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"tvp/internal/modules/plugin/domain"
)

// ManifestStore reads one manifest per *.yaml file from the plugin
// directory. Relative binary paths resolve against the manifest's
// own directory.
type ManifestStore struct {
	dir string
}

func NewManifestStore(dir string) *ManifestStore {
	return &ManifestStore{dir: dir}
}

func (s *ManifestStore) Load(ctx context.Context) ([]domain.Manifest, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugin dir %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".yaml") && !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	manifests := make([]domain.Manifest, 0, len(names))
	for _, name := range names {
		manifest, err := s.read(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

func (s *ManifestStore) read(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var manifest domain.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return domain.Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if manifest.Binary != "" && !filepath.IsAbs(manifest.Binary) {
		manifest.Binary = filepath.Join(filepath.Dir(path), manifest.Binary)
	}
	return manifest, nil
}
