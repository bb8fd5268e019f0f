package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pluginout "tvp/internal/modules/plugin/adapter/out"
	"tvp/internal/modules/plugin/service"
)

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	pluginsDir := t.TempDir()
	binPath := filepath.Join(pluginsDir, "dummy-plugin")
	if err := os.WriteFile(binPath, []byte("not-a-real-plugin"), 0o755); err != nil {
		t.Fatalf("write plugin binary: %v", err)
	}
	manifest := strings.Join([]string{
		"name: demo",
		"version: 1.0.0",
		"binary: dummy-plugin",
		"sha256: " + strings.Repeat("0", 64),
		"enabled: true",
		"capabilities: [command]",
	}, "\n")
	if err := os.WriteFile(filepath.Join(pluginsDir, "demo.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	svc := service.NewPluginService(pluginout.NewManifestStore(pluginsDir), nil)
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if !results[0].BinaryReachable {
		t.Fatal("expected binary to be reachable")
	}
	if results[0].ChecksumValid {
		t.Fatal("expected checksum mismatch")
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	t.Parallel()
	pluginsDir := t.TempDir()
	manifest := strings.Join([]string{
		"name: demo",
		"version: 1.0.0",
		"binary: does-not-exist",
		"sha256: " + strings.Repeat("a", 64),
		"enabled: true",
		"capabilities: [report]",
	}, "\n")
	if err := os.WriteFile(filepath.Join(pluginsDir, "demo.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	svc := service.NewPluginService(pluginout.NewManifestStore(pluginsDir), nil)
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if results[0].BinaryReachable {
		t.Fatal("expected unreachable binary")
	}
	if !strings.Contains(results[0].Error, "binary does not exist") {
		t.Fatalf("error %q", results[0].Error)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	pluginsDir := t.TempDir()
	manifest := strings.Join([]string{
		"name: demo",
		"version: 1.0.0",
		"binary: /opt/demo",
		"sha256: " + strings.Repeat("a", 64),
		"enabled: true",
		"capabilities: [command]",
	}, "\n")
	for _, file := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(pluginsDir, file), []byte(manifest), 0o644); err != nil {
			t.Fatalf("write manifest: %v", err)
		}
	}

	svc := service.NewPluginService(pluginout.NewManifestStore(pluginsDir), nil)
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected duplicate name error")
	}
}
