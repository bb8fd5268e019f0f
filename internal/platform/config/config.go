package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File is the optional on-disk config (~/.config/tvp/config.toml). Any field
// left empty falls back to the vault-derived default.
type File struct {
	VaultPath        string `toml:"vault_path"`
	LookbackDays     int    `toml:"lookback_days"`
	DefaultTimeframe string `toml:"default_timeframe"`
}

type Config struct {
	VaultPath        string
	DBPath           string
	MasterLogPath    string
	TodoPath         string
	KanbanDir        string
	DailyDir         string
	PluginDir        string
	LookbackDays     int
	DefaultTimeframe string
}

// New resolves the configuration for a vault. vaultPath may be empty, in
// which case the config file must supply one.
func New(vaultPath string) (Config, error) {
	file := loadFile()
	if vaultPath == "" || vaultPath == "." {
		if file.VaultPath != "" {
			vaultPath = file.VaultPath
		}
	}
	if vaultPath == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}
	vaultPath = expandHome(vaultPath)

	cfg := Config{
		VaultPath:        vaultPath,
		DBPath:           filepath.Join(vaultPath, ".tvp", "events.db"),
		MasterLogPath:    filepath.Join(vaultPath, ".tvp", "master.log"),
		TodoPath:         filepath.Join(vaultPath, "TODO.md"),
		KanbanDir:        filepath.Join(vaultPath, "Kanban"),
		DailyDir:         filepath.Join(vaultPath, "Daily"),
		PluginDir:        filepath.Join(vaultPath, ".tvp", "plugins"),
		LookbackDays:     7,
		DefaultTimeframe: "week",
	}
	if file.LookbackDays > 0 {
		cfg.LookbackDays = file.LookbackDays
	}
	if file.DefaultTimeframe != "" {
		cfg.DefaultTimeframe = file.DefaultTimeframe
	}
	return cfg, nil
}

func loadFile() File {
	home, err := os.UserHomeDir()
	if err != nil {
		return File{}
	}
	path := filepath.Join(home, ".config", "tvp", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return File{}
	}
	file := File{}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return File{}
	}
	file.VaultPath = expandHome(file.VaultPath)
	return file
}

func expandHome(path string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
