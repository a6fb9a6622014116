package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type keybindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keymapFile struct {
	Keybinding []keybindingConfig `toml:"keybinding"`
}

const defaultKeymapHeader = `# GolfMatch keybinding overrides.
# Each [[keybinding]] entry replaces the keys for one action in one scope.
# Scopes: global, browse, detail_modal, search.
# Example:
#
# [[keybinding]]
# scope = "browse"
# action = "search"
# keys = ["f", "/"]

`

func keymapDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "golfmatch"), nil
}

func keymapPath() (string, error) {
	dir, err := keymapDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keybindings.toml"), nil
}

// loadKeymap reads keybindings.toml, creating it from defaults on first run
// so users have a complete map to edit.
func loadKeymap(defaults []keybindingConfig) ([]keybindingConfig, error) {
	path, err := keymapPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create keymap dir: %w", err)
		}
		var buf bytes.Buffer
		buf.WriteString(defaultKeymapHeader)
		if err := toml.NewEncoder(&buf).Encode(keymapFile{Keybinding: defaults}); err != nil {
			return nil, fmt.Errorf("encode default keymap: %w", err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("write default keymap: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	return parseKeymap(data)
}

func parseKeymap(data []byte) ([]keybindingConfig, error) {
	var parsed keymapFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	for i, kb := range parsed.Keybinding {
		if kb.Scope == "" {
			return nil, fmt.Errorf("keybinding[%d]: scope is required", i)
		}
		if kb.Action == "" {
			return nil, fmt.Errorf("keybinding[%d]: action is required", i)
		}
		if len(kb.Keys) == 0 {
			return nil, fmt.Errorf("keybinding[%d]: keys are required", i)
		}
	}
	return parsed.Keybinding, nil
}
