package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const KeyBindingsFileName = "keybindings.json"

// KeyBinding represents a custom keybinding configuration
type KeyBinding struct {
	Command string   `json:"command"` // The command name (e.g., "next", "copy")
	Keys    []string `json:"keys"`    // The key combinations (e.g., ["right", "l"])
	Help    string   `json:"help"`    // Help text to display
}

// KeyBindingsConfig stores all custom keybindings
type KeyBindingsConfig struct {
	Version  string       `json:"version"`  // Config version for future migrations
	Bindings []KeyBinding `json:"bindings"` // List of custom keybindings
}

// DefaultKeyBindings returns the default keybindings configuration
func DefaultKeyBindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Version: "1.0",
		Bindings: []KeyBinding{
			// Navigation
			{Command: "prev", Keys: []string{"left"}, Help: "←"},
			{Command: "next", Keys: []string{"right"}, Help: "→"},
			{Command: "first", Keys: []string{"home"}, Help: "home"},
			{Command: "last", Keys: []string{"end"}, Help: "end"},
			{Command: "scroll_up", Keys: []string{"up", "k"}, Help: "↑/k"},
			{Command: "scroll_down", Keys: []string{"down", "j"}, Help: "↓/j"},

			// View
			{Command: "toggle_split", Keys: []string{"s"}, Help: "s"},
			{Command: "primary_tab", Keys: []string{"1"}, Help: "1"},
			{Command: "secondary_tab", Keys: []string{"2"}, Help: "2"},
			{Command: "tab", Keys: []string{"tab"}, Help: "tab"},
			{Command: "theme", Keys: []string{"t"}, Help: "t"},

			// Actions
			{Command: "copy", Keys: []string{"c"}, Help: "c"},
			{Command: "copy_secondary", Keys: []string{"C"}, Help: "C"},
			{Command: "select_deck", Keys: []string{"d"}, Help: "d"},
			{Command: "prev_deck", Keys: []string{"["}, Help: "["},
			{Command: "next_deck", Keys: []string{"]"}, Help: "]"},
			{Command: "help", Keys: []string{"?"}, Help: "?"},
			{Command: "quit", Keys: []string{"q", "ctrl+c"}, Help: "q"},
		},
	}
}

// KeyBindingsPath returns the location of the keybindings file.
func KeyBindingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, KeyBindingsFileName), nil
}

// LoadKeyBindings loads keybindings from the config file
func LoadKeyBindings() (*KeyBindingsConfig, error) {
	configPath, err := KeyBindingsPath()
	if err != nil {
		return nil, err
	}
	return LoadKeyBindingsFrom(configPath)
}

// LoadKeyBindingsFrom loads keybindings from configPath, falling back to the
// defaults when the file does not exist or defines no bindings.
func LoadKeyBindingsFrom(configPath string) (*KeyBindingsConfig, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultKeyBindings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keybindings: %w", err)
	}

	var config KeyBindingsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse keybindings %s: %w", configPath, err)
	}

	if len(config.Bindings) == 0 {
		return DefaultKeyBindings(), nil
	}

	return &config, nil
}

// SaveTo writes the keybindings to configPath.
func (k *KeyBindingsConfig) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ToKeyMap maps every configured key to its command name.
func (k *KeyBindingsConfig) ToKeyMap() map[string]string {
	keyMap := make(map[string]string)
	for _, binding := range k.Bindings {
		for _, key := range binding.Keys {
			keyMap[key] = binding.Command
		}
	}
	return keyMap
}

// GetBinding returns the keybinding for a specific command
func (k *KeyBindingsConfig) GetBinding(command string) *KeyBinding {
	for i := range k.Bindings {
		if k.Bindings[i].Command == command {
			return &k.Bindings[i]
		}
	}
	return nil
}

// SetBinding updates or adds a keybinding for a command
func (k *KeyBindingsConfig) SetBinding(command string, keys []string, help string) {
	for i, binding := range k.Bindings {
		if binding.Command == command {
			k.Bindings[i].Keys = keys
			k.Bindings[i].Help = help
			return
		}
	}

	k.Bindings = append(k.Bindings, KeyBinding{
		Command: command,
		Keys:    keys,
		Help:    help,
	})
}

// ValidateBindings checks for conflicts in keybindings
func (k *KeyBindingsConfig) ValidateBindings() map[string][]string {
	conflicts := make(map[string][]string)
	keyToCommands := make(map[string][]string)

	for _, binding := range k.Bindings {
		for _, key := range binding.Keys {
			keyToCommands[key] = append(keyToCommands[key], binding.Command)
		}
	}

	for key, commands := range keyToCommands {
		if len(commands) > 1 {
			conflicts[key] = commands
		}
	}

	return conflicts
}
