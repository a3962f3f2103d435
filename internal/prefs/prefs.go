// Package prefs persists svitlo's user preferences: interface language and
// colour theme. Preferences are stored in ~/.config/svitlo/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/svitlo/internal/i18n"
)

// Prefs holds user preferences for svitlo.
type Prefs struct {
	Lang  string `toml:"lang"`
	Theme string `toml:"theme"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const (
	defaultPrefsPath = "~/.config/svitlo/prefs.toml"
	defaultTheme     = ThemeDark
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Lang: string(i18n.DefaultLang), Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Any problem reading or parsing
// the file yields defaults; unknown values are replaced field by field. The
// error is always nil and kept for symmetry with Save.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil // Graceful degradation
	}
	return p.Normalize(), nil
}

// Normalize replaces unknown languages and themes with defaults.
func (p Prefs) Normalize() Prefs {
	lang, _ := i18n.ParseLang(p.Lang)
	p.Lang = string(lang)

	switch strings.ToLower(strings.TrimSpace(p.Theme)) {
	case ThemeLight:
		p.Theme = ThemeLight
	default:
		p.Theme = ThemeDark
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
