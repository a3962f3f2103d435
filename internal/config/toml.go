package config

import (
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// tomlParser adapts go-toml to koanf's Parser interface.
type tomlParser struct{}

// TOMLParser returns a koanf parser for TOML documents.
func TOMLParser() koanf.Parser {
	return tomlParser{}
}

func (tomlParser) Unmarshal(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(m map[string]any) ([]byte, error) {
	return toml.Marshal(m)
}
