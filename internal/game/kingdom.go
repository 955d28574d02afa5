package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KingdomFile represents the top-level YAML structure of a kingdom preset file.
type KingdomFile struct {
	Kingdoms []KingdomEntry `yaml:"kingdoms" json:"kingdoms"`
}

// KingdomEntry is one named set of kingdom cards.
type KingdomEntry struct {
	Name  string   `yaml:"name" json:"name"`
	Cards []string `yaml:"cards" json:"cards"`
}

// ParseKingdomYAML decodes a kingdom preset document and checks that every
// card it names is a registered kingdom card.
func ParseKingdomYAML(data []byte) (*KingdomFile, error) {
	var kf KingdomFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse kingdom YAML: %w", err)
	}
	for _, k := range kf.Kingdoms {
		for _, name := range k.Cards {
			if _, err := LookupCard(name); err != nil {
				return nil, fmt.Errorf("kingdom %q: %w", k.Name, err)
			}
			if IsBasic(name) {
				return nil, fmt.Errorf("kingdom %q: %s is a basic card", k.Name, name)
			}
		}
	}
	return &kf, nil
}

// ParseKingdomFile reads a kingdom preset file and returns a map of kingdom
// name → card names.
func ParseKingdomFile(path string) (map[string][]string, error) {
	kf, err := readKingdomFile(path)
	if err != nil {
		return nil, err
	}
	kingdoms := make(map[string][]string)
	for _, k := range kf.Kingdoms {
		kingdoms[k.Name] = k.Cards
	}
	return kingdoms, nil
}

// KingdomByNumber returns the Nth kingdom (1-indexed) from the preset file.
func KingdomByNumber(path string, n int) (string, []string, error) {
	kf, err := readKingdomFile(path)
	if err != nil {
		return "", nil, err
	}
	if n < 1 || n > len(kf.Kingdoms) {
		return "", nil, fmt.Errorf("kingdom %d not found (have %d kingdoms)", n, len(kf.Kingdoms))
	}
	k := kf.Kingdoms[n-1]
	return k.Name, k.Cards, nil
}

func readKingdomFile(path string) (*KingdomFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKingdomYAML(data)
}
