// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCardDefinitions reads a card catalog file (a JSON array of
// CardDefinition) and returns its entries. Duplicate or incomplete entries
// are rejected so a bad catalog fails at startup, not mid-session.
func LoadCardDefinitions(path string) ([]CardDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card definitions file: %w", err)
	}

	var cardDefs []CardDefinition
	if err := json.Unmarshal(file, &cardDefs); err != nil {
		return nil, fmt.Errorf("unmarshal card definitions: %w", err)
	}

	seen := make(map[string]bool, len(cardDefs))
	for _, def := range cardDefs {
		if def.ID == "" || def.Name == "" || def.Description == "" {
			return nil, fmt.Errorf("card definition %q is missing required fields", def.ID)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("card definition %q has negative cost", def.ID)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate card definition %q", def.ID)
		}
		seen[def.ID] = true
	}
	return cardDefs, nil
}
