// Package palette resolves venue categories to colors for the active theme.
package palette

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/theme"
)

//go:embed themes.yaml
var themesYAML []byte

var tables map[theme.Mode]map[model.VenueCategory]string

func init() {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(themesYAML, &raw); err != nil {
		panic(fmt.Sprintf("palette: parsing themes.yaml: %v", err))
	}
	tables = make(map[theme.Mode]map[model.VenueCategory]string, len(raw))
	for mode, colors := range raw {
		table := make(map[model.VenueCategory]string, len(colors))
		for cat, color := range colors {
			table[model.VenueCategory(cat)] = color
		}
		tables[theme.Mode(mode)] = table
	}
}

// Resolve returns the color for a category under the given mode. Unknown
// categories use the "other" entry. Callers pass the mode read from current
// state at call time; it is never cached here.
func Resolve(category model.VenueCategory, mode theme.Mode) string {
	table, ok := tables[mode]
	if !ok {
		table = tables[theme.Dark]
	}
	if color, ok := table[category]; ok {
		return color
	}
	return table[model.CategoryOther]
}

// ResolveRaw is Resolve for a category string straight from a record.
func ResolveRaw(category string, mode theme.Mode) string {
	return Resolve(model.ParseCategory(category), mode)
}
