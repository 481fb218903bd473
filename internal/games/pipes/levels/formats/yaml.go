package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID   int      `yaml:"id"`
	Name string   `yaml:"name"`
	Size YAMLSize `yaml:"size"`
	Rows []string `yaml:"rows"` // each row uses the text token grammar
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	H int `yaml:"h"`
	W int `yaml:"w"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.Size.H <= 0 || yl.Size.W <= 0 {
		return Level{}, formatErr(0, CodeBadDimensions, "size must be positive, got %dx%d", yl.Size.H, yl.Size.W)
	}
	if len(yl.Rows) != yl.Size.H {
		return Level{}, formatErr(0, CodeBadRow, "want %d rows, got %d", yl.Size.H, len(yl.Rows))
	}

	lvl := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Height: yl.Size.H,
		Width:  yl.Size.W,
		Rows:   make([][]Token, 0, yl.Size.H),
	}
	for i, line := range yl.Rows {
		row, err := parseRow(strings.Fields(line), yl.Size.W)
		if err != nil {
			// Row numbers are reported 1-based within the rows list.
			return Level{}, withLine(err, i+1)
		}
		lvl.Rows = append(lvl.Rows, row)
	}
	return lvl, nil
}
