package floor

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/vinser/mazegame/internal/embeddata"
	"gopkg.in/yaml.v3"
)

// Axes values.
const (
	AxesHorizontal = "horizontal"
	AxesBoth       = "both"
)

// Layout is the on-disk description of a floor.
type Layout struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Cell    Size   `yaml:"cell"`
	Map     Grid   `yaml:"map"`
	Player  Spawn  `yaml:"player"`
	Axes    string `yaml:"axes"`    // horizontal or both
	Policy  string `yaml:"policy"`  // clamp or block
	Bounded bool   `yaml:"bounded"` // fence the window edges
	Walls   []Spot `yaml:"walls"`
}

// Size is a cell size in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Grid is a map size in cells.
type Grid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Spawn is where the player starts and how fast it moves.
// The player always occupies one cell.
type Spawn struct {
	Column int   `yaml:"column"`
	Row    int   `yaml:"row"`
	Speed  Speed `yaml:"speed"`
}

// Speed is the per-frame player speed in pixels.
type Speed struct {
	Horizontal int `yaml:"horizontal"`
	Vertical   int `yaml:"vertical"`
}

// Spot places something on the cell grid. Columns and Rows default to 1.
type Spot struct {
	Column  int `yaml:"column"`
	Row     int `yaml:"row"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

func (s Spot) span() (int, int) {
	cols, rows := s.Columns, s.Rows
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	return cols, rows
}

// Builtin lists the embedded layout names.
func Builtin() []string {
	names, err := embeddata.LayoutNames()
	if err != nil {
		return nil
	}
	return names
}

// Load reads an embedded layout by name.
func Load(name string) (*Layout, error) {
	data, err := embeddata.ReadLayout(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("%w: unknown layout %q", ErrInvalidLayout, name)
	}
	return Parse(data)
}

// LoadFile reads a layout from a YAML file.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	l := &Layout{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	l.Axes = strings.ToLower(l.Axes)
	if l.Axes == "" {
		l.Axes = AxesBoth
	}
	l.Policy = strings.ToLower(l.Policy)
	if l.Policy == "" {
		l.Policy = "clamp"
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
