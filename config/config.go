// Package config loads game settings for the blockfall hosts from YAML. Documents are checked
// against an embedded JSON Schema before they are decoded, and the result is validated again by
// field.Config.Validate.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var fileSchema = jsonschema.MustCompileString("blockfall.schema.json", schemaJSON)

const (
	PickerUniform = "uniform"
	PickerBag     = "bag"
)

// File mirrors the YAML document.
type File struct {
	Field            FieldSection `yaml:"field"`
	Seed             *uint64      `yaml:"seed"`
	Picker           string       `yaml:"picker"`
	MarkSpawnOverlap bool         `yaml:"mark_spawn_overlap"`
	Pieces           []Piece      `yaml:"pieces"`
}

type FieldSection struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MoveDelay string `yaml:"move_delay"`
}

// Piece is a catalog entry written as text rows, top row first.
type Piece struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Settings is a decoded, validated configuration.
type Settings struct {
	Field  field.Config
	Picker string

	// SeedSet is false when the document left the seed out and the host should choose one.
	SeedSet bool
}

// Default returns the built-in settings used when no file is given.
func Default() Settings {
	return Settings{
		Field:  field.DefaultConfig(),
		Picker: PickerUniform,
	}
}

// Load reads and parses the file at path.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates raw against the schema and converts it to Settings. Omitted values keep their
// defaults.
func Parse(raw []byte) (Settings, error) {
	if err := validate(raw); err != nil {
		return Settings{}, err
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Settings{}, fmt.Errorf("decode: %w", err)
	}
	return f.Settings()
}

// validate runs the schema over the YAML document re-encoded as JSON values.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if err := fileSchema.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// Settings converts the decoded document, filling defaults.
func (f File) Settings() (Settings, error) {
	s := Default()

	if f.Field.Width != 0 {
		s.Field.Width = f.Field.Width
	}
	if f.Field.Height != 0 {
		s.Field.Height = f.Field.Height
	}
	if f.Field.MoveDelay != "" {
		d, err := time.ParseDuration(f.Field.MoveDelay)
		if err != nil {
			return Settings{}, fmt.Errorf("field.move_delay: %w", err)
		}
		s.Field.MoveDelay = d
	}
	if f.Seed != nil {
		s.Field.Seed = *f.Seed
		s.SeedSet = true
	}
	if f.Picker != "" {
		s.Picker = f.Picker
	}
	s.Field.MarkSpawnOverlap = f.MarkSpawnOverlap

	if len(f.Pieces) > 0 {
		catalog := make(field.Catalog, 0, len(f.Pieces))
		for i, p := range f.Pieces {
			shape, err := field.ParseShape(p.Name, p.Rows...)
			if err != nil {
				return Settings{}, fmt.Errorf("pieces[%d]: %w", i, err)
			}
			catalog = append(catalog, shape)
		}
		s.Field.Catalog = catalog
	}

	if err := s.Field.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// NewPicker returns a fresh picker for the configured policy.
func (s Settings) NewPicker() field.Picker {
	if s.Picker == PickerBag {
		return &field.BagPicker{}
	}
	return field.UniformPicker{}
}

// NewEngine builds an engine from the settings plus any extra options.
func (s Settings) NewEngine(opts ...field.Option) (*field.Engine, error) {
	all := append([]field.Option{field.WithPicker(s.NewPicker())}, opts...)
	return field.New(s.Field, all...)
}
