// Package catalog provides the read-only race, class and background tables
package catalog

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

//go:embed catalog.yaml
var embedded []byte

// Repository defines read access to the static tables. List methods return
// entries in menu order; every returned value is a copy.
type Repository interface {
	ListRaces() []*dnd5e.Race
	ListClasses() []*dnd5e.Class
	ListBackgrounds() []*dnd5e.Background

	// Lookups accept an ID ("RACE_ELF") or a display name ("elf")
	GetRace(id string) (*dnd5e.Race, error)
	GetClass(id string) (*dnd5e.Class, error)
	GetBackground(id string) (*dnd5e.Background, error)
}

// Catalog is an immutable Repository built once from YAML
type Catalog struct {
	races       []*dnd5e.Race
	classes     []*dnd5e.Class
	backgrounds []*dnd5e.Background

	raceIndex       map[string]int
	classIndex      map[string]int
	backgroundIndex map[string]int
}

// Ensure Catalog implements the Repository interface
var _ Repository = (*Catalog)(nil)

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embedded)
})

// Default returns the catalog embedded in the binary. It is parsed on first
// use and shared afterwards.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load parses and validates a catalog document
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	vb := errors.NewValidationBuilder()
	if len(doc.Races) == 0 {
		vb.RequiredField("races")
	}
	if len(doc.Classes) == 0 {
		vb.RequiredField("classes")
	}
	if len(doc.Backgrounds) == 0 {
		vb.RequiredField("backgrounds")
	}

	c := &Catalog{
		raceIndex:       make(map[string]int),
		classIndex:      make(map[string]int),
		backgroundIndex: make(map[string]int),
	}

	for _, r := range doc.Races {
		race := r.toEntity(vb)
		index(c.raceIndex, len(c.races), "races", race.ID, race.Name, vb)
		c.races = append(c.races, race)
	}
	for _, r := range doc.Classes {
		class := r.toEntity(vb)
		index(c.classIndex, len(c.classes), "classes", class.ID, class.Name, vb)
		c.classes = append(c.classes, class)
	}
	for _, r := range doc.Backgrounds {
		bg := r.toEntity(vb)
		index(c.backgroundIndex, len(c.backgrounds), "backgrounds", bg.ID, bg.Name, vb)
		c.backgrounds = append(c.backgrounds, bg)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return c, nil
}

// index registers both the ID and the display name of an entry
func index(idx map[string]int, pos int, section, id, name string, vb *errors.ValidationBuilder) {
	for _, key := range []string{keyOf(id), keyOf(name)} {
		if key == "" {
			continue
		}
		if prev, exists := idx[key]; exists && prev != pos {
			vb.Fieldf(section, "duplicate entry %q", key)
			continue
		}
		idx[key] = pos
	}
}

// ListRaces returns all races in menu order
func (c *Catalog) ListRaces() []*dnd5e.Race {
	out := make([]*dnd5e.Race, len(c.races))
	for i, r := range c.races {
		out[i] = r.Clone()
	}
	return out
}

// ListClasses returns all classes in menu order
func (c *Catalog) ListClasses() []*dnd5e.Class {
	out := make([]*dnd5e.Class, len(c.classes))
	for i, cl := range c.classes {
		out[i] = cl.Clone()
	}
	return out
}

// ListBackgrounds returns all backgrounds in menu order
func (c *Catalog) ListBackgrounds() []*dnd5e.Background {
	out := make([]*dnd5e.Background, len(c.backgrounds))
	for i, b := range c.backgrounds {
		out[i] = b.Clone()
	}
	return out
}

// GetRace looks up a race by ID or name
func (c *Catalog) GetRace(id string) (*dnd5e.Race, error) {
	pos, ok := c.raceIndex[keyOf(id)]
	if !ok {
		return nil, errors.NotFoundf("race %q not found", id).WithMeta("race_id", id)
	}
	return c.races[pos].Clone(), nil
}

// GetClass looks up a class by ID or name
func (c *Catalog) GetClass(id string) (*dnd5e.Class, error) {
	pos, ok := c.classIndex[keyOf(id)]
	if !ok {
		return nil, errors.NotFoundf("class %q not found", id).WithMeta("class_id", id)
	}
	return c.classes[pos].Clone(), nil
}

// GetBackground looks up a background by ID or name
func (c *Catalog) GetBackground(id string) (*dnd5e.Background, error) {
	pos, ok := c.backgroundIndex[keyOf(id)]
	if !ok {
		return nil, errors.NotFoundf("background %q not found", id).WithMeta("background_id", id)
	}
	return c.backgrounds[pos].Clone(), nil
}
