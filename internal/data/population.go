package data

import (
	"fmt"
	"os"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/world"
	"gopkg.in/yaml.v3"
)

type positionEntry struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

type velocityEntry struct {
	VX int32 `yaml:"vx"`
	VY int32 `yaml:"vy"`
}

type counterEntry struct {
	Value uint32 `yaml:"value"`
}

type entityEntry struct {
	Position *positionEntry `yaml:"position"`
	Velocity *velocityEntry `yaml:"velocity"`
	Counter  *counterEntry  `yaml:"counter"`
}

type populationFile struct {
	Entities []entityEntry `yaml:"entities"`
}

// Population is an initial set of entities to spawn.
type Population struct {
	entities []world.Blueprint
}

// Blueprints returns the entities in file order.
func (p *Population) Blueprints() []world.Blueprint {
	return p.entities
}

// Count returns the number of entities.
func (p *Population) Count() int {
	return len(p.entities)
}

// LoadPopulation loads an initial population from a YAML file.
func LoadPopulation(path string) (*Population, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read population: %w", err)
	}
	return ParsePopulation(raw)
}

// ParsePopulation decodes population YAML. Entries without any component are
// rejected, since an entity exists only through its components.
func ParsePopulation(raw []byte) (*Population, error) {
	var f populationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse population: %w", err)
	}
	p := &Population{entities: make([]world.Blueprint, 0, len(f.Entities))}
	for i, e := range f.Entities {
		var bp world.Blueprint
		if e.Position != nil {
			bp.Position = &component.Position{X: e.Position.X, Y: e.Position.Y}
		}
		if e.Velocity != nil {
			bp.Velocity = &component.Velocity{VX: e.Velocity.VX, VY: e.Velocity.VY}
		}
		if e.Counter != nil {
			bp.Counter = &component.Counter{Value: e.Counter.Value}
		}
		if bp == (world.Blueprint{}) {
			return nil, fmt.Errorf("population entity #%d has no components", i)
		}
		p.entities = append(p.entities, bp)
	}
	return p, nil
}
