package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
entities:
  - position: {x: 0, y: 0}
    velocity: {vx: 1, vy: 1}
  - counter: {value: 7}
  - position: {x: 3, y: 4}
`

func TestLoadPopulation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "population.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := LoadPopulation(path)
	require.NoError(t, err)
	require.Equal(t, 3, p.Count())

	bps := p.Blueprints()
	assert.Equal(t, &component.Position{X: 0, Y: 0}, bps[0].Position)
	assert.Equal(t, &component.Velocity{VX: 1, VY: 1}, bps[0].Velocity)
	assert.Nil(t, bps[0].Counter)
	assert.Equal(t, &component.Counter{Value: 7}, bps[1].Counter)
	assert.Nil(t, bps[2].Velocity)
}

func TestParsePopulationRejectsEmptyEntity(t *testing.T) {
	_, err := ParsePopulation([]byte("entities:\n  - {}\n"))
	assert.ErrorContains(t, err, "no components")
}

func TestParsePopulationRejectsBadYAML(t *testing.T) {
	_, err := ParsePopulation([]byte("entities: [position: {x: nope}]"))
	assert.Error(t, err)
}

func TestLoadPopulationMissingFile(t *testing.T) {
	_, err := LoadPopulation(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
