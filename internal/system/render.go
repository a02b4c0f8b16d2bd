package system

import (
	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/core/ecs"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
)

// Markers are the runes used by the grid renderer.
type Markers struct {
	Background rune
	Foreground rune
	Separator  string
}

// DefaultMarkers draws '.' for empty cells and '#' for occupied ones.
var DefaultMarkers = Markers{Background: '.', Foreground: '#', Separator: "----------"}

// RenderSystem draws every in-bounds Position onto a character grid and emits
// it row by row followed by a separator line. Phase 4 (Output).
type RenderSystem struct {
	out     output.Sink
	markers Markers
	cells   []rune
	width   int32
}

// NewRenderSystem preallocates a grid buffer of the given size.
func NewRenderSystem(out output.Sink, grid world.Grid, markers Markers) *RenderSystem {
	return &RenderSystem{
		out:     out,
		markers: markers,
		cells:   make([]rune, int(grid.Width)*int(grid.Height)),
		width:   grid.Width,
	}
}

func (s *RenderSystem) Name() string         { return "render" }
func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *RenderSystem) Run(w *world.World) error {
	if int(w.Grid.Width)*int(w.Grid.Height) != len(s.cells) || w.Grid.Width != s.width {
		s.cells = make([]rune, int(w.Grid.Width)*int(w.Grid.Height))
		s.width = w.Grid.Width
	}
	for i := range s.cells {
		s.cells[i] = s.markers.Background
	}
	ecs.EachRead(w.Positions, func(_ ecs.EntityID, p component.Position) {
		if !w.Grid.Contains(p) {
			return
		}
		s.cells[int(p.Y)*int(s.width)+int(p.X)] = s.markers.Foreground
	})
	for row := 0; row < int(w.Grid.Height); row++ {
		start := row * int(s.width)
		if err := s.out.WriteLine(string(s.cells[start : start+int(s.width)])); err != nil {
			return err
		}
	}
	return s.out.WriteLine(s.markers.Separator)
}
