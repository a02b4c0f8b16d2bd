package output

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen draws the most recent lines onto a terminal, oldest at the top.
// It holds exactly as many lines as the screen has rows.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	lines  []string
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	_, h := s.Size()
	return &Screen{
		screen: s,
		style:  tcell.StyleDefault,
		lines:  make([]string, 0, max(h, 1)),
	}
}

func (s *Screen) WriteLine(line string) error {
	_, h := s.screen.Size()
	if h <= 0 {
		return nil
	}
	if len(s.lines) >= h {
		n := copy(s.lines, s.lines[len(s.lines)-h+1:])
		s.lines = s.lines[:n]
	}
	s.lines = append(s.lines, line)
	s.draw()
	return nil
}

func (s *Screen) draw() {
	w, _ := s.screen.Size()
	s.screen.Clear()
	for y, line := range s.lines {
		x := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			if x+rw > w {
				break
			}
			s.screen.SetContent(x, y, r, nil, s.style)
			x += rw
		}
	}
	s.screen.Show()
}
