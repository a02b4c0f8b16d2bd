package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
)

// Sink is a line-oriented text channel. Lines are delivered in call order.
type Sink interface {
	WriteLine(line string) error
}

// Writer writes lines to an io.Writer, transcoding them when a charset is set.
type Writer struct {
	w   *bufio.Writer
	enc *encoding.Encoder
}

// NewWriter creates a Writer sink. A nil enc writes UTF-8 unchanged.
func NewWriter(w io.Writer, enc encoding.Encoding) *Writer {
	s := &Writer{w: bufio.NewWriter(w)}
	if enc != nil {
		s.enc = encoding.ReplaceUnsupported(enc.NewEncoder())
	}
	return s
}

func (s *Writer) WriteLine(line string) error {
	if s.enc != nil {
		encoded, err := s.enc.String(line)
		if err != nil {
			return fmt.Errorf("encode line: %w", err)
		}
		line = encoded
	}
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return s.w.Flush()
}

// Log emits each line as an info entry.
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log}
}

func (s *Log) WriteLine(line string) error {
	s.log.Info(line)
	return nil
}

// Buffer keeps every line in memory.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *Buffer) WriteLine(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns a copy of the captured lines.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// String joins the captured lines with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Reset drops all captured lines.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = b.lines[:0]
}

// Tee fans every line out to all sinks, stopping at the first error.
type Tee []Sink

func (t Tee) WriteLine(line string) error {
	for _, s := range t {
		if err := s.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
