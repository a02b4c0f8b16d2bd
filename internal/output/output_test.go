package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriterKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, nil)
	require.NoError(t, s.WriteLine("a"))
	require.NoError(t, s.WriteLine("b"))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestWriterTranscodes(t *testing.T) {
	enc, err := Charset("cp437")
	require.NoError(t, err)
	var buf bytes.Buffer
	s := NewWriter(&buf, enc)
	require.NoError(t, s.WriteLine("█·"))
	assert.Equal(t, []byte{0xDB, 0xFA, '\n'}, buf.Bytes())
}

func TestCharsetNames(t *testing.T) {
	enc, err := Charset("UTF-8")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = Charset("big5")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = Charset("klingon")
	assert.Error(t, err)
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewLog(zap.New(core))
	require.NoError(t, s.WriteLine("..#.."))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "..#..", logs.All()[0].Message)
}

type failing struct{}

func (failing) WriteLine(string) error { return errors.New("closed") }

func TestTee(t *testing.T) {
	var a, b Buffer
	require.NoError(t, Tee{&a, &b}.WriteLine("x"))
	assert.Equal(t, []string{"x"}, a.Lines())
	assert.Equal(t, []string{"x"}, b.Lines())

	var c Buffer
	assert.Error(t, Tee{failing{}, &c}.WriteLine("y"))
	assert.Empty(t, c.Lines())
}

func TestBufferReset(t *testing.T) {
	var b Buffer
	_ = b.WriteLine("1")
	_ = b.WriteLine("2")
	assert.Equal(t, "1\n2", b.String())
	b.Reset()
	assert.Empty(t, b.Lines())
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(w, h)
	return ss
}

func rowText(s tcell.Screen, y, w int) string {
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestScreenScrollsOldLinesOff(t *testing.T) {
	ss := newSimScreen(t, 4, 2)
	defer ss.Fini()
	s := NewScreen(ss)

	require.NoError(t, s.WriteLine("one"))
	require.NoError(t, s.WriteLine("two"))
	require.NoError(t, s.WriteLine("three"))

	assert.Equal(t, "two ", rowText(ss, 0, 4))
	assert.Equal(t, "thre", rowText(ss, 1, 4))
}
