package system

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/gridsim/gridsim/internal/core/ecs"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
	"golang.org/x/crypto/blake2b"
)

// DigestSystem emits a BLAKE2b-256 hash of every live entity's components, in
// ascending id order, so two runs can be compared tick by tick. Phase 4 (Output), after render.
type DigestSystem struct {
	out output.Sink
	buf []byte
}

func NewDigestSystem(out output.Sink) *DigestSystem {
	return &DigestSystem{out: out, buf: make([]byte, 0, 64)}
}

func (s *DigestSystem) Name() string         { return "digest" }
func (s *DigestSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *DigestSystem) Run(w *world.World) error {
	sum, err := Digest(w, s.buf)
	if err != nil {
		return err
	}
	return s.out.WriteLine("digest " + hex.EncodeToString(sum[:]))
}

// Digest hashes the world's component state. scratch is reused when large enough.
func Digest(w *world.World, scratch []byte) ([32]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, fmt.Errorf("digest: %w", err)
	}
	b := scratch[:0]
	write := func(kind byte, id ecs.EntityID, vals ...uint32) {
		b = append(b[:0], kind)
		b = binary.LittleEndian.AppendUint32(b, uint32(id))
		for _, v := range vals {
			b = binary.LittleEndian.AppendUint32(b, v)
		}
		h.Write(b)
	}
	w.Pool().Each(func(id ecs.EntityID) {
		if p, ok := w.Positions.Get(id); ok {
			write('p', id, uint32(p.X), uint32(p.Y))
		}
		if v, ok := w.Velocities.Get(id); ok {
			write('v', id, uint32(v.VX), uint32(v.VY))
		}
		if c, ok := w.Counters.Get(id); ok {
			write('c', id, c.Value)
		}
	})
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
