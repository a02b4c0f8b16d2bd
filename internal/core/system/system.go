package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: reserved for external input
	PhasePreUpdate               // 1: process last tick's events
	PhaseUpdate                  // 2: simulation logic
	PhasePostUpdate              // 3: derived state
	PhaseOutput                  // 4: render + emit
	PhaseCleanup                 // 5: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post-update"
	case PhaseOutput:
		return "output"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every ECS system implements. W is the world type
// handed to each system on every tick.
type System[W any] interface {
	Name() string
	Phase() Phase
	Run(w W) error
}

// Func adapts a plain function to System.
type Func[W any] struct {
	name  string
	phase Phase
	fn    func(W) error
}

func NewFunc[W any](name string, phase Phase, fn func(W) error) Func[W] {
	return Func[W]{name: name, phase: phase, fn: fn}
}

func (f Func[W]) Name() string  { return f.name }
func (f Func[W]) Phase() Phase  { return f.phase }
func (f Func[W]) Run(w W) error { return f.fn(w) }
