package carousel

// Extension is a named component added at mount time. New may return a
// value implementing any of Setupper, Mounter and Destroyer.
type Extension struct {
	Name string
	New  func(s *Slider) any
}

// Setupper is implemented by components that prepare state before mount.
type Setupper interface {
	Setup()
}

// Mounter is implemented by components that start listening after every
// component has been set up.
type Mounter interface {
	Mount()
}

// Destroyer is implemented by components that release resources. completely
// is false when only the current breakpoint is torn down.
type Destroyer interface {
	Destroy(completely bool)
}

type component struct {
	name  string
	value any
	hooks any
}

// builtin adapts the core components to the lifecycle interfaces without
// exporting their hooks.
type builtin struct {
	setup   func()
	mount   func()
	destroy func(bool)
}

func (b builtin) Setup() {
	if b.setup != nil {
		b.setup()
	}
}

func (b builtin) Mount() {
	if b.mount != nil {
		b.mount()
	}
}

func (b builtin) Destroy(completely bool) {
	if b.destroy != nil {
		b.destroy(completely)
	}
}

// Component returns the component registered under name: a core component
// such as "move" or "controller", or a mounted extension.
func (s *Slider) Component(name string) (any, bool) {
	for _, c := range s.components {
		if c.name == name {
			return c.value, true
		}
	}
	return nil, false
}

func (s *Slider) register(name string, value any, hooks any) {
	s.components = append(s.components, component{name: name, value: value, hooks: hooks})
}
