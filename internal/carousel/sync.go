package carousel

// Sync mirrors moves between sliders. Links are non-owning and may form
// cycles; a per-slider flag stops a move from echoing back.
type Sync struct {
	s       *Slider
	targets []*Slider
	syncing bool
}

func (sy *Sync) mount() {
	scope := sy.s.scope("sync")
	listen(scope, EventMove, sy.propagate)
}

func (sy *Sync) link(other *Slider) {
	for _, t := range sy.targets {
		if t == other {
			return
		}
	}
	sy.targets = append(sy.targets, other)
}

func (sy *Sync) unlink(other *Slider) {
	kept := sy.targets[:0]
	for _, t := range sy.targets {
		if t != other {
			kept = append(kept, t)
		}
	}
	sy.targets = kept
}

// Targets returns the linked sliders.
func (sy *Sync) Targets() []*Slider {
	return append([]*Slider(nil), sy.targets...)
}

func (sy *Sync) propagate(e MoveEvent) {
	if sy.syncing {
		return
	}
	sy.syncing = true
	defer func() { sy.syncing = false }()

	for _, t := range sy.targets {
		if !t.alive() || t.Sync.syncing {
			continue
		}
		target := e.Index
		if t.Is(TypeLoop) {
			target = e.Dest
		}
		t.Controller.Go(To(target), nil)
	}
}
