package ui

import (
	"github.com/charmbracelet/log"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/event"
)

// moveJournal writes settled moves and autoplay changes at info level so
// the event panel has something to show without debug logging.
type moveJournal struct {
	s      *carousel.Slider
	logger *log.Logger
}

func journalExtension(logger *log.Logger) carousel.Extension {
	return carousel.Extension{
		Name: "journal",
		New: func(s *carousel.Slider) any {
			return &moveJournal{s: s, logger: logger.With("slider", s.ID())}
		},
	}
}

func (j *moveJournal) Mount() {
	scope := j.s.Scope("journal")
	_ = event.On(scope, carousel.EventMoved, func(e carousel.MoveEvent) {
		j.logger.Info("moved", "index", e.Index, "prev", e.Prev)
	})
	_ = event.On(scope, carousel.EventAutoplayPlay, func(event.None) {
		j.logger.Info("autoplay play")
	})
	_ = event.On(scope, carousel.EventAutoplayPause, func(event.None) {
		j.logger.Info("autoplay pause")
	})
	_ = event.On(scope, carousel.EventUpdated, func(o carousel.Options) {
		j.logger.Info("options updated", "per_page", o.PerPage, "type", o.Type)
	})
}
