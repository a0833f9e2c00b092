package document

import (
	"github.com/rs/zerolog"
)

type logObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an Observer that writes one structured event per edit.
func NewLogObserver(log zerolog.Logger) Observer {
	return &logObserver{log: log}
}

func (o *logObserver) Applied(action Action, before, after Snapshot) {
	o.log.Debug().
		Str("action", string(action.Type())).
		Uint64("revision", after.Revision).
		Bool("changed", after.Revision != before.Revision).
		Int("score", after.Score).
		Int("score_delta", after.Score-before.Score).
		Msg("edit applied")
}

func (o *logObserver) Rejected(action Action, err error) {
	event := o.log.Warn().Err(err)
	if action != nil {
		event = event.Str("action", string(action.Type()))
	}
	event.Msg("edit rejected")
}
