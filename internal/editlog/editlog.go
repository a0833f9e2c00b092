package editlog

import (
	"fmt"
	"os"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"gopkg.in/yaml.v3"
)

// Log is a recorded sequence of edits, applied in order from the empty document.
// JSON logs parse as well since the decoder is YAML.
type Log struct {
	Name  string              `yaml:"name,omitempty" json:"name,omitempty"`
	Edits []document.Envelope `yaml:"edits" json:"edits"`
}

// LoadEditLog loads an edit log from a YAML or JSON file
func LoadEditLog(path string) (*Log, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return ParseEditLog(content)
}

// ParseEditLog parses an edit log from raw YAML or JSON.
func ParseEditLog(content []byte) (*Log, error) {
	var log Log
	if err := yaml.Unmarshal(content, &log); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal edit log",
			Cause:   err,
		}
	}

	if log.Edits == nil {
		return nil, &LoadError{Message: "edit log has no 'edits' list"}
	}

	return &log, nil
}

// Actions converts every envelope. The first invalid entry fails the whole log.
func (l *Log) Actions() ([]document.Action, error) {
	actions := make([]document.Action, 0, len(l.Edits))
	for i, env := range l.Edits {
		action, err := env.Action()
		if err != nil {
			return nil, &EditError{Index: i, Cause: err}
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Replay converts the log and replays it against a fresh store.
func (l *Log) Replay(opts ...document.Option) (document.Snapshot, error) {
	actions, err := l.Actions()
	if err != nil {
		return document.Snapshot{}, err
	}
	return document.Replay(actions, opts...)
}
