package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Envelope is the wire form of an action, shared by JSON request bodies and YAML edit logs.
type Envelope struct {
	Type    ActionType `json:"type" yaml:"type" validate:"required,oneof=replace_section set_personal add_entry remove_entry update_work set_current add_achievement set_achievement remove_achievement update_education update_project add_technology remove_technology update_certification add_skill remove_skill reset"`
	Section string     `json:"section,omitempty" yaml:"section,omitempty"`
	ID      string     `json:"id,omitempty" yaml:"id,omitempty"`
	Field   string     `json:"field,omitempty" yaml:"field,omitempty"`
	Value   string     `json:"value,omitempty" yaml:"value,omitempty"`
	Index   int        `json:"index,omitempty" yaml:"index,omitempty" validate:"min=0"`
	Current bool       `json:"current,omitempty" yaml:"current,omitempty"`
	Kind    string     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Data    any        `json:"data,omitempty" yaml:"data,omitempty"`
}

// Validate checks the envelope's static constraints.
func (e *Envelope) Validate() error {
	return validate.Struct(e)
}

// DecodeAction parses a JSON-encoded envelope into an Action.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return env.Action()
}

// Action converts the envelope into its typed Action.
func (e Envelope) Action() (Action, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}

	switch e.Type {
	case TypeReplaceSection:
		key, err := types.ParseSectionKey(e.Section)
		if err != nil {
			return nil, err
		}
		value, err := DecodeSection(key, e.Data)
		if err != nil {
			return nil, err
		}
		return ReplaceSection{Section: key, Value: value}, nil

	case TypeSetPersonal:
		var field types.PersonalField
		if err := field.UnmarshalText([]byte(e.Field)); err != nil {
			return nil, err
		}
		return SetPersonal{Field: field, Value: e.Value}, nil

	case TypeAddEntry:
		key, err := types.ParseSectionKey(e.Section)
		if err != nil {
			return nil, err
		}
		return AddEntry{Section: key}, nil

	case TypeRemoveEntry:
		key, err := types.ParseSectionKey(e.Section)
		if err != nil {
			return nil, err
		}
		if err := e.requireID(); err != nil {
			return nil, err
		}
		return RemoveEntry{Section: key, ID: e.ID}, nil

	case TypeUpdateWork:
		var field types.WorkField
		if err := field.UnmarshalText([]byte(e.Field)); err != nil {
			return nil, err
		}
		if err := e.requireID(); err != nil {
			return nil, err
		}
		return UpdateWork{ID: e.ID, Field: field, Value: e.Value}, nil

	case TypeUpdateEducation:
		var field types.EducationField
		if err := field.UnmarshalText([]byte(e.Field)); err != nil {
			return nil, err
		}
		if err := e.requireID(); err != nil {
			return nil, err
		}
		return UpdateEducation{ID: e.ID, Field: field, Value: e.Value}, nil

	case TypeUpdateProject:
		var field types.ProjectField
		if err := field.UnmarshalText([]byte(e.Field)); err != nil {
			return nil, err
		}
		if err := e.requireID(); err != nil {
			return nil, err
		}
		return UpdateProject{ID: e.ID, Field: field, Value: e.Value}, nil

	case TypeUpdateCertification:
		var field types.CertificationField
		if err := field.UnmarshalText([]byte(e.Field)); err != nil {
			return nil, err
		}
		if err := e.requireID(); err != nil {
			return nil, err
		}
		return UpdateCertification{ID: e.ID, Field: field, Value: e.Value}, nil

	case TypeAddSkill, TypeRemoveSkill:
		var kind types.SkillKind
		if err := kind.UnmarshalText([]byte(e.Kind)); err != nil {
			return nil, err
		}
		if e.Type == TypeAddSkill {
			return AddSkill{Kind: kind, Value: e.Value}, nil
		}
		return RemoveSkill{Kind: kind, Index: e.Index}, nil

	case TypeReset:
		return Reset{}, nil
	}

	// Remaining variants address a single entry by id.
	if err := e.requireID(); err != nil {
		return nil, err
	}
	switch e.Type {
	case TypeSetCurrent:
		return SetCurrent{ID: e.ID, Current: e.Current}, nil
	case TypeAddAchievement:
		return AddAchievement{ID: e.ID}, nil
	case TypeSetAchievement:
		return SetAchievement{ID: e.ID, Index: e.Index, Value: e.Value}, nil
	case TypeRemoveAchievement:
		return RemoveAchievement{ID: e.ID, Index: e.Index}, nil
	case TypeAddTechnology:
		return AddTechnology{ID: e.ID, Value: e.Value}, nil
	case TypeRemoveTechnology:
		return RemoveTechnology{ID: e.ID, Index: e.Index}, nil
	}
	return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidAction, e.Type)
}

func (e Envelope) requireID() error {
	if e.ID == "" {
		return fmt.Errorf("%w: %s requires an id", ErrInvalidAction, e.Type)
	}
	return nil
}

// DecodeSection converts loosely typed data (decoded JSON or YAML) into the
// section's Go value. Unknown keys are rejected.
func DecodeSection(key types.SectionKey, data any) (any, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: replace_section requires data", ErrInvalidAction)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return DecodeSectionJSON(key, raw)
}

// DecodeSectionJSON checks raw JSON against the section's schema and decodes it
// into the section's Go value. Keys must match exactly, including case.
func DecodeSectionJSON(key types.SectionKey, raw []byte) (any, error) {
	if err := schemas.ValidateSection(key, raw); err != nil {
		if errors.Is(err, types.ErrUnknownSection) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}

	switch key {
	case types.SectionPersonal:
		return decodeStrict[types.PersonalInfo](raw)
	case types.SectionExperience:
		return decodeStrict[[]types.WorkExperience](raw)
	case types.SectionEducation:
		return decodeStrict[[]types.Education](raw)
	case types.SectionSkills:
		return decodeStrict[types.SkillSet](raw)
	case types.SectionProjects:
		return decodeStrict[[]types.Project](raw)
	case types.SectionCertifications:
		return decodeStrict[[]types.Certification](raw)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownSection, key)
	}
}

func decodeStrict[T any](raw []byte) (any, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return v, nil
}

// DecodeDocumentJSON decodes a whole document, rejecting schema violations
// (unknown or miscased keys among them) and duplicate entry ids. Missing
// sections come back empty.
func DecodeDocumentJSON(raw []byte) (types.Document, error) {
	if err := schemas.ValidateDocumentJSON(raw); err != nil {
		return types.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var doc types.Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return types.Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	checks := []struct {
		key types.SectionKey
		err error
	}{
		{types.SectionExperience, collection.CheckUnique(doc.WorkExperience)},
		{types.SectionEducation, collection.CheckUnique(doc.Education)},
		{types.SectionProjects, collection.CheckUnique(doc.Projects)},
		{types.SectionCertifications, collection.CheckUnique(doc.Certifications)},
	}
	for _, c := range checks {
		if c.err != nil {
			return types.Document{}, fmt.Errorf("%s: %w", c.key, c.err)
		}
	}

	return types.Normalize(doc), nil
}
