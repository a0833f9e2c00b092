package document

import (
	"errors"
	"fmt"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

var (
	// ErrSectionMismatch is returned when a replacement value has the wrong type for its section
	ErrSectionMismatch = errors.New("section value has wrong type")
	// ErrNotCollection is returned when an entry operation targets a singleton section
	ErrNotCollection = errors.New("section is not a collection")
	// ErrInvalidAction is returned when an encoded action cannot be decoded
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidDocument is returned when a whole document cannot be decoded
	ErrInvalidDocument = errors.New("invalid document")
)

// Reduce applies one action to doc and returns the resulting document.
// doc is never modified; on error the original document is returned.
func Reduce(doc types.Document, action Action) (types.Document, error) {
	if action == nil {
		return doc, fmt.Errorf("%w: nil action", ErrInvalidAction)
	}
	next, err := action.apply(doc)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", action.Type(), err)
	}
	return next, nil
}

// Replace swaps a whole section of doc for value.
// Collections are checked for unique, non-empty ids, nil sequences are normalized
// and the value is copied so later edits to it do not reach the document.
func Replace(doc types.Document, key types.SectionKey, value any) (types.Document, error) {
	switch key {
	case types.SectionPersonal:
		v, ok := value.(types.PersonalInfo)
		if !ok {
			return doc, mismatch(key, value)
		}
		doc.PersonalInfo = v
	case types.SectionExperience:
		v, ok := value.([]types.WorkExperience)
		if !ok {
			return doc, mismatch(key, value)
		}
		if err := collection.CheckUnique(v); err != nil {
			return doc, err
		}
		doc.WorkExperience = types.NormalizeWorkExperience(v)
	case types.SectionEducation:
		v, ok := value.([]types.Education)
		if !ok {
			return doc, mismatch(key, value)
		}
		if err := collection.CheckUnique(v); err != nil {
			return doc, err
		}
		doc.Education = append([]types.Education{}, v...)
	case types.SectionSkills:
		v, ok := value.(types.SkillSet)
		if !ok {
			return doc, mismatch(key, value)
		}
		doc.Skills = types.NormalizeSkills(v)
	case types.SectionProjects:
		v, ok := value.([]types.Project)
		if !ok {
			return doc, mismatch(key, value)
		}
		if err := collection.CheckUnique(v); err != nil {
			return doc, err
		}
		doc.Projects = types.NormalizeProjects(v)
	case types.SectionCertifications:
		v, ok := value.([]types.Certification)
		if !ok {
			return doc, mismatch(key, value)
		}
		if err := collection.CheckUnique(v); err != nil {
			return doc, err
		}
		doc.Certifications = append([]types.Certification{}, v...)
	default:
		return doc, fmt.Errorf("%w: %q", types.ErrUnknownSection, key)
	}
	return types.ReserveIDs(doc), nil
}

// Section returns the current value of one section of doc.
func Section(doc types.Document, key types.SectionKey) (any, error) {
	switch key {
	case types.SectionPersonal:
		return doc.PersonalInfo, nil
	case types.SectionExperience:
		return doc.WorkExperience, nil
	case types.SectionEducation:
		return doc.Education, nil
	case types.SectionSkills:
		return doc.Skills, nil
	case types.SectionProjects:
		return doc.Projects, nil
	case types.SectionCertifications:
		return doc.Certifications, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownSection, key)
	}
}

// LastEntryID returns the id of the last entry in a collection section, or "".
func LastEntryID(doc types.Document, key types.SectionKey) string {
	var ids []string
	switch key {
	case types.SectionExperience:
		ids = collection.IDs(doc.WorkExperience)
	case types.SectionEducation:
		ids = collection.IDs(doc.Education)
	case types.SectionProjects:
		ids = collection.IDs(doc.Projects)
	case types.SectionCertifications:
		ids = collection.IDs(doc.Certifications)
	}
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1]
}

func mismatch(key types.SectionKey, value any) error {
	return fmt.Errorf("%w: %s section cannot hold %T", ErrSectionMismatch, key, value)
}

func notCollection(key types.SectionKey) error {
	if _, err := types.ParseSectionKey(string(key)); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrNotCollection, key)
}
