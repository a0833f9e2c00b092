// Package document holds the resume document store and the pure reducer that applies edits to it.
package document

import (
	"fmt"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// ActionType tags each edit variant on the wire
type ActionType string

// Supported edit variants
const (
	TypeReplaceSection      ActionType = "replace_section"
	TypeSetPersonal         ActionType = "set_personal"
	TypeAddEntry            ActionType = "add_entry"
	TypeRemoveEntry         ActionType = "remove_entry"
	TypeUpdateWork          ActionType = "update_work"
	TypeSetCurrent          ActionType = "set_current"
	TypeAddAchievement      ActionType = "add_achievement"
	TypeSetAchievement      ActionType = "set_achievement"
	TypeRemoveAchievement   ActionType = "remove_achievement"
	TypeUpdateEducation     ActionType = "update_education"
	TypeUpdateProject       ActionType = "update_project"
	TypeAddTechnology       ActionType = "add_technology"
	TypeRemoveTechnology    ActionType = "remove_technology"
	TypeUpdateCertification ActionType = "update_certification"
	TypeAddSkill            ActionType = "add_skill"
	TypeRemoveSkill         ActionType = "remove_skill"
	TypeReset               ActionType = "reset"
)

// Action is one edit. The set of implementations is closed to this package.
type Action interface {
	Type() ActionType
	apply(doc types.Document) (types.Document, error)
}

// ReplaceSection swaps a whole section for a new, complete value.
// Value must be the section's Go type (types.PersonalInfo, []types.WorkExperience, ...).
type ReplaceSection struct {
	Section types.SectionKey
	Value   any
}

// SetPersonal replaces one personal info field
type SetPersonal struct {
	Field types.PersonalField
	Value string
}

// AddEntry appends a blank entry with a fresh id to a collection section
type AddEntry struct {
	Section types.SectionKey
}

// RemoveEntry deletes an entry from a collection section
type RemoveEntry struct {
	Section types.SectionKey
	ID      string
}

// UpdateWork replaces one text field of a work entry
type UpdateWork struct {
	ID    string
	Field types.WorkField
	Value string
}

// SetCurrent toggles whether a work entry is the current position
type SetCurrent struct {
	ID      string
	Current bool
}

// AddAchievement appends a blank achievement slot to a work entry
type AddAchievement struct {
	ID string
}

// SetAchievement replaces the achievement at Index
type SetAchievement struct {
	ID    string
	Index int
	Value string
}

// RemoveAchievement deletes the achievement at Index; the last slot is kept
type RemoveAchievement struct {
	ID    string
	Index int
}

// UpdateEducation replaces one field of an education entry
type UpdateEducation struct {
	ID    string
	Field types.EducationField
	Value string
}

// UpdateProject replaces one text field of a project
type UpdateProject struct {
	ID    string
	Field types.ProjectField
	Value string
}

// AddTechnology appends a trimmed, non-blank technology to a project
type AddTechnology struct {
	ID    string
	Value string
}

// RemoveTechnology deletes the technology at Index
type RemoveTechnology struct {
	ID    string
	Index int
}

// UpdateCertification replaces one field of a certification
type UpdateCertification struct {
	ID    string
	Field types.CertificationField
	Value string
}

// AddSkill appends a trimmed, non-blank skill
type AddSkill struct {
	Kind  types.SkillKind
	Value string
}

// RemoveSkill deletes the skill at Index
type RemoveSkill struct {
	Kind  types.SkillKind
	Index int
}

// Reset replaces the document with an empty one
type Reset struct{}

func (ReplaceSection) Type() ActionType      { return TypeReplaceSection }
func (SetPersonal) Type() ActionType         { return TypeSetPersonal }
func (AddEntry) Type() ActionType            { return TypeAddEntry }
func (RemoveEntry) Type() ActionType         { return TypeRemoveEntry }
func (UpdateWork) Type() ActionType          { return TypeUpdateWork }
func (SetCurrent) Type() ActionType          { return TypeSetCurrent }
func (AddAchievement) Type() ActionType      { return TypeAddAchievement }
func (SetAchievement) Type() ActionType      { return TypeSetAchievement }
func (RemoveAchievement) Type() ActionType   { return TypeRemoveAchievement }
func (UpdateEducation) Type() ActionType     { return TypeUpdateEducation }
func (UpdateProject) Type() ActionType       { return TypeUpdateProject }
func (AddTechnology) Type() ActionType       { return TypeAddTechnology }
func (RemoveTechnology) Type() ActionType    { return TypeRemoveTechnology }
func (UpdateCertification) Type() ActionType { return TypeUpdateCertification }
func (AddSkill) Type() ActionType            { return TypeAddSkill }
func (RemoveSkill) Type() ActionType         { return TypeRemoveSkill }
func (Reset) Type() ActionType               { return TypeReset }

func (a ReplaceSection) apply(doc types.Document) (types.Document, error) {
	return Replace(doc, a.Section, a.Value)
}

func (a SetPersonal) apply(doc types.Document) (types.Document, error) {
	info, err := a.Field.Set(doc.PersonalInfo, a.Value)
	if err != nil {
		return doc, err
	}
	doc.PersonalInfo = info
	return doc, nil
}

func (a AddEntry) apply(doc types.Document) (types.Document, error) {
	var err error
	switch a.Section {
	case types.SectionExperience:
		id := nextID(&doc, types.IDPrefixExperience, func(id string) bool { _, ok := collection.Find(doc.WorkExperience, id); return ok })
		doc.WorkExperience, _, err = collection.Add(doc.WorkExperience, id, types.NewWorkExperience)
	case types.SectionEducation:
		id := nextID(&doc, types.IDPrefixEducation, func(id string) bool { _, ok := collection.Find(doc.Education, id); return ok })
		doc.Education, _, err = collection.Add(doc.Education, id, types.NewEducation)
	case types.SectionProjects:
		id := nextID(&doc, types.IDPrefixProject, func(id string) bool { _, ok := collection.Find(doc.Projects, id); return ok })
		doc.Projects, _, err = collection.Add(doc.Projects, id, types.NewProject)
	case types.SectionCertifications:
		id := nextID(&doc, types.IDPrefixCertification, func(id string) bool { _, ok := collection.Find(doc.Certifications, id); return ok })
		doc.Certifications, _, err = collection.Add(doc.Certifications, id, types.NewCertification)
	default:
		return doc, notCollection(a.Section)
	}
	return doc, err
}

func (a RemoveEntry) apply(doc types.Document) (types.Document, error) {
	var err error
	switch a.Section {
	case types.SectionExperience:
		doc.WorkExperience, err = collection.Remove(doc.WorkExperience, a.ID)
	case types.SectionEducation:
		doc.Education, err = collection.Remove(doc.Education, a.ID)
	case types.SectionProjects:
		doc.Projects, err = collection.Remove(doc.Projects, a.ID)
	case types.SectionCertifications:
		doc.Certifications, err = collection.Remove(doc.Certifications, a.ID)
	default:
		return doc, notCollection(a.Section)
	}
	return doc, err
}

func (a UpdateWork) apply(doc types.Document) (types.Document, error) {
	return updateWork(doc, a.ID, func(w types.WorkExperience) (types.WorkExperience, error) {
		return a.Field.Set(w, a.Value)
	})
}

func (a SetCurrent) apply(doc types.Document) (types.Document, error) {
	return updateWork(doc, a.ID, func(w types.WorkExperience) (types.WorkExperience, error) {
		w.Current = a.Current
		return w, nil
	})
}

func (a AddAchievement) apply(doc types.Document) (types.Document, error) {
	return updateWork(doc, a.ID, func(w types.WorkExperience) (types.WorkExperience, error) {
		w.Achievements = collection.AppendItem(w.Achievements, "")
		return w, nil
	})
}

func (a SetAchievement) apply(doc types.Document) (types.Document, error) {
	return updateWork(doc, a.ID, func(w types.WorkExperience) (types.WorkExperience, error) {
		list, err := collection.SetItem(w.Achievements, a.Index, a.Value)
		w.Achievements = list
		return w, err
	})
}

func (a RemoveAchievement) apply(doc types.Document) (types.Document, error) {
	return updateWork(doc, a.ID, func(w types.WorkExperience) (types.WorkExperience, error) {
		list, err := collection.RemoveItemKeepOne(w.Achievements, a.Index)
		w.Achievements = list
		return w, err
	})
}

func (a UpdateEducation) apply(doc types.Document) (types.Document, error) {
	entries, err := collection.Update(doc.Education, a.ID, func(e types.Education) (types.Education, error) {
		return a.Field.Set(e, a.Value)
	})
	if err != nil {
		return doc, err
	}
	doc.Education = entries
	return doc, nil
}

func (a UpdateProject) apply(doc types.Document) (types.Document, error) {
	return updateProject(doc, a.ID, func(p types.Project) (types.Project, error) {
		return a.Field.Set(p, a.Value)
	})
}

func (a AddTechnology) apply(doc types.Document) (types.Document, error) {
	return updateProject(doc, a.ID, func(p types.Project) (types.Project, error) {
		list, err := collection.AppendTrimmed(p.Technologies, a.Value)
		p.Technologies = list
		return p, err
	})
}

func (a RemoveTechnology) apply(doc types.Document) (types.Document, error) {
	return updateProject(doc, a.ID, func(p types.Project) (types.Project, error) {
		list, err := collection.RemoveItem(p.Technologies, a.Index)
		p.Technologies = list
		return p, err
	})
}

func (a UpdateCertification) apply(doc types.Document) (types.Document, error) {
	entries, err := collection.Update(doc.Certifications, a.ID, func(c types.Certification) (types.Certification, error) {
		return a.Field.Set(c, a.Value)
	})
	if err != nil {
		return doc, err
	}
	doc.Certifications = entries
	return doc, nil
}

func (a AddSkill) apply(doc types.Document) (types.Document, error) {
	return updateSkills(doc, a.Kind, func(list []string) ([]string, error) {
		return collection.AppendTrimmed(list, a.Value)
	})
}

func (a RemoveSkill) apply(doc types.Document) (types.Document, error) {
	return updateSkills(doc, a.Kind, func(list []string) ([]string, error) {
		return collection.RemoveItem(list, a.Index)
	})
}

func (Reset) apply(doc types.Document) (types.Document, error) {
	fresh := types.NewDocument()
	fresh.NextID = doc.NextID
	return fresh, nil
}

func updateWork(doc types.Document, id string, fn func(types.WorkExperience) (types.WorkExperience, error)) (types.Document, error) {
	entries, err := collection.Update(doc.WorkExperience, id, fn)
	if err != nil {
		return doc, err
	}
	doc.WorkExperience = entries
	return doc, nil
}

func updateProject(doc types.Document, id string, fn func(types.Project) (types.Project, error)) (types.Document, error) {
	entries, err := collection.Update(doc.Projects, id, fn)
	if err != nil {
		return doc, err
	}
	doc.Projects = entries
	return doc, nil
}

func updateSkills(doc types.Document, kind types.SkillKind, fn func([]string) ([]string, error)) (types.Document, error) {
	list, err := kind.List(doc.Skills)
	if err != nil {
		return doc, err
	}
	list, err = fn(list)
	if err != nil {
		return doc, err
	}
	skills, err := kind.With(doc.Skills, list)
	if err != nil {
		return doc, err
	}
	doc.Skills = skills
	return doc, nil
}

// nextID advances the document sequence until the id is free in the target collection.
func nextID(doc *types.Document, prefix string, taken func(id string) bool) string {
	for {
		doc.NextID++
		id := fmt.Sprintf("%s-%d", prefix, doc.NextID)
		if !taken(id) {
			return id
		}
	}
}
