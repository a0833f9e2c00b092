package types

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not part of an entity's field set
var ErrUnknownField = errors.New("unknown field")

// PersonalField names an editable PersonalInfo field
type PersonalField string

// Personal info fields
const (
	PersonalFullName PersonalField = "fullName"
	PersonalEmail    PersonalField = "email"
	PersonalPhone    PersonalField = "phone"
	PersonalLocation PersonalField = "location"
	PersonalLinkedIn PersonalField = "linkedin"
	PersonalGitHub   PersonalField = "github"
	PersonalSummary  PersonalField = "summary"
)

// WorkField names a free-text WorkExperience field.
// Current and Achievements have dedicated operations.
type WorkField string

// Work experience text fields
const (
	WorkJobTitle  WorkField = "jobTitle"
	WorkCompany   WorkField = "company"
	WorkStartDate WorkField = "startDate"
	WorkEndDate   WorkField = "endDate"
)

// EducationField names an editable Education field
type EducationField string

// Education fields
const (
	EducationDegree         EducationField = "degree"
	EducationSchool         EducationField = "school"
	EducationGraduationDate EducationField = "graduationDate"
	EducationGPA            EducationField = "gpa"
)

// ProjectField names a free-text Project field.
// Technologies have dedicated list operations.
type ProjectField string

// Project text fields
const (
	ProjectName        ProjectField = "name"
	ProjectDescription ProjectField = "description"
	ProjectLink        ProjectField = "link"
)

// CertificationField names an editable Certification field
type CertificationField string

// Certification fields
const (
	CertificationName   CertificationField = "name"
	CertificationIssuer CertificationField = "issuer"
	CertificationDate   CertificationField = "date"
)

func unknownField(kind, name string) error {
	return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, kind, name)
}

// Set returns a copy of p with the field replaced.
func (f PersonalField) Set(p PersonalInfo, value string) (PersonalInfo, error) {
	switch f {
	case PersonalFullName:
		p.FullName = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalGitHub:
		p.GitHub = value
	case PersonalSummary:
		p.Summary = value
	default:
		return p, unknownField("personal info", string(f))
	}
	return p, nil
}

// Set returns a copy of w with the field replaced.
func (f WorkField) Set(w WorkExperience, value string) (WorkExperience, error) {
	switch f {
	case WorkJobTitle:
		w.JobTitle = value
	case WorkCompany:
		w.Company = value
	case WorkStartDate:
		w.StartDate = value
	case WorkEndDate:
		w.EndDate = value
	default:
		return w, unknownField("work experience", string(f))
	}
	return w, nil
}

// Set returns a copy of e with the field replaced.
func (f EducationField) Set(e Education, value string) (Education, error) {
	switch f {
	case EducationDegree:
		e.Degree = value
	case EducationSchool:
		e.School = value
	case EducationGraduationDate:
		e.GraduationDate = value
	case EducationGPA:
		e.GPA = value
	default:
		return e, unknownField("education", string(f))
	}
	return e, nil
}

// Set returns a copy of p with the field replaced.
func (f ProjectField) Set(p Project, value string) (Project, error) {
	switch f {
	case ProjectName:
		p.Name = value
	case ProjectDescription:
		p.Description = value
	case ProjectLink:
		p.Link = value
	default:
		return p, unknownField("project", string(f))
	}
	return p, nil
}

// Set returns a copy of c with the field replaced.
func (f CertificationField) Set(c Certification, value string) (Certification, error) {
	switch f {
	case CertificationName:
		c.Name = value
	case CertificationIssuer:
		c.Issuer = value
	case CertificationDate:
		c.Date = value
	default:
		return c, unknownField("certification", string(f))
	}
	return c, nil
}

// UnmarshalText rejects names outside the personal info field set.
func (f *PersonalField) UnmarshalText(text []byte) error {
	candidate := PersonalField(text)
	if _, err := candidate.Set(PersonalInfo{}, ""); err != nil {
		return err
	}
	*f = candidate
	return nil
}

// UnmarshalText rejects names outside the work experience field set.
func (f *WorkField) UnmarshalText(text []byte) error {
	candidate := WorkField(text)
	if _, err := candidate.Set(WorkExperience{}, ""); err != nil {
		return err
	}
	*f = candidate
	return nil
}

// UnmarshalText rejects names outside the education field set.
func (f *EducationField) UnmarshalText(text []byte) error {
	candidate := EducationField(text)
	if _, err := candidate.Set(Education{}, ""); err != nil {
		return err
	}
	*f = candidate
	return nil
}

// UnmarshalText rejects names outside the project field set.
func (f *ProjectField) UnmarshalText(text []byte) error {
	candidate := ProjectField(text)
	if _, err := candidate.Set(Project{}, ""); err != nil {
		return err
	}
	*f = candidate
	return nil
}

// UnmarshalText rejects names outside the certification field set.
func (f *CertificationField) UnmarshalText(text []byte) error {
	candidate := CertificationField(text)
	if _, err := candidate.Set(Certification{}, ""); err != nil {
		return err
	}
	*f = candidate
	return nil
}

// SkillKind selects one of the two skill lists
type SkillKind string

// Skill lists
const (
	SkillTechnical SkillKind = "technical"
	SkillSoft      SkillKind = "soft"
)

// List returns the skill list selected by k.
func (k SkillKind) List(s SkillSet) ([]string, error) {
	switch k {
	case SkillTechnical:
		return s.Technical, nil
	case SkillSoft:
		return s.Soft, nil
	default:
		return nil, unknownField("skills", string(k))
	}
}

// With returns a copy of s with the selected list replaced.
func (k SkillKind) With(s SkillSet, list []string) (SkillSet, error) {
	switch k {
	case SkillTechnical:
		s.Technical = list
	case SkillSoft:
		s.Soft = list
	default:
		return s, unknownField("skills", string(k))
	}
	return s, nil
}

// UnmarshalText rejects anything other than technical or soft.
func (k *SkillKind) UnmarshalText(text []byte) error {
	candidate := SkillKind(text)
	if _, err := candidate.List(SkillSet{}); err != nil {
		return err
	}
	*k = candidate
	return nil
}
