// Package types provides type definitions for the resume document edited by the builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownSection is returned when a section key is not one of the six document sections
var ErrUnknownSection = errors.New("unknown section")

// SectionKey identifies one of the top-level document sections
type SectionKey string

// Section keys in display order
const (
	SectionPersonal       SectionKey = "personal"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
)

// AllSections returns every section key in display order.
func AllSections() []SectionKey {
	return []SectionKey{
		SectionPersonal,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
	}
}

// ParseSectionKey converts a raw string into a SectionKey.
func ParseSectionKey(s string) (SectionKey, error) {
	for _, key := range AllSections() {
		if string(key) == s {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// UnmarshalText rejects section keys outside the closed set.
func (k *SectionKey) UnmarshalText(text []byte) error {
	parsed, err := ParseSectionKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsCollection reports whether the section holds identity-keyed entries.
func (k SectionKey) IsCollection() bool {
	switch k {
	case SectionExperience, SectionEducation, SectionProjects, SectionCertifications:
		return true
	default:
		return false
	}
}

// Document is the root aggregate edited during one session.
type Document struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         SkillSet         `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`

	// NextID is the last issued entry sequence number. It only grows.
	NextID uint64 `json:"nextId,omitempty"`
}

// PersonalInfo holds the singleton contact block
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// WorkExperience represents a single job entry
type WorkExperience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

// Education represents a single degree entry
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Project represents a single portfolio project
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// Certification represents a single certification entry
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// SkillSet holds the two plain skill lists. Duplicates are kept.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// EntryID implements the collection entry contract.
func (w WorkExperience) EntryID() string { return w.ID }

// EntryID implements the collection entry contract.
func (e Education) EntryID() string { return e.ID }

// EntryID implements the collection entry contract.
func (p Project) EntryID() string { return p.ID }

// EntryID implements the collection entry contract.
func (c Certification) EntryID() string { return c.ID }

// EffectiveEndDate returns the end date used for display and scoring.
// A current position has no end date.
func (w WorkExperience) EffectiveEndDate() string {
	if w.Current {
		return ""
	}
	return w.EndDate
}

// NewDocument returns the empty document a session starts with.
func NewDocument() Document {
	return Document{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         SkillSet{Technical: []string{}, Soft: []string{}},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// NewWorkExperience returns a blank job entry with one empty achievement slot.
func NewWorkExperience(id string) WorkExperience {
	return WorkExperience{ID: id, Achievements: []string{""}}
}

// NewEducation returns a blank education entry.
func NewEducation(id string) Education {
	return Education{ID: id}
}

// NewProject returns a blank project with no technologies.
func NewProject(id string) Project {
	return Project{ID: id, Technologies: []string{}}
}

// NewCertification returns a blank certification entry.
func NewCertification(id string) Certification {
	return Certification{ID: id}
}

// Entry id prefixes. Generated ids are "<prefix>-<n>" with n taken from Document.NextID.
const (
	IDPrefixExperience    = "exp"
	IDPrefixEducation     = "edu"
	IDPrefixProject       = "proj"
	IDPrefixCertification = "cert"
)

// Normalize returns a copy of doc with nil sequences replaced by empty ones so
// that no field is absent, and NextID raised past every id already present.
// Achievement lists are left as given: an empty list counts as zero slots.
func Normalize(doc Document) Document {
	doc.WorkExperience = NormalizeWorkExperience(doc.WorkExperience)
	doc.Education = cloneOrEmpty(doc.Education)
	doc.Skills = NormalizeSkills(doc.Skills)
	doc.Projects = NormalizeProjects(doc.Projects)
	doc.Certifications = cloneOrEmpty(doc.Certifications)
	return ReserveIDs(doc)
}

// NormalizeSkills returns a copy of s with nil skill lists replaced by empty ones.
func NormalizeSkills(s SkillSet) SkillSet {
	return SkillSet{
		Technical: cloneOrEmpty(s.Technical),
		Soft:      cloneOrEmpty(s.Soft),
	}
}

// NormalizeWorkExperience returns a deep copy of entries with nil achievement lists replaced.
func NormalizeWorkExperience(entries []WorkExperience) []WorkExperience {
	out := make([]WorkExperience, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].Achievements = cloneOrEmpty(out[i].Achievements)
	}
	return out
}

// NormalizeProjects returns a deep copy of projects with nil technology lists replaced.
func NormalizeProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	for i := range out {
		out[i].Technologies = cloneOrEmpty(out[i].Technologies)
	}
	return out
}

// ReserveIDs raises doc.NextID to at least the sequence number of every
// "<prefix>-<n>" id in the document's collections, so ids supplied from
// outside are never issued again once removed.
func ReserveIDs(doc Document) Document {
	reserve := func(prefix, id string) {
		if n, ok := idSequence(prefix, id); ok && n > doc.NextID {
			doc.NextID = n
		}
	}
	for _, e := range doc.WorkExperience {
		reserve(IDPrefixExperience, e.ID)
	}
	for _, e := range doc.Education {
		reserve(IDPrefixEducation, e.ID)
	}
	for _, p := range doc.Projects {
		reserve(IDPrefixProject, p.ID)
	}
	for _, c := range doc.Certifications {
		reserve(IDPrefixCertification, c.ID)
	}
	return doc
}

func idSequence(prefix, id string) (uint64, bool) {
	suffix, ok := strings.CutPrefix(id, prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a deep copy of doc. Nil sequences stay nil.
func (d Document) Clone() Document {
	out := d
	out.WorkExperience = slices.Clone(d.WorkExperience)
	for i := range out.WorkExperience {
		out.WorkExperience[i].Achievements = slices.Clone(d.WorkExperience[i].Achievements)
	}
	out.Education = slices.Clone(d.Education)
	out.Skills = SkillSet{Technical: slices.Clone(d.Skills.Technical), Soft: slices.Clone(d.Skills.Soft)}
	out.Projects = slices.Clone(d.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(d.Projects[i].Technologies)
	}
	out.Certifications = slices.Clone(d.Certifications)
	return out
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
