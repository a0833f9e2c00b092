// Package sections describes the six resume sections and when each counts as complete.
package sections

import (
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// Section holds display metadata and the completion predicate for one section
type Section struct {
	Key      types.SectionKey
	Name     string
	Complete func(doc *types.Document) bool
}

// Progress is the completion state of one section, ready for display
type Progress struct {
	Key       types.SectionKey `json:"key"`
	Name      string           `json:"name"`
	Completed bool             `json:"completed"`
}

var registry = []Section{
	{
		Key:  types.SectionPersonal,
		Name: "Personal Info",
		Complete: func(d *types.Document) bool {
			return d.PersonalInfo.FullName != "" && d.PersonalInfo.Email != ""
		},
	},
	{
		Key:      types.SectionExperience,
		Name:     "Experience",
		Complete: func(d *types.Document) bool { return len(d.WorkExperience) > 0 },
	},
	{
		Key:      types.SectionEducation,
		Name:     "Education",
		Complete: func(d *types.Document) bool { return len(d.Education) > 0 },
	},
	{
		Key:      types.SectionSkills,
		Name:     "Skills",
		Complete: func(d *types.Document) bool { return len(d.Skills.Technical) > 0 },
	},
	{
		Key:      types.SectionProjects,
		Name:     "Projects",
		Complete: func(d *types.Document) bool { return len(d.Projects) > 0 },
	},
	{
		Key:      types.SectionCertifications,
		Name:     "Certifications",
		Complete: func(d *types.Document) bool { return len(d.Certifications) > 0 },
	},
}

// All returns the registered sections in display order.
func All() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the section registered under key.
func Lookup(key types.SectionKey) (Section, bool) {
	for _, s := range registry {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Completion maps every section key to its completion flag.
func Completion(doc types.Document) map[types.SectionKey]bool {
	out := make(map[types.SectionKey]bool, len(registry))
	for _, s := range registry {
		out[s.Key] = s.Complete(&doc)
	}
	return out
}

// Report returns the completion state of every section in display order.
func Report(doc types.Document) []Progress {
	out := make([]Progress, len(registry))
	for i, s := range registry {
		out[i] = Progress{Key: s.Key, Name: s.Name, Completed: s.Complete(&doc)}
	}
	return out
}

// CompletedCount returns how many sections are complete.
func CompletedCount(doc types.Document) int {
	count := 0
	for _, s := range registry {
		if s.Complete(&doc) {
			count++
		}
	}
	return count
}
