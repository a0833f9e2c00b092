// Package scoring computes the ATS score of a resume document against a fixed rubric.
package scoring

import (
	"strings"
	"unicode/utf16"

	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// Score bounds
const (
	MinScore = 0
	MaxScore = 100
)

// Rubric thresholds. All are inclusive lower bounds.
const (
	summaryMinLength       = 100
	achievementsLowTarget  = 3
	achievementsHighTarget = 6
	technicalLowTarget     = 5
	technicalHighTarget    = 8
	softSkillsTarget       = 3
	projectsLowTarget      = 1
	projectsHighTarget     = 3
	structureTarget        = 3
)

// Category groups rubric rules for reporting
type Category string

// Rubric categories
const (
	CategoryPersonal   Category = "personal"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategorySkills     Category = "skills"
	CategoryProjects   Category = "projects"
	CategoryStructure  Category = "structure"
)

// Rule is one independent point bucket of the rubric
type Rule struct {
	Name     string
	Category Category
	Points   int
	Met      func(doc *types.Document) bool
}

// Rubric is an ordered table of rules. Awards are summed and clamped.
type Rubric []Rule

var defaultRubric = Rubric{
	{Name: "full name present", Category: CategoryPersonal, Points: 3, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.FullName })},
	{Name: "email present", Category: CategoryPersonal, Points: 3, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.Email })},
	{Name: "phone present", Category: CategoryPersonal, Points: 3, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.Phone })},
	{Name: "location present", Category: CategoryPersonal, Points: 3, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.Location })},
	{Name: "linkedin present", Category: CategoryPersonal, Points: 2, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.LinkedIn })},
	{Name: "github present", Category: CategoryPersonal, Points: 2, Met: hasText(func(d *types.Document) string { return d.PersonalInfo.GitHub })},
	{Name: "summary of 100+ characters", Category: CategoryPersonal, Points: 4, Met: atLeast(summaryMinLength, summaryLength)},

	{Name: "has work experience", Category: CategoryExperience, Points: 10, Met: atLeast(1, experienceCount)},
	{Name: "3+ achievements", Category: CategoryExperience, Points: 10, Met: atLeast(achievementsLowTarget, AchievementCount)},
	{Name: "6+ achievements", Category: CategoryExperience, Points: 10, Met: atLeast(achievementsHighTarget, AchievementCount)},

	{Name: "has education", Category: CategoryEducation, Points: 15, Met: atLeast(1, educationCount)},

	{Name: "5+ technical skills", Category: CategorySkills, Points: 10, Met: atLeast(technicalLowTarget, technicalCount)},
	{Name: "8+ technical skills", Category: CategorySkills, Points: 5, Met: atLeast(technicalHighTarget, technicalCount)},
	{Name: "3+ soft skills", Category: CategorySkills, Points: 5, Met: atLeast(softSkillsTarget, softCount)},

	{Name: "has a project", Category: CategoryProjects, Points: 5, Met: atLeast(projectsLowTarget, projectCount)},
	{Name: "3+ projects", Category: CategoryProjects, Points: 5, Met: atLeast(projectsHighTarget, projectCount)},

	{Name: "core sections filled", Category: CategoryStructure, Points: 5, Met: atLeast(structureTarget, coreSectionCount)},
}

// DefaultRubric returns a copy of the standard ATS rubric.
func DefaultRubric() Rubric {
	out := make(Rubric, len(defaultRubric))
	copy(out, defaultRubric)
	return out
}

// MaxPoints returns the raw sum of every rule's points.
func (r Rubric) MaxPoints() int {
	total := 0
	for _, rule := range r {
		total += rule.Points
	}
	return total
}

func hasText(field func(*types.Document) string) func(*types.Document) bool {
	return func(d *types.Document) bool {
		return field(d) != ""
	}
}

func atLeast(threshold int, count func(*types.Document) int) func(*types.Document) bool {
	return func(d *types.Document) bool {
		return count(d) >= threshold
	}
}

// summaryLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func summaryLength(d *types.Document) int {
	n := 0
	for _, r := range d.PersonalInfo.Summary {
		n += utf16.RuneLen(r)
	}
	return n
}

func experienceCount(d *types.Document) int { return len(d.WorkExperience) }
func educationCount(d *types.Document) int  { return len(d.Education) }
func technicalCount(d *types.Document) int  { return len(d.Skills.Technical) }
func softCount(d *types.Document) int       { return len(d.Skills.Soft) }
func projectCount(d *types.Document) int    { return len(d.Projects) }

// AchievementCount returns the total number of achievement slots across all
// work entries. Blank slots are counted.
func AchievementCount(d *types.Document) int {
	total := 0
	for _, exp := range d.WorkExperience {
		total += len(exp.Achievements)
	}
	return total
}

// FilledAchievementCount returns the number of non-blank achievements, for display.
func FilledAchievementCount(d *types.Document) int {
	total := 0
	for _, exp := range d.WorkExperience {
		for _, a := range exp.Achievements {
			if strings.TrimSpace(a) != "" {
				total++
			}
		}
	}
	return total
}

func coreSectionCount(d *types.Document) int {
	count := 0
	for _, filled := range []bool{
		d.PersonalInfo.FullName != "",
		len(d.WorkExperience) > 0,
		len(d.Education) > 0,
		len(d.Skills.Technical) > 0,
	} {
		if filled {
			count++
		}
	}
	return count
}
