//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_NoAbsentFields(t *testing.T) {
	doc := NewDocument()

	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Contains(t, string(jsonBytes), `"workExperience":[]`)
	assert.Contains(t, string(jsonBytes), `"education":[]`)
	assert.Contains(t, string(jsonBytes), `"skills":{"technical":[],"soft":[]}`)
	assert.Contains(t, string(jsonBytes), `"projects":[]`)
	assert.Contains(t, string(jsonBytes), `"certifications":[]`)
	assert.Contains(t, string(jsonBytes), `"fullName":""`)
	assert.NotContains(t, string(jsonBytes), "null")
}

func TestDocument_JSONUnmarshaling(t *testing.T) {
	input := `{
		"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
		"workExperience": [
			{"id": "exp-1", "jobTitle": "Analyst", "company": "Engines Ltd", "current": true,
			 "endDate": "1843-09", "achievements": ["Wrote the first program", ""]}
		],
		"skills": {"technical": ["Mathematics"]},
		"projects": [{"id": "proj-1", "name": "Notes"}]
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))
	doc = Normalize(doc)

	assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.FullName)
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, "", doc.WorkExperience[0].EffectiveEndDate())
	assert.Equal(t, []string{"Wrote the first program", ""}, doc.WorkExperience[0].Achievements)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Certifications)
	assert.Equal(t, []string{}, doc.Skills.Soft)
	assert.Equal(t, []string{}, doc.Projects[0].Technologies)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	entries := []WorkExperience{{ID: "exp-1"}}
	doc := Document{WorkExperience: entries}

	out := Normalize(doc)

	assert.Nil(t, entries[0].Achievements)
	assert.Equal(t, []string{}, out.WorkExperience[0].Achievements)
}

func TestNormalize_KeepsEmptyAchievementList(t *testing.T) {
	doc := Normalize(Document{WorkExperience: []WorkExperience{{ID: "exp-1", Achievements: []string{}}}})
	assert.Empty(t, doc.WorkExperience[0].Achievements)
}

func TestEffectiveEndDate(t *testing.T) {
	past := WorkExperience{EndDate: "2020-01"}
	assert.Equal(t, "2020-01", past.EffectiveEndDate())

	past.Current = true
	assert.Equal(t, "", past.EffectiveEndDate())
}

func TestParseSectionKey(t *testing.T) {
	for _, key := range AllSections() {
		parsed, err := ParseSectionKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}

	_, err := ParseSectionKey("hobbies")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSectionKey_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Section SectionKey `json:"section"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"section":"education"}`), &payload))
	assert.Equal(t, SectionEducation, payload.Section)

	err := json.Unmarshal([]byte(`{"section":"educaton"}`), &payload)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSectionKey_IsCollection(t *testing.T) {
	assert.False(t, SectionPersonal.IsCollection())
	assert.False(t, SectionSkills.IsCollection())
	assert.True(t, SectionExperience.IsCollection())
	assert.True(t, SectionEducation.IsCollection())
	assert.True(t, SectionProjects.IsCollection())
	assert.True(t, SectionCertifications.IsCollection())
}

func TestNewEntries_Defaults(t *testing.T) {
	assert.Equal(t, WorkExperience{ID: "exp-1", Achievements: []string{""}}, NewWorkExperience("exp-1"))
	assert.Equal(t, Education{ID: "edu-1"}, NewEducation("edu-1"))
	assert.Equal(t, Project{ID: "proj-1", Technologies: []string{}}, NewProject("proj-1"))
	assert.Equal(t, Certification{ID: "cert-1"}, NewCertification("cert-1"))
}

func TestNormalize_ReservesExistingIDs(t *testing.T) {
	doc := Normalize(Document{
		WorkExperience: []WorkExperience{{ID: "exp-4"}},
		Education:      []Education{{ID: "edu-12"}, {ID: "edu-x"}},
		Projects:       []Project{{ID: "exp-40"}},
		Certifications: []Certification{{ID: "cert-7"}},
	})

	// exp-40 sits in projects, so it does not count as a project sequence number
	assert.Equal(t, uint64(12), doc.NextID)
}

func TestReserveIDs_KeepsHigherCounter(t *testing.T) {
	doc := ReserveIDs(Document{NextID: 20, Projects: []Project{{ID: "proj-3"}}})
	assert.Equal(t, uint64(20), doc.NextID)
}

func TestDocument_Clone(t *testing.T) {
	doc := Document{
		WorkExperience: []WorkExperience{{ID: "exp-1", Achievements: []string{"a"}}},
		Skills:         SkillSet{Technical: []string{"Go"}},
		Projects:       []Project{{ID: "proj-2", Technologies: []string{"Go"}}},
	}

	out := doc.Clone()
	out.WorkExperience[0].Achievements[0] = "b"
	out.Skills.Technical[0] = "Rust"
	out.Projects[0].Technologies[0] = "Rust"
	out.Projects[0].Name = "renamed"

	assert.Equal(t, []string{"a"}, doc.WorkExperience[0].Achievements)
	assert.Equal(t, []string{"Go"}, doc.Skills.Technical)
	assert.Equal(t, []string{"Go"}, doc.Projects[0].Technologies)
	assert.Empty(t, doc.Projects[0].Name)
	assert.Nil(t, out.Education)
}
