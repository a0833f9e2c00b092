//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalField_Set(t *testing.T) {
	tests := []struct {
		field PersonalField
		check func(PersonalInfo) string
	}{
		{PersonalFullName, func(p PersonalInfo) string { return p.FullName }},
		{PersonalEmail, func(p PersonalInfo) string { return p.Email }},
		{PersonalPhone, func(p PersonalInfo) string { return p.Phone }},
		{PersonalLocation, func(p PersonalInfo) string { return p.Location }},
		{PersonalLinkedIn, func(p PersonalInfo) string { return p.LinkedIn }},
		{PersonalGitHub, func(p PersonalInfo) string { return p.GitHub }},
		{PersonalSummary, func(p PersonalInfo) string { return p.Summary }},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			original := PersonalInfo{}
			updated, err := tt.field.Set(original, "value")
			require.NoError(t, err)
			assert.Equal(t, "value", tt.check(updated))
			assert.Equal(t, PersonalInfo{}, original)
		})
	}
}

func TestFieldSet_UnknownField(t *testing.T) {
	_, err := PersonalField("fullname").Set(PersonalInfo{}, "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = WorkField("current").Set(WorkExperience{}, "true")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = EducationField("id").Set(Education{}, "edu-2")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = ProjectField("technologies").Set(Project{}, "Go")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = CertificationField("url").Set(Certification{}, "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWorkField_Set(t *testing.T) {
	entry := NewWorkExperience("exp-1")

	entry, err := WorkJobTitle.Set(entry, "Engineer")
	require.NoError(t, err)
	entry, err = WorkCompany.Set(entry, "Acme")
	require.NoError(t, err)
	entry, err = WorkStartDate.Set(entry, "2021-03")
	require.NoError(t, err)
	entry, err = WorkEndDate.Set(entry, "2024-01")
	require.NoError(t, err)

	assert.Equal(t, WorkExperience{
		ID:           "exp-1",
		JobTitle:     "Engineer",
		Company:      "Acme",
		StartDate:    "2021-03",
		EndDate:      "2024-01",
		Achievements: []string{""},
	}, entry)
}

func TestProjectAndCertificationFields(t *testing.T) {
	project, err := ProjectLink.Set(NewProject("proj-1"), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", project.Link)

	cert, err := CertificationIssuer.Set(NewCertification("cert-1"), "CNCF")
	require.NoError(t, err)
	assert.Equal(t, "CNCF", cert.Issuer)

	edu, err := EducationGPA.Set(NewEducation("edu-1"), "3.9")
	require.NoError(t, err)
	assert.Equal(t, "3.9", edu.GPA)
}

func TestFieldUnmarshalText(t *testing.T) {
	var payload struct {
		Personal PersonalField      `json:"personal"`
		Work     WorkField          `json:"work"`
		Edu      EducationField     `json:"edu"`
		Project  ProjectField       `json:"project"`
		Cert     CertificationField `json:"cert"`
		Skill    SkillKind          `json:"skill"`
	}

	valid := `{"personal":"summary","work":"jobTitle","edu":"school","project":"description","cert":"date","skill":"soft"}`
	require.NoError(t, json.Unmarshal([]byte(valid), &payload))
	assert.Equal(t, PersonalSummary, payload.Personal)
	assert.Equal(t, WorkJobTitle, payload.Work)
	assert.Equal(t, EducationSchool, payload.Edu)
	assert.Equal(t, ProjectDescription, payload.Project)
	assert.Equal(t, CertificationDate, payload.Cert)
	assert.Equal(t, SkillSoft, payload.Skill)

	err := json.Unmarshal([]byte(`{"work":"jobtitle"}`), &payload)
	assert.ErrorIs(t, err, ErrUnknownField)

	err = json.Unmarshal([]byte(`{"skill":"hard"}`), &payload)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSkillKind_ListAndWith(t *testing.T) {
	skills := SkillSet{Technical: []string{"Go"}, Soft: []string{"Mentoring"}}

	list, err := SkillTechnical.List(skills)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, list)

	updated, err := SkillSoft.With(skills, []string{"Mentoring", "Writing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mentoring", "Writing"}, updated.Soft)
	assert.Equal(t, []string{"Mentoring"}, skills.Soft)

	_, err = SkillKind("other").With(skills, nil)
	assert.ErrorIs(t, err, ErrUnknownField)
}
