package document

import (
	"testing"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction_Variants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Action
	}{
		{"set personal", `{"type":"set_personal","field":"email","value":"x@y.z"}`, SetPersonal{Field: types.PersonalEmail, Value: "x@y.z"}},
		{"add entry", `{"type":"add_entry","section":"projects"}`, AddEntry{Section: types.SectionProjects}},
		{"remove entry", `{"type":"remove_entry","section":"education","id":"edu-1"}`, RemoveEntry{Section: types.SectionEducation, ID: "edu-1"}},
		{"update work", `{"type":"update_work","id":"exp-1","field":"company","value":"Acme"}`, UpdateWork{ID: "exp-1", Field: types.WorkCompany, Value: "Acme"}},
		{"set current", `{"type":"set_current","id":"exp-1","current":true}`, SetCurrent{ID: "exp-1", Current: true}},
		{"add achievement", `{"type":"add_achievement","id":"exp-1"}`, AddAchievement{ID: "exp-1"}},
		{"set achievement", `{"type":"set_achievement","id":"exp-1","index":2,"value":"Won"}`, SetAchievement{ID: "exp-1", Index: 2, Value: "Won"}},
		{"remove achievement", `{"type":"remove_achievement","id":"exp-1","index":1}`, RemoveAchievement{ID: "exp-1", Index: 1}},
		{"update education", `{"type":"update_education","id":"edu-1","field":"gpa","value":"4.0"}`, UpdateEducation{ID: "edu-1", Field: types.EducationGPA, Value: "4.0"}},
		{"update project", `{"type":"update_project","id":"proj-1","field":"link","value":"https://x"}`, UpdateProject{ID: "proj-1", Field: types.ProjectLink, Value: "https://x"}},
		{"add technology", `{"type":"add_technology","id":"proj-1","value":"Go"}`, AddTechnology{ID: "proj-1", Value: "Go"}},
		{"remove technology", `{"type":"remove_technology","id":"proj-1","index":0}`, RemoveTechnology{ID: "proj-1", Index: 0}},
		{"update certification", `{"type":"update_certification","id":"cert-1","field":"issuer","value":"AWS"}`, UpdateCertification{ID: "cert-1", Field: types.CertificationIssuer, Value: "AWS"}},
		{"add skill", `{"type":"add_skill","kind":"technical","value":"Go"}`, AddSkill{Kind: types.SkillTechnical, Value: "Go"}},
		{"remove skill", `{"type":"remove_skill","kind":"soft","index":3}`, RemoveSkill{Kind: types.SkillSoft, Index: 3}},
		{"reset", `{"type":"reset"}`, Reset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := DecodeAction([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestDecodeAction_ReplaceSection(t *testing.T) {
	input := `{"type":"replace_section","section":"skills","data":{"technical":["Go","SQL"],"soft":["Writing"]}}`

	action, err := DecodeAction([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, ReplaceSection{
		Section: types.SectionSkills,
		Value:   types.SkillSet{Technical: []string{"Go", "SQL"}, Soft: []string{"Writing"}},
	}, action)
}

func TestDecodeAction_ReplaceCollection(t *testing.T) {
	input := `{"type":"replace_section","section":"experience","data":[
		{"id":"exp-1","jobTitle":"SRE","company":"Acme","startDate":"2020-01","endDate":"","current":true,"achievements":["On-call lead"]}
	]}`

	action, err := DecodeAction([]byte(input))
	require.NoError(t, err)

	replace, ok := action.(ReplaceSection)
	require.True(t, ok)
	entries, ok := replace.Value.([]types.WorkExperience)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "SRE", entries[0].JobTitle)
	assert.True(t, entries[0].Current)
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"malformed json", `{"type":`, ErrInvalidAction},
		{"missing type", `{"section":"skills"}`, ErrInvalidAction},
		{"unknown type", `{"type":"rename_section"}`, ErrInvalidAction},
		{"negative index", `{"type":"remove_skill","kind":"soft","index":-1}`, ErrInvalidAction},
		{"unknown section", `{"type":"add_entry","section":"hobbies"}`, types.ErrUnknownSection},
		{"unknown field", `{"type":"update_work","id":"exp-1","field":"title","value":"x"}`, types.ErrUnknownField},
		{"unknown skill kind", `{"type":"add_skill","kind":"hard","value":"x"}`, types.ErrUnknownField},
		{"missing id", `{"type":"add_achievement"}`, ErrInvalidAction},
		{"missing id on update", `{"type":"update_education","field":"school","value":"x"}`, ErrInvalidAction},
		{"replace without data", `{"type":"replace_section","section":"skills"}`, ErrInvalidAction},
		{"replace with unknown key", `{"type":"replace_section","section":"personal","data":{"fullname":"x"}}`, ErrInvalidAction},
		{"replace with miscased keys", `{"type":"replace_section","section":"personal","data":{"FULLNAME":"Ann","EMAIL":"a@b"}}`, ErrInvalidAction},
		{"replace with miscased entry key", `{"type":"replace_section","section":"projects","data":[{"id":"proj-1","Technologies":["Go"]}]}`, ErrInvalidAction},
		{"replace with wrong shape", `{"type":"replace_section","section":"education","data":{"id":"edu-1"}}`, ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction([]byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEnvelope_ActionFromYAMLShapedData(t *testing.T) {
	env := Envelope{
		Type:    TypeReplaceSection,
		Section: "certifications",
		Data: []any{
			map[string]any{"id": "cert-1", "name": "CKA", "issuer": "CNCF", "date": "2024-02"},
		},
	}

	action, err := env.Action()
	require.NoError(t, err)

	doc, err := Reduce(types.NewDocument(), action)
	require.NoError(t, err)
	assert.Equal(t, []types.Certification{{ID: "cert-1", Name: "CKA", Issuer: "CNCF", Date: "2024-02"}}, doc.Certifications)
}

func TestDecodeDocumentJSON(t *testing.T) {
	doc, err := DecodeDocumentJSON([]byte(`{
		"personalInfo": {"fullName": "Radia Perlman"},
		"projects": [{"id": "proj-1", "name": "STP"}],
		"nextId": 1
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Radia Perlman", doc.PersonalInfo.FullName)
	assert.Equal(t, []string{}, doc.Projects[0].Technologies)
	assert.NotNil(t, doc.WorkExperience)
	assert.Equal(t, uint64(1), doc.NextID)
}

func TestDecodeDocumentJSON_Errors(t *testing.T) {
	_, err := DecodeDocumentJSON([]byte(`{"hobbies": []}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = DecodeDocumentJSON([]byte(`{"personalInfo": {"FullName": "Ann"}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
	var schemaErr *schemas.ValidationError
	assert.ErrorAs(t, err, &schemaErr)

	_, err = DecodeDocumentJSON([]byte(`{"PersonalInfo": {"fullName": "Ann"}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = DecodeDocumentJSON([]byte(`{"personalInfo": `))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = DecodeDocumentJSON([]byte(`{"education": [{"id": "edu-1"}, {"id": "edu-1"}]}`))
	assert.ErrorIs(t, err, collection.ErrDuplicateID)
	assert.Contains(t, err.Error(), "education")
}

func TestDecodeSectionJSON_KeysAreCaseSensitive(t *testing.T) {
	_, err := DecodeSectionJSON(types.SectionSkills, []byte(`{"Technical":["Go"]}`))

	assert.ErrorIs(t, err, ErrInvalidAction)
	var schemaErr *schemas.ValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "Technical")

	value, err := DecodeSectionJSON(types.SectionSkills, []byte(`{"technical":["Go"]}`))
	require.NoError(t, err)
	assert.Equal(t, types.SkillSet{Technical: []string{"Go"}}, value)
}

func TestDecodeSectionJSON_UnknownSection(t *testing.T) {
	_, err := DecodeSectionJSON("awards", []byte(`[]`))
	assert.ErrorIs(t, err, types.ErrUnknownSection)
}
