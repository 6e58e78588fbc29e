package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuesionerku_backend/internals/features/questionnaires/model"
)

func savePayload() QuestionnaireSaveDTO {
	return QuestionnaireSaveDTO{
		Title:       "Customer survey",
		Description: "Quarterly feedback",
		Questions: []QuestionInput{
			{ID: "1717000000001", Type: "text", Text: "Any comments?"},
			{ID: "1717000000002", Type: "single_choice", Text: "Rating?", Options: []string{"Good", "Bad"}},
			{ID: "1717000000003", Type: "multiple_choice", Text: "Channels?", Options: []string{"Email", "Phone"}},
		},
	}
}

func TestValidateQuestions_OK(t *testing.T) {
	p := savePayload()
	assert.Nil(t, p.ValidateQuestions())
}

func TestValidateQuestions_FirstFailureWins(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*QuestionnaireSaveDTO)
		message string
	}{
		{
			"missing type",
			func(p *QuestionnaireSaveDTO) { p.Questions[0].Type = "" },
			"Each question must have a type and text",
		},
		{
			"blank text",
			func(p *QuestionnaireSaveDTO) { p.Questions[1].Text = "  " },
			"Each question must have a type and text",
		},
		{
			"unknown type",
			func(p *QuestionnaireSaveDTO) { p.Questions[0].Type = "rating" },
			"Invalid question type. Must be text, single_choice, or multiple_choice",
		},
		{
			"choice without options",
			func(p *QuestionnaireSaveDTO) { p.Questions[1].Options = nil },
			"Choice questions must have at least one option",
		},
		{
			"multiple choice with empty options",
			func(p *QuestionnaireSaveDTO) { p.Questions[2].Options = []string{} },
			"Choice questions must have at least one option",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := savePayload()
			tc.mutate(&p)
			err := p.ValidateQuestions()
			require.NotNil(t, err)
			assert.Equal(t, 400, err.Code)
			assert.Equal(t, tc.message, err.Message)
		})
	}
}

func TestToQuestions_FreshIDsAndOrder(t *testing.T) {
	p := savePayload()
	questions := p.ToQuestions()

	require.Len(t, questions, len(p.Questions))
	seen := map[uuid.UUID]bool{}
	for i, q := range questions {
		// urutan submit dipertahankan
		assert.Equal(t, p.Questions[i].Text, q.Text)
		assert.Equal(t, model.QuestionType(p.Questions[i].Type), q.Type)
		// id client transient, selalu diganti uuid baru yang unik
		assert.NotEqual(t, uuid.Nil, q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}

	// options dibuang untuk tipe text, dipertahankan untuk choice
	assert.Nil(t, questions[0].Options)
	assert.Equal(t, []string{"Good", "Bad"}, questions[1].Options)
	assert.Equal(t, []string{"Email", "Phone"}, questions[2].Options)
}

func TestToModel_KeepsQuestionCount(t *testing.T) {
	p := savePayload()
	ent := p.ToModel()

	assert.Equal(t, p.Title, ent.QuestionnaireTitle)
	assert.Equal(t, p.Description, ent.QuestionnaireDescription)
	assert.Len(t, ent.QuestionnaireQuestions, len(p.Questions))
}

func TestFromModel_EmptyQuestionsNotNull(t *testing.T) {
	resp := FromModel(model.QuestionnaireModel{QuestionnaireID: uuid.New()})
	assert.NotNil(t, resp.Questions)
	assert.Len(t, resp.Questions, 0)
}
