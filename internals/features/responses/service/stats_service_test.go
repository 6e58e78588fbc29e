package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionnaireModel "kuesionerku_backend/internals/features/questionnaires/model"
	"kuesionerku_backend/internals/features/responses/model"
)

func TestBuildStats_NoResponses(t *testing.T) {
	questions := fixtureQuestions()

	stats := BuildStats(questions, nil)

	assert.Equal(t, 0, stats.TotalResponses)
	assert.Equal(t, float64(0), stats.AverageCompletionTime)
	require.Len(t, stats.QuestionStats, len(questions))
	for i, qs := range stats.QuestionStats {
		assert.Equal(t, questions[i].ID, qs.QuestionID)
		assert.Equal(t, questions[i].Text, qs.QuestionText)
		assert.Empty(t, qs.AnswerDistribution)
		assert.NotNil(t, qs.AnswerDistribution) // harus {} di JSON, bukan null
	}
}

func TestBuildStats_AverageAndDistribution(t *testing.T) {
	questions := fixtureQuestions()

	responses := []model.ResponseModel{
		{
			ResponseCompletionTime: 10,
			ResponseAnswers: []model.Answer{
				{QuestionID: questions[0].ID, Value: model.AnswerValue{List: []string{"hello"}}},
				{QuestionID: questions[1].ID, Value: model.AnswerValue{Str: "Green", IsStr: true}},
				{QuestionID: questions[2].ID, Value: model.AnswerValue{List: []string{"Apple", "Banana"}}},
			},
		},
		{
			ResponseCompletionTime: 14,
			ResponseAnswers: []model.Answer{
				{QuestionID: questions[0].ID, Value: model.AnswerValue{List: []string{"hello"}}},
				{QuestionID: questions[1].ID, Value: model.AnswerValue{Str: "Blue", IsStr: true}},
				{QuestionID: questions[2].ID, Value: model.AnswerValue{List: []string{"Apple"}}},
			},
		},
	}

	stats := BuildStats(questions, responses)

	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, float64(12), stats.AverageCompletionTime)
	require.Len(t, stats.QuestionStats, 3)

	assert.Equal(t, map[string]int{"hello": 2}, stats.QuestionStats[0].AnswerDistribution)
	assert.Equal(t, map[string]int{"Green": 1, "Blue": 1}, stats.QuestionStats[1].AnswerDistribution)
	// multiple_choice: tiap opsi terpilih bucket sendiri
	assert.Equal(t, map[string]int{"Apple": 2, "Banana": 1}, stats.QuestionStats[2].AnswerDistribution)
}

func TestBuildStats_AbsentAnswerExcluded(t *testing.T) {
	questions := fixtureQuestions()

	// response historis: tidak punya jawaban untuk pertanyaan ke-2
	// (pertanyaan ditambahkan setelah response dibuat)
	responses := []model.ResponseModel{
		{
			ResponseCompletionTime: 8,
			ResponseAnswers: []model.Answer{
				{QuestionID: questions[0].ID, Value: model.AnswerValue{List: []string{"old answer"}}},
				{QuestionID: uuid.New(), Value: model.AnswerValue{Str: "Red", IsStr: true}},
			},
		},
	}

	stats := BuildStats(questions, responses)

	assert.Equal(t, map[string]int{"old answer": 1}, stats.QuestionStats[0].AnswerDistribution)
	assert.Empty(t, stats.QuestionStats[1].AnswerDistribution)
	assert.Empty(t, stats.QuestionStats[2].AnswerDistribution)
}

func TestBuildStats_MultiElementTextJoined(t *testing.T) {
	questions := []questionnaireModel.Question{
		{ID: uuid.New(), Type: questionnaireModel.QuestionTypeText, Text: "Q"},
	}
	responses := []model.ResponseModel{
		{ResponseAnswers: []model.Answer{
			{QuestionID: questions[0].ID, Value: model.AnswerValue{List: []string{"a", "b"}}},
		}},
	}

	stats := BuildStats(questions, responses)
	assert.Equal(t, map[string]int{"a,b": 1}, stats.QuestionStats[0].AnswerDistribution)
}
