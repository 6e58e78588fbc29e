// file: internals/features/responses/service/stats_service.go
package service

import (
	"strings"

	"github.com/google/uuid"

	questionnaireModel "kuesionerku_backend/internals/features/questionnaires/model"
	"kuesionerku_backend/internals/features/responses/model"
)

type QuestionStatDTO struct {
	QuestionID         uuid.UUID                       `json:"questionId"`
	QuestionText       string                          `json:"questionText"`
	Type               questionnaireModel.QuestionType `json:"type"`
	AnswerDistribution map[string]int                  `json:"answerDistribution"`
}

type StatsDTO struct {
	TotalResponses        int               `json:"totalResponses"`
	AverageCompletionTime float64           `json:"averageCompletionTime"`
	QuestionStats         []QuestionStatDTO `json:"questionStats"`
}

// BuildStats mengagregasi seluruh response untuk satu questionnaire:
// total, rata-rata completion time (0 kalau belum ada response), dan
// distribusi frekuensi jawaban per pertanyaan (urutan questionnaire).
// Jawaban dicari per question id; response historis tanpa jawaban
// untuk sebuah pertanyaan di-exclude, bukan dihitung nol.
func BuildStats(questions []questionnaireModel.Question, responses []model.ResponseModel) StatsDTO {
	stats := StatsDTO{
		TotalResponses: len(responses),
		QuestionStats:  make([]QuestionStatDTO, 0, len(questions)),
	}

	if len(responses) > 0 {
		sum := 0
		for _, r := range responses {
			sum += r.ResponseCompletionTime
		}
		stats.AverageCompletionTime = float64(sum) / float64(len(responses))
	}

	for _, question := range questions {
		distribution := map[string]int{}
		for _, r := range responses {
			answer := r.FindAnswer(question.ID)
			if answer == nil {
				continue
			}
			if question.Type == questionnaireModel.QuestionTypeMultipleChoice {
				// tiap opsi terpilih menambah bucket-nya sendiri
				for _, option := range answer.Value.List {
					distribution[option]++
				}
			} else {
				distribution[bucketKey(answer.Value)]++
			}
		}
		stats.QuestionStats = append(stats.QuestionStats, QuestionStatDTO{
			QuestionID:         question.ID,
			QuestionText:       question.Text,
			Type:               question.Type,
			AnswerDistribution: distribution,
		})
	}
	return stats
}

// bucketKey: seluruh nilai jadi satu kunci bucket. Nilai text dikirim
// sebagai array, di-join koma (jawaban satu elemen → elemen itu
// sendiri).
func bucketKey(v model.AnswerValue) string {
	if v.IsStr {
		return v.Str
	}
	return strings.Join(v.List, ",")
}
