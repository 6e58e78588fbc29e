// file: internals/features/responses/dto/response_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kuesionerku_backend/internals/features/responses/model"
)

// =======================
// Request DTO
// =======================

type AnswerInput struct {
	QuestionID string            `json:"questionId"`
	Value      model.AnswerValue `json:"value"`
}

type ResponseSubmitDTO struct {
	QuestionnaireID string        `json:"questionnaireId"`
	Answers         []AnswerInput `json:"answers"`
	// pointer: bedakan "tidak dikirim" vs 0
	CompletionTime *int `json:"completionTime" validate:"omitempty,gte=0"`
}

// HasRequiredFields: presence check semua field wajib (answers boleh
// kosong — mismatch jumlah ditangani validasi berikutnya dengan pesan
// yang menyebut jumlah yang diharapkan).
func (p *ResponseSubmitDTO) HasRequiredFields() bool {
	return strings.TrimSpace(p.QuestionnaireID) != "" &&
		p.Answers != nil &&
		p.CompletionTime != nil
}

// ToAnswers parse question id tiap jawaban. Kalau ada id yang bukan
// uuid, kembalikan posisi 1-based jawaban yang gagal (0 = sukses).
func (p *ResponseSubmitDTO) ToAnswers() ([]model.Answer, int) {
	out := make([]model.Answer, 0, len(p.Answers))
	for i, a := range p.Answers {
		id, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return nil, i + 1
		}
		out = append(out, model.Answer{QuestionID: id, Value: a.Value})
	}
	return out, 0
}

// =======================
// Response DTO
// =======================

type ResponseDTO struct {
	ID              uuid.UUID      `json:"id"`
	QuestionnaireID uuid.UUID      `json:"questionnaireId"`
	Answers         []model.Answer `json:"answers"`
	CompletionTime  int            `json:"completionTime"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func FromModel(m model.ResponseModel) ResponseDTO {
	answers := m.ResponseAnswers
	if answers == nil {
		answers = []model.Answer{}
	}
	return ResponseDTO{
		ID:              m.ResponseID,
		QuestionnaireID: m.ResponseQuestionnaireID,
		Answers:         answers,
		CompletionTime:  m.ResponseCompletionTime,
		CreatedAt:       m.ResponseCreatedAt,
	}
}

func FromModels(ms []model.ResponseModel) []ResponseDTO {
	out := make([]ResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
