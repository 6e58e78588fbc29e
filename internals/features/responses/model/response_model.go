// file: internals/features/responses/model/response_model.go
package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnswerValue adalah nilai jawaban "mixed": string untuk single_choice,
// array of string untuk text & multiple_choice (mengikuti shape payload
// klien runner).
type AnswerValue struct {
	Str   string
	List  []string
	IsStr bool
}

func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Str = s
		v.IsStr = true
		v.List = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.New("answer value must be a string or an array of strings")
	}
	v.List = list
	v.IsStr = false
	v.Str = ""
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsStr {
		return json.Marshal(v.Str)
	}
	if v.List == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(v.List)
}

// Answer dipin ke urutan pertanyaan saat submit: posisi ke-i harus
// merujuk question ke-i pada questionnaire induk.
type Answer struct {
	QuestionID uuid.UUID   `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

// ResponseModel immutable setelah dibuat; hanya hilang lewat cascade
// delete questionnaire induknya.
type ResponseModel struct {
	ResponseID              uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:response_id" json:"id"`
	ResponseQuestionnaireID uuid.UUID                   `gorm:"type:uuid;not null;index;column:response_questionnaire_id" json:"questionnaireId"`
	ResponseAnswers         datatypes.JSONSlice[Answer] `gorm:"type:jsonb;not null;column:response_answers" json:"answers"`
	ResponseCompletionTime  int                         `gorm:"type:integer;not null;column:response_completion_time" json:"completionTime"`
	ResponseCreatedAt       time.Time                   `gorm:"type:timestamptz;not null;autoCreateTime;column:response_created_at" json:"createdAt"`
}

func (ResponseModel) TableName() string { return "responses" }

// FindAnswer mencari jawaban untuk question id tertentu (nil kalau
// response historis tidak punya — mis. pertanyaan ditambah belakangan).
func (m *ResponseModel) FindAnswer(questionID uuid.UUID) *Answer {
	for i := range m.ResponseAnswers {
		if m.ResponseAnswers[i].QuestionID == questionID {
			return &m.ResponseAnswers[i]
		}
	}
	return nil
}
