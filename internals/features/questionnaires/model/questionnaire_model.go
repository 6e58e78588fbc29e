// file: internals/features/questionnaires/model/questionnaire_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeSingleChoice   QuestionType = "single_choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// IsValid: enum membership untuk tipe pertanyaan.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeSingleChoice, QuestionTypeMultipleChoice:
		return true
	}
	return false
}

// HasOptions: tipe pilihan wajib punya options.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoice
}

// Question adalah sub-dokumen milik Questionnaire (embedded, tanpa
// lifecycle sendiri). ID dibangkitkan di boundary aggregate saat simpan.
type Question struct {
	ID      uuid.UUID    `json:"id"`
	Type    QuestionType `json:"type"`
	Text    string       `json:"text"`
	Options []string     `json:"options,omitempty"`
}

type QuestionnaireModel struct {
	// ============ PK ============
	QuestionnaireID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:questionnaire_id" json:"id"`

	// ============ Identitas ============
	QuestionnaireTitle       string `gorm:"type:text;not null;column:questionnaire_title" json:"title"`
	QuestionnaireDescription string `gorm:"type:text;not null;column:questionnaire_description" json:"description"`

	// Urutan katalog (ascending); di-assign server saat create
	QuestionnaireNumber int `gorm:"type:integer;not null;default:0;index;column:questionnaire_number" json:"number"`

	// Sub-dokumen questions (jsonb, ordered)
	QuestionnaireQuestions datatypes.JSONSlice[Question] `gorm:"type:jsonb;not null;column:questionnaire_questions" json:"questions"`

	// ============ Audit ============
	QuestionnaireCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:questionnaire_created_at" json:"createdAt"`
	QuestionnaireUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:questionnaire_updated_at" json:"updatedAt"`
}

func (QuestionnaireModel) TableName() string { return "questionnaires" }

// ============ Hooks: light normalization ============
func (m *QuestionnaireModel) BeforeSave(tx *gorm.DB) error {
	m.QuestionnaireTitle = strings.TrimSpace(m.QuestionnaireTitle)
	m.QuestionnaireDescription = strings.TrimSpace(m.QuestionnaireDescription)
	return nil
}