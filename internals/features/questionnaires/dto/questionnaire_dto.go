// file: internals/features/questionnaires/dto/questionnaire_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kuesionerku_backend/internals/features/questionnaires/model"
)

// =======================
// Request DTO
// =======================

// QuestionInput: id dari client hanya correlation key builder
// (timestamp sementara); diganti uuid baru saat persist.
type QuestionInput struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Payload untuk POST & PUT (full replace).
type QuestionnaireSaveDTO struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1"`
}

func (p *QuestionnaireSaveDTO) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
}

// ValidateQuestions menjalankan cek struktural per pertanyaan, urut,
// berhenti di kegagalan pertama. Aturan options kondisional per tipe
// tidak bisa diekspresikan lewat tag validator.
func (p *QuestionnaireSaveDTO) ValidateQuestions() *fiber.Error {
	for _, q := range p.Questions {
		if q.Type == "" || strings.TrimSpace(q.Text) == "" {
			return fiber.NewError(fiber.StatusBadRequest,
				"Each question must have a type and text")
		}
		qt := model.QuestionType(q.Type)
		if !qt.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest,
				"Invalid question type. Must be text, single_choice, or multiple_choice")
		}
		if qt.HasOptions() && len(q.Options) == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Choice questions must have at least one option")
		}
	}
	return nil
}

// ToQuestions membangun sub-dokumen dengan id baru di boundary
// aggregate. Options dibuang untuk tipe text.
func (p *QuestionnaireSaveDTO) ToQuestions() []model.Question {
	out := make([]model.Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		qt := model.QuestionType(q.Type)
		question := model.Question{
			ID:   uuid.New(),
			Type: qt,
			Text: strings.TrimSpace(q.Text),
		}
		if qt.HasOptions() {
			question.Options = q.Options
		}
		out = append(out, question)
	}
	return out
}

func (p *QuestionnaireSaveDTO) ToModel() model.QuestionnaireModel {
	return model.QuestionnaireModel{
		QuestionnaireTitle:       p.Title,
		QuestionnaireDescription: p.Description,
		QuestionnaireQuestions:   p.ToQuestions(),
	}
}

// =======================
// Response DTO
// =======================

type QuestionnaireResponseDTO struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Number      int              `json:"number"`
	Questions   []model.Question `json:"questions"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Item katalog: questionnaire + computed counts.
type QuestionnaireListItemDTO struct {
	QuestionnaireResponseDTO
	QuestionCount   int   `json:"questionCount"`
	CompletionCount int64 `json:"completionCount"`
}

func FromModel(m model.QuestionnaireModel) QuestionnaireResponseDTO {
	questions := m.QuestionnaireQuestions
	if questions == nil {
		questions = []model.Question{}
	}
	return QuestionnaireResponseDTO{
		ID:          m.QuestionnaireID,
		Title:       m.QuestionnaireTitle,
		Description: m.QuestionnaireDescription,
		Number:      m.QuestionnaireNumber,
		Questions:   questions,
		CreatedAt:   m.QuestionnaireCreatedAt,
		UpdatedAt:   m.QuestionnaireUpdatedAt,
	}
}

func ToListItem(m model.QuestionnaireModel, completionCount int64) QuestionnaireListItemDTO {
	return QuestionnaireListItemDTO{
		QuestionnaireResponseDTO: FromModel(m),
		QuestionCount:            len(m.QuestionnaireQuestions),
		CompletionCount:          completionCount,
	}
}
