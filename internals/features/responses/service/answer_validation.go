// file: internals/features/responses/service/answer_validation.go
package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	questionnaireModel "kuesionerku_backend/internals/features/questionnaires/model"
	"kuesionerku_backend/internals/features/responses/model"
)

// ValidateAnswers memvalidasi satu set jawaban terhadap urutan
// pertanyaan questionnaire saat submit. Urut, short-circuit di
// kegagalan pertama:
//  1. jumlah jawaban == jumlah pertanyaan
//  2. question id di posisi i == id pertanyaan ke-i (jawaban dipin ke
//     urutan pertanyaan)
//  3. aturan nilai per tipe pertanyaan
//
// Nomor pertanyaan di pesan 1-based (mengikuti tampilan runner).
func ValidateAnswers(questions []questionnaireModel.Question, answers []model.Answer) *fiber.Error {
	if len(answers) != len(questions) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Expected %d answers, got %d", len(questions), len(answers)))
	}

	for i := range answers {
		answer := answers[i]
		question := questions[i]

		if answer.QuestionID != question.ID {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid question ID for answer %d", i+1))
		}

		switch question.Type {
		case questionnaireModel.QuestionTypeText:
			// nilai text dikirim sebagai array; elemen pertama wajib
			// non-empty setelah trim
			if answer.Value.IsStr ||
				len(answer.Value.List) == 0 ||
				strings.TrimSpace(answer.Value.List[0]) == "" {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Text answer required for question %d", i+1))
			}

		case questionnaireModel.QuestionTypeSingleChoice:
			if !answer.Value.IsStr || !containsOption(question.Options, answer.Value.Str) {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Invalid option for question %d", i+1))
			}

		case questionnaireModel.QuestionTypeMultipleChoice:
			if answer.Value.IsStr || len(answer.Value.List) == 0 {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("At least one option required for question %d", i+1))
			}
			for _, option := range answer.Value.List {
				if !containsOption(question.Options, option) {
					return fiber.NewError(fiber.StatusBadRequest,
						fmt.Sprintf("Invalid option for question %d", i+1))
				}
			}
		}
	}
	return nil
}

// exact string match terhadap options (tanpa normalisasi)
func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
