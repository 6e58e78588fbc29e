// file: internals/features/responses/controller/response_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionnaireModel "kuesionerku_backend/internals/features/questionnaires/model"
	dto "kuesionerku_backend/internals/features/responses/dto"
	model "kuesionerku_backend/internals/features/responses/model"
	service "kuesionerku_backend/internals/features/responses/service"
	helper "kuesionerku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type ResponseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewResponseController(db *gorm.DB, v *validator.Validate) *ResponseController {
	if v == nil {
		v = validator.New()
	}
	return &ResponseController{DB: db, Validator: v}
}

func (ctl *ResponseController) findQuestionnaire(id uuid.UUID) (*questionnaireModel.QuestionnaireModel, *fiber.Error) {
	var ent questionnaireModel.QuestionnaireModel
	if err := ctl.DB.First(&ent, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &ent, nil
}

/* ============================================
   SUBMIT
   POST /api/responses
============================================ */

func (ctl *ResponseController) Submit(c *fiber.Ctx) error {
	var p dto.ResponseSubmitDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Questionnaire ID, answers array, and completion time are required")
	}
	if !p.HasRequiredFields() {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Questionnaire ID, answers array, and completion time are required")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Completion time must be a non-negative number")
	}

	questionnaireID, err := uuid.Parse(p.QuestionnaireID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
	}

	questionnaire, ferr := ctl.findQuestionnaire(questionnaireID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	answers, badPos := p.ToAnswers()
	if badPos > 0 {
		// id non-uuid tidak mungkin match question manapun
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid question ID for answer %d", badPos))
	}

	if verr := service.ValidateAnswers(questionnaire.QuestionnaireQuestions, answers); verr != nil {
		return helper.JsonError(c, verr.Code, verr.Message)
	}

	ent := model.ResponseModel{
		ResponseQuestionnaireID: questionnaire.QuestionnaireID,
		ResponseAnswers:         answers,
		ResponseCompletionTime:  *p.CompletionTime,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, dto.FromModel(ent))
}

/* ============================================
   LIST BY QUESTIONNAIRE (newest first)
   GET /api/responses/questionnaire/:questionnaireId
============================================ */

func (ctl *ResponseController) ListByQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	var ents []model.ResponseModel
	if err := ctl.DB.
		Where("response_questionnaire_id = ?", questionnaireID).
		Order("response_created_at DESC").
		Find(&ents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.FromModels(ents))
}

/* ============================================
   STATS
   GET /api/responses/stats/:questionnaireId
============================================ */

func (ctl *ResponseController) Stats(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
	}

	questionnaire, ferr := ctl.findQuestionnaire(questionnaireID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var ents []model.ResponseModel
	if err := ctl.DB.
		Where("response_questionnaire_id = ?", questionnaireID).
		Find(&ents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, service.BuildStats(questionnaire.QuestionnaireQuestions, ents))
}
