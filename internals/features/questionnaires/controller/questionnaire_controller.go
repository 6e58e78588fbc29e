// file: internals/features/questionnaires/controller/questionnaire_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kuesionerku_backend/internals/features/questionnaires/dto"
	model "kuesionerku_backend/internals/features/questionnaires/model"
	responseModel "kuesionerku_backend/internals/features/responses/model"
	helper "kuesionerku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type QuestionnaireController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionnaireController(db *gorm.DB, v *validator.Validate) *QuestionnaireController {
	if v == nil {
		v = validator.New()
	}
	return &QuestionnaireController{DB: db, Validator: v}
}

// parseSavePayload: bind body + cek presence via validator + cek
// struktural per pertanyaan. Pesan kegagalan pertama dikembalikan.
func (ctl *QuestionnaireController) parseSavePayload(c *fiber.Ctx) (*dto.QuestionnaireSaveDTO, *fiber.Error) {
	var p dto.QuestionnaireSaveDTO
	if err := c.BodyParser(&p); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Title, description, and questions array are required")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Title, description, and questions array are required")
	}
	if err := p.ValidateQuestions(); err != nil {
		return nil, err
	}
	return &p, nil
}

/* ============================================
   LIST (katalog)
   GET /api/questionnaires?page=&limit=
============================================ */

func (ctl *QuestionnaireController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctl.DB.Model(&model.QuestionnaireModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var ents []model.QuestionnaireModel
	if err := ctl.DB.
		Order("questionnaire_number ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&ents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// completion count per questionnaire dalam satu query group
	// (hindari N+1 count)
	counts := map[uuid.UUID]int64{}
	if len(ents) > 0 {
		ids := make([]uuid.UUID, 0, len(ents))
		for _, e := range ents {
			ids = append(ids, e.QuestionnaireID)
		}
		type countRow struct {
			QuestionnaireID uuid.UUID `gorm:"column:questionnaire_id"`
			Total           int64     `gorm:"column:total"`
		}
		var rows []countRow
		if err := ctl.DB.Model(&responseModel.ResponseModel{}).
			Select("response_questionnaire_id AS questionnaire_id, COUNT(*) AS total").
			Where("response_questionnaire_id IN ?", ids).
			Group("response_questionnaire_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range rows {
			counts[r.QuestionnaireID] = r.Total
		}
	}

	items := make([]dto.QuestionnaireListItemDTO, 0, len(ents))
	for _, e := range ents {
		items = append(items, dto.ToListItem(e, counts[e.QuestionnaireID]))
	}

	return helper.JsonOK(c, fiber.Map{
		"questionnaires": items,
		"total":          total,
		"page":           paging.Page,
		"totalPages":     helper.TotalPages(total, paging.Limit),
	})
}

/* ============================================
   GET BY ID
   GET /api/questionnaires/:id
============================================ */

func (ctl *QuestionnaireController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
	}

	var ent model.QuestionnaireModel
	if err := ctl.DB.First(&ent, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.FromModel(ent))
}

/* ============================================
   CREATE
   POST /api/questionnaires
============================================ */

func (ctl *QuestionnaireController) Create(c *fiber.Ctx) error {
	p, ferr := ctl.parseSavePayload(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	ent := p.ToModel()

	// nomor katalog di-assign server (max+1) di dalam transaksi yang
	// sama dengan insert, supaya urutan stabil
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		if err := tx.Model(&model.QuestionnaireModel{}).
			Select("COALESCE(MAX(questionnaire_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		ent.QuestionnaireNumber = maxNumber + 1
		return tx.Create(&ent).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, dto.FromModel(ent))
}

/* ============================================
   UPDATE (full replace)
   PUT /api/questionnaires/:id
============================================ */

func (ctl *QuestionnaireController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
	}

	var ent model.QuestionnaireModel
	if err := ctl.DB.First(&ent, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p, ferr := ctl.parseSavePayload(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	// id pertanyaan dari client bersifat transient; selalu diganti
	// id baru saat replace
	ent.QuestionnaireTitle = p.Title
	ent.QuestionnaireDescription = p.Description
	ent.QuestionnaireQuestions = p.ToQuestions()

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.FromModel(ent))
}

/* ============================================
   DELETE (cascade responses → questionnaire)
   DELETE /api/questionnaires/:id
============================================ */

func (ctl *QuestionnaireController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
	}

	var ent model.QuestionnaireModel
	if err := ctl.DB.First(&ent, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("response_questionnaire_id = ?", ent.QuestionnaireID).
			Delete(&responseModel.ResponseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, "Questionnaire and associated responses deleted successfully")
}
