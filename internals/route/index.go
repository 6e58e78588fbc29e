// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionnaireRoute "kuesionerku_backend/internals/features/questionnaires/route"
	responseRoute "kuesionerku_backend/internals/features/responses/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// liveness untuk monitoring & klien
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is running!"})
	})

	api := app.Group("/api")

	log.Println("[INFO] Setting up QuestionnaireRoutes...")
	questionnaireRoute.QuestionnaireRoutes(api, db)

	log.Println("[INFO] Setting up ResponseRoutes...")
	responseRoute.ResponseRoutes(api, db)
}
