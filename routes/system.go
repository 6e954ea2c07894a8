package routes

import (
	system_handlers "ilovehiphop.ja/handlers/system"

	"github.com/gofiber/fiber/v2"
)

func registerSystemRoutes(app *fiber.App, svc Services) {
	systemHandler := system_handlers.NewSystemHandler(svc.Diagnostic)

	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.Diagnostics)
	app.Get("/schema", systemHandler.Schema)
}
