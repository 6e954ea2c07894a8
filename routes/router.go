package routes

import (
	"errors"
	"net/http"

	"ilovehiphop.ja/configs/configsapp"
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/repositories"
	"ilovehiphop.ja/services"
	"ilovehiphop.ja/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// Services groups everything the handlers depend on.
type Services struct {
	Content    services.IContentService
	Membership services.IMembershipService
	RSVP       services.IRSVPService
	Diagnostic services.IDiagnosticService
}

// NewServices wires the services on repo, which is nil when no store is connected.
func NewServices(cfg *configsapp.Config, repo repositories.IDocumentRepository) Services {
	return Services{
		Content:    services.NewContentService(repo),
		Membership: services.NewMembershipService(repo),
		RSVP:       services.NewRSVPService(repo),
		Diagnostic: services.NewDiagnosticService(repo, cfg.DatabaseURLSet(), cfg.DatabaseName),
	}
}

// NewApp builds the Fiber application with its views, middleware and routes.
func NewApp(svc Services) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		AppName:      configsapp.AppName,
		Views:        engine,
		ErrorHandler: errorHandler,
	})
	SetupRoutes(app, svc)
	return app
}

// SetupRoutes registers the middleware and every route.
func SetupRoutes(app *fiber.App, svc Services) {
	// --- Global middleware ---
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		// Reflect every origin; a literal "*" cannot be combined with credentials.
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))

	// --- Route groups ---
	registerSystemRoutes(app, svc)
	registerContentRoutes(app, svc)
	registerConversionRoutes(app, svc)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "text/html":
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Page Not Found",
			"Message": "The page you are looking for does not exist.",
			"AppName": configsapp.AppName,
		}, "layouts/error_layout")
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not Found"})
	}
}

const maxErrorDetailLength = 200

// errorHandler answers errors that escape the handlers in the same JSON shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"detail": services.Truncate(err.Error(), maxErrorDetailLength)})
}
