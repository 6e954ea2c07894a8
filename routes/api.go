package routes

import (
	api_handlers "ilovehiphop.ja/handlers/api"

	"github.com/gofiber/fiber/v2"
)

func registerContentRoutes(app *fiber.App, svc Services) {
	contentHandler := api_handlers.NewContentHandler(svc.Content)
	apiGroup := app.Group("/api")

	apiGroup.Get("/events", contentHandler.ListEvents)
	apiGroup.Get("/articles", contentHandler.ListArticles)
	apiGroup.Get("/mixtapes", contentHandler.ListMixtapes)
	apiGroup.Get("/partners", contentHandler.ListPartners)
	apiGroup.Get("/specials", contentHandler.ListSpecials)
	apiGroup.Get("/coupons", contentHandler.ListCoupons)
}

// registerConversionRoutes registers the public writes. They are unauthenticated.
func registerConversionRoutes(app *fiber.App, svc Services) {
	conversionHandler := api_handlers.NewConversionHandler(svc.Membership, svc.RSVP)
	apiGroup := app.Group("/api")

	apiGroup.Post("/membership/signup", conversionHandler.MembershipSignup)
	apiGroup.Post("/rsvp", conversionHandler.CreateRSVP)
}
