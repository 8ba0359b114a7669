package routes

import (
	site_handlers "zanaat.studio/handlers/site"
	"zanaat.studio/services"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes public site rotalarını tanımlar.
func registerSiteRoutes(app *fiber.App, content services.IContentService, assistant services.IAssistantService) {
	siteHandler := site_handlers.NewSiteHandler(content, assistant)

	app.Get("/", siteHandler.Home)     // GET /
	app.Post("/chat", siteHandler.Chat) // POST /chat (sohbet bileşeni)
}
