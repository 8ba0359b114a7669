package routes

import (
	admin_handlers "zanaat.studio/handlers/admin"
	"zanaat.studio/middlewares"
	"zanaat.studio/services"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes /admin altındaki düzenleme rotalarını tanımlar.
// Toggle herkese açıktır (UI anahtarı); diğer uçlar admin modu açıkken çalışır.
func registerAdminRoutes(app *fiber.App, content services.IContentService, github services.IGitHubService) {
	adminHandler := admin_handlers.NewAdminHandler(content, github)

	app.Post("/admin/toggle", adminHandler.Toggle) // POST /admin/toggle

	adminGroup := app.Group("/admin")
	adminGroup.Use(middlewares.RequireAdminMode())

	// --- Şirket Bilgisi ---
	adminGroup.Get("/company", adminHandler.ShowUpdateCompany)  // GET /admin/company
	adminGroup.Post("/company", adminHandler.UpdateCompany)     // POST /admin/company

	// --- Ekip ---
	adminGroup.Get("/team/create", adminHandler.ShowCreateTeamMember)   // GET /admin/team/create
	adminGroup.Post("/team/create", adminHandler.CreateTeamMember)      // POST /admin/team/create
	adminGroup.Get("/team/edit/:id", adminHandler.ShowUpdateTeamMember) // GET /admin/team/edit/{id}
	adminGroup.Post("/team/edit/:id", adminHandler.UpdateTeamMember)    // POST /admin/team/edit/{id}
	adminGroup.Post("/team/delete/:id", adminHandler.DeleteTeamMember)  // POST /admin/team/delete/{id}

	// --- Portfolyo ---
	adminGroup.Get("/portfolio/:category/create", adminHandler.ShowCreatePortfolioItem)   // GET /admin/portfolio/{cat}/create
	adminGroup.Post("/portfolio/:category/create", adminHandler.CreatePortfolioItem)      // POST /admin/portfolio/{cat}/create
	adminGroup.Get("/portfolio/:category/edit/:id", adminHandler.ShowUpdatePortfolioItem) // GET /admin/portfolio/{cat}/edit/{id}
	adminGroup.Post("/portfolio/:category/edit/:id", adminHandler.UpdatePortfolioItem)    // POST /admin/portfolio/{cat}/edit/{id}
	adminGroup.Post("/portfolio/:category/delete/:id", adminHandler.DeletePortfolioItem)  // POST /admin/portfolio/{cat}/delete/{id}

	// --- Dışa Aktarma / Sıfırlama / Senkronizasyon ---
	adminGroup.Get("/export", adminHandler.ExportContent) // GET /admin/export (content.go indir)
	adminGroup.Get("/reset", adminHandler.ShowReset)      // GET /admin/reset (onay sayfası)
	adminGroup.Post("/reset", adminHandler.Reset)         // POST /admin/reset
	adminGroup.Get("/sync", adminHandler.ShowSync)        // GET /admin/sync
	adminGroup.Post("/sync", adminHandler.Sync)           // POST /admin/sync
}
