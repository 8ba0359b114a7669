package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"zanaat.studio/pkg/flashmessages"
	"zanaat.studio/utils"
)

// RequireAdminMode düzenleme uçlarını admin modu kapalıyken gizler.
// Bu bir erişim kontrolü değildir; sadece UI modunun tutarlılığını korur
// (mutasyon formları admin modunda görünür, uçları da ona eşlik eder).
func RequireAdminMode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !utils.IsAdminSession(c) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Önce düzenleme modunu açmalısınız.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
