package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession bellek içi session store'u hazırlar.
// Admin modu bayrağı gibi sadece oturuma özgü UI durumu burada tutulur;
// kalıcı veri session'a yazılmaz.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
