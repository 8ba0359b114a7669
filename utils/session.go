package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionAdminKey = "is_admin"

// SessionStart istekteki session'ı açar. Store, router middleware'i
// tarafından Locals'a konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// IsAdminSession oturumun admin modunda olup olmadığını döndürür.
// Bu bir güvenlik sınırı değildir; yalnızca düzenleme arayüzünü açan
// bir UI anahtarıdır.
func IsAdminSession(c *fiber.Ctx) bool {
	sess, err := SessionStart(c)
	if err != nil {
		return false
	}
	isAdmin, _ := sess.Get(sessionAdminKey).(bool)
	return isAdmin
}

// ToggleAdminSession admin bayrağını tersine çevirir ve yeni değeri döndürür.
// Bayrak session dışında hiçbir yerde kalıcılaştırılmaz.
func ToggleAdminSession(c *fiber.Ctx) (bool, error) {
	sess, err := SessionStart(c)
	if err != nil {
		return false, err
	}
	isAdmin, _ := sess.Get(sessionAdminKey).(bool)
	next := !isAdmin
	sess.Set(sessionAdminKey, next)
	if err := sess.Save(); err != nil {
		return false, err
	}
	return next, nil
}
