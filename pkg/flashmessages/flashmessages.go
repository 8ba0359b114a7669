package flashmessages

import (
	"github.com/gofiber/fiber/v2"

	"zanaat.studio/utils"
)

// Flash mesaj anahtarları.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// SetFlashMessage bir sonraki istekte gösterilmek üzere mesaj bırakır.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve siler (tek kullanımlık).
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	message, _ := sess.Get(key).(string)
	if message != "" {
		sess.Delete(key)
		_ = sess.Save()
	}
	return message
}
