package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"zanaat.studio/pkg/flashmessages"
	"zanaat.studio/utils"
)

// View'larda kullanılan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render flash mesajlarını ve admin bayrağını view verisine ekleyip
// verilen layout ile render eder.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		data[FlashSuccessKeyView] = flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey)
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		data[FlashErrorKeyView] = flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey)
	}
	data["IsAdmin"] = utils.IsAdminSession(c)

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
