package handlers

import (
	"encoding/base64"
	"fmt"
	"io"

	"zanaat.studio/models"

	"github.com/gofiber/fiber/v2"
)

// formMediaRef bir medya alanını formdan çözer. Dosya seçimi ile URL metni
// birbirini dışlar: dosya yüklendiyse gömülü data-URI kazanır, aksi halde
// URL alanındaki metin geçerlidir. İkisi de boşsa sıfır referans döner.
// Referansın içeriği hiçbir şekilde doğrulanmaz.
func formMediaRef(c *fiber.Ctx, urlField, fileField string) (models.MediaRef, error) {
	fileHeader, err := c.FormFile(fileField)
	if err == nil && fileHeader != nil && fileHeader.Size > 0 {
		f, err := fileHeader.Open()
		if err != nil {
			return models.MediaRef{}, err
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			return models.MediaRef{}, err
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw))
		return models.EmbeddedMedia(dataURI), nil
	}

	return models.RemoteMedia(c.FormValue(urlField)), nil
}
