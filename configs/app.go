package configs

import (
	"os"

	"github.com/joho/godotenv"

	"zanaat.studio/configs/configslog"
)

// AppConfig uygulama genel ayarları.
type AppConfig struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
}

// LoadEnv .env dosyasını yükler. Dosya yoksa sorun değil; ortam değişkenleri
// yine de okunur (production'da .env kullanılmaz).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}
}

// GetAppConfig ortam değişkenlerinden uygulama ayarlarını okur.
// GEMINI_API_KEY boş olabilir; asistan servisi bu durumda zarifçe devre dışı kalır.
func GetAppConfig() AppConfig {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "3000"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return AppConfig{
		Port:         port,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  model,
	}
}
