package main

import (
	"zanaat.studio/configs"
	"zanaat.studio/configs/configsdatabase"
	"zanaat.studio/configs/configslog"
	"zanaat.studio/routes"
	"zanaat.studio/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	appConfig := configs.GetAppConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Servisler bir kez kurulur; içerik deposu açılışta seed + kayıtlı
	// anlık görüntülerle doldurulur.
	contentService := services.NewContentService()
	contentService.Initialize()
	githubService := services.NewGitHubService()
	assistantService := services.NewAssistantService(appConfig.GeminiAPIKey, appConfig.GeminiModel, contentService)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20 * 1024 * 1024, // data-URI'ye çevrilen görsel yüklemeleri için
	})

	app.Static("/assets", "./assets")

	routes.SetupRoutes(app, contentService, githubService, assistantService)

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor...", appConfig.Port)
	if err := app.Listen(":" + appConfig.Port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
