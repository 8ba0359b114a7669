package handlers // handlers/site paketi

import (
	"net/http"

	"zanaat.studio/configs/configslog"
	"zanaat.studio/models"
	"zanaat.studio/pkg/renderer"
	"zanaat.studio/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteHandler açık (public) site sayfalarını yönetir.
type SiteHandler struct {
	content   services.IContentService
	assistant services.IAssistantService
}

// NewSiteHandler yeni bir SiteHandler örneği oluşturur. İçerik deposu
// uygulama açılışında bir kez kurulur ve buraya enjekte edilir.
func NewSiteHandler(content services.IContentService, assistant services.IAssistantService) *SiteHandler {
	return &SiteHandler{content: content, assistant: assistant}
}

// Home tek sayfalık siteyi render eder: hero, şirket tanıtımı, ekip şeridi
// ve sekmeli portfolyo. Admin modundaysa düzenleme bağlantıları da görünür.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	company := h.content.Company()
	team := h.content.TeamMembers()
	portfolio := h.content.PortfolioData()

	activeTab := models.ServiceType(c.Query("tab"))
	if !activeTab.IsValid() && len(portfolio) > 0 {
		activeTab = portfolio[0].ID
	}

	return renderer.Render(c, "site/index", "layouts/main", fiber.Map{
		"Title":     company.Name,
		"Company":   company,
		"Team":      team,
		"Portfolio": portfolio,
		"ActiveTab": activeTab,
	}, http.StatusOK)
}

type chatRequest struct {
	Question string `json:"question"`
}

// Chat sohbet bileşeninin sorduğu soruyu asistan servisine iletir.
// Servis hatayı asla yukarı taşımadığı için buradan her zaman 200 döner;
// devam eden çağrı iptal edilmez, geciken cevap istemcide yine gösterilir.
func (h *SiteHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("Chat: istek gövdesi çözümlenemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek"})
	}

	reply := h.assistant.GenerateAIResponse(c.UserContext(), req.Question)
	return c.JSON(fiber.Map{"reply": reply})
}
