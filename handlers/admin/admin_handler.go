package handlers // handlers/admin paketi

import (
	"strings"

	"zanaat.studio/configs/configslog"
	"zanaat.studio/models"
	"zanaat.studio/pkg/flashmessages"
	"zanaat.studio/pkg/renderer"
	"zanaat.studio/services"
	"zanaat.studio/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler yerinde düzenleme modunun tüm mutasyon akışlarını yönetir.
// Admin modu bir güvenlik sınırı değil, düzenleme arayüzünü açan bir UI
// anahtarıdır; kimlik doğrulama kapsam dışıdır.
type AdminHandler struct {
	content services.IContentService
	github  services.IGitHubService
}

// NewAdminHandler yeni bir AdminHandler örneği oluşturur.
func NewAdminHandler(content services.IContentService, github services.IGitHubService) *AdminHandler {
	return &AdminHandler{content: content, github: github}
}

// Toggle admin modunu açıp kapatır ve geldiği sayfaya döner.
func (h *AdminHandler) Toggle(c *fiber.Ctx) error {
	isAdmin, err := utils.ToggleAdminSession(c)
	if err != nil {
		configslog.Log.Error("Admin modu değiştirilemedi", zap.Error(err))
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if isAdmin {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Düzenleme modu açıldı.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Düzenleme modu kapatıldı.")
	}
	return c.Redirect(backTo(c), fiber.StatusSeeOther)
}

// --- Şirket Bilgisi ---

// ShowUpdateCompany şirket bilgisi düzenleme formunu gösterir.
func (h *AdminHandler) ShowUpdateCompany(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/company", "layouts/main", fiber.Map{
		"Title":   "Şirket Bilgilerini Düzenle",
		"Company": h.content.Company(),
	})
}

// UpdateCompany şirket bilgisini bütünüyle değiştirir (tam replace).
func (h *AdminHandler) UpdateCompany(c *fiber.Ctx) error {
	logo, err := formMediaRef(c, "logo_url", "logo_file")
	if err != nil {
		return h.companyError(c, "Logo dosyası okunamadı.")
	}
	hero, err := formMediaRef(c, "hero_url", "hero_file")
	if err != nil {
		return h.companyError(c, "Arka plan görseli okunamadı.")
	}

	info := models.CompanyInfo{
		Name:                strings.TrimSpace(c.FormValue("name")),
		Slogan:              strings.TrimSpace(c.FormValue("slogan")),
		Phones:              splitLines(c.FormValue("phones")),
		Description:         strings.TrimSpace(c.FormValue("description")),
		Locations:           splitLines(c.FormValue("locations")),
		HeroBackgroundImage: hero,
		Logo:                logo,
	}

	if err := h.content.UpdateCompanyInfo(info); err != nil {
		configslog.Log.Error("Şirket bilgisi güncellenemedi", zap.Error(err))
		return h.companyError(c, "Şirket bilgisi kaydedilemedi: "+err.Error())
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şirket bilgileri güncellendi.")
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AdminHandler) companyError(c *fiber.Ctx, msg string) error {
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
	return c.Redirect("/admin/company", fiber.StatusSeeOther)
}

// --- Ekip ---

// ShowCreateTeamMember yeni ekip üyesi formunu gösterir.
func (h *AdminHandler) ShowCreateTeamMember(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/team_form", "layouts/main", fiber.Map{
		"Title": "Yeni Ekip Üyesi",
	})
}

// CreateTeamMember üyeyi ekip listesinin sonuna ekler. Benzersiz id burada,
// yani çağıran tarafta üretilir; depo id çakışmasını kendisi denetlemez.
func (h *AdminHandler) CreateTeamMember(c *fiber.Ctx) error {
	image, err := formMediaRef(c, "image_url", "image_file")
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel okunamadı.")
		return c.Redirect("/admin/team/create", fiber.StatusSeeOther)
	}

	member := models.TeamMember{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(c.FormValue("name")),
		Role:  strings.TrimSpace(c.FormValue("role")),
		Image: image,
		Tags:  splitTags(c.FormValue("tags")),
	}

	if err := h.content.AddTeamMember(member); err != nil {
		configslog.Log.Error("Ekip üyesi eklenemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ekip üyesi kaydedilemedi: "+err.Error())
		return c.Redirect("/admin/team/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Ekip üyesi eklendi.")
	return c.Redirect("/", fiber.StatusFound)
}

// ShowUpdateTeamMember düzenleme formunu gösterir.
func (h *AdminHandler) ShowUpdateTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, m := range h.content.TeamMembers() {
		if m.ID == id {
			return renderer.Render(c, "admin/team_form", "layouts/main", fiber.Map{
				"Title":  "Ekip Üyesini Düzenle",
				"Member": m,
			})
		}
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ekip üyesi bulunamadı.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// UpdateTeamMember formdaki alanları patch olarak uygular. Form mevcut
// değerlerle önceden doldurulduğu için her alan gönderilir; bilinmeyen id
// depo katmanında sessiz no-op olur.
func (h *AdminHandler) UpdateTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")

	image, err := formMediaRef(c, "image_url", "image_file")
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel okunamadı.")
		return c.Redirect("/admin/team/edit/"+id, fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	role := strings.TrimSpace(c.FormValue("role"))
	tags := splitTags(c.FormValue("tags"))

	patch := models.TeamMemberPatch{
		Name:  &name,
		Role:  &role,
		Image: &image,
		Tags:  &tags,
	}

	if err := h.content.UpdateTeamMember(id, patch); err != nil {
		configslog.Log.Error("Ekip üyesi güncellenemedi", zap.String("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ekip üyesi kaydedilemedi: "+err.Error())
		return c.Redirect("/admin/team/edit/"+id, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Ekip üyesi güncellendi.")
	return c.Redirect("/", fiber.StatusFound)
}

// DeleteTeamMember üyeyi siler; olmayan id no-op'tur.
func (h *AdminHandler) DeleteTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.content.DeleteTeamMember(id); err != nil {
		configslog.Log.Error("Ekip üyesi silinemedi", zap.String("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ekip üyesi silinemedi: "+err.Error())
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Ekip üyesi silindi.")
	return c.Redirect("/", fiber.StatusFound)
}

// --- Portfolyo ---

// ShowCreatePortfolioItem yeni iş formunu gösterir.
func (h *AdminHandler) ShowCreatePortfolioItem(c *fiber.Ctx) error {
	categoryID := models.ServiceType(c.Params("category"))
	cat, ok := h.content.Category(categoryID)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bilinmeyen kategori.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "admin/portfolio_form", "layouts/main", fiber.Map{
		"Title":    "Yeni İş: " + cat.Name,
		"Category": cat,
	})
}

// CreatePortfolioItem işi kategorinin başına ekler (en yeni önce).
func (h *AdminHandler) CreatePortfolioItem(c *fiber.Ctx) error {
	categoryID := models.ServiceType(c.Params("category"))

	item, err := h.portfolioItemFromForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel okunamadı.")
		return c.Redirect("/admin/portfolio/"+string(categoryID)+"/create", fiber.StatusSeeOther)
	}
	item.ID = uuid.NewString()

	if err := h.content.AddPortfolioItem(categoryID, item); err != nil {
		configslog.Log.Error("İş eklenemedi", zap.String("category", string(categoryID)), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İş kaydedilemedi: "+err.Error())
		return c.Redirect("/admin/portfolio/"+string(categoryID)+"/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İş eklendi.")
	return c.Redirect("/?tab="+string(categoryID), fiber.StatusFound)
}

// ShowUpdatePortfolioItem düzenleme formunu gösterir.
func (h *AdminHandler) ShowUpdatePortfolioItem(c *fiber.Ctx) error {
	categoryID := models.ServiceType(c.Params("category"))
	itemID := c.Params("id")

	cat, ok := h.content.Category(categoryID)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bilinmeyen kategori.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	for _, item := range cat.Items {
		if item.ID == itemID {
			return renderer.Render(c, "admin/portfolio_form", "layouts/main", fiber.Map{
				"Title":    "İşi Düzenle: " + item.Title,
				"Category": cat,
				"Item":     item,
			})
		}
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İş bulunamadı.")
	return c.Redirect("/?tab="+string(categoryID), fiber.StatusSeeOther)
}

// UpdatePortfolioItem formdaki alanları patch olarak uygular.
func (h *AdminHandler) UpdatePortfolioItem(c *fiber.Ctx) error {
	categoryID := models.ServiceType(c.Params("category"))
	itemID := c.Params("id")

	item, err := h.portfolioItemFromForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel okunamadı.")
		return c.Redirect("/admin/portfolio/"+string(categoryID)+"/edit/"+itemID, fiber.StatusSeeOther)
	}

	patch := models.PortfolioItemPatch{
		Title:       &item.Title,
		Description: &item.Description,
		Image:       &item.Image,
		Video:       &item.Video,
		Gallery:     &item.Gallery,
		Tags:        &item.Tags,
	}

	if err := h.content.UpdatePortfolioItem(categoryID, itemID, patch); err != nil {
		configslog.Log.Error("İş güncellenemedi", zap.String("category", string(categoryID)), zap.String("id", itemID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İş kaydedilemedi: "+err.Error())
		return c.Redirect("/admin/portfolio/"+string(categoryID)+"/edit/"+itemID, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İş güncellendi.")
	return c.Redirect("/?tab="+string(categoryID), fiber.StatusFound)
}

// DeletePortfolioItem işi siler; olmayan kategori/id no-op'tur.
func (h *AdminHandler) DeletePortfolioItem(c *fiber.Ctx) error {
	categoryID := models.ServiceType(c.Params("category"))
	itemID := c.Params("id")

	if err := h.content.DeletePortfolioItem(categoryID, itemID); err != nil {
		configslog.Log.Error("İş silinemedi", zap.String("category", string(categoryID)), zap.String("id", itemID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İş silinemedi: "+err.Error())
		return c.Redirect("/?tab="+string(categoryID), fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İş silindi.")
	return c.Redirect("/?tab="+string(categoryID), fiber.StatusFound)
}

func (h *AdminHandler) portfolioItemFromForm(c *fiber.Ctx) (models.PortfolioItem, error) {
	image, err := formMediaRef(c, "image_url", "image_file")
	if err != nil {
		return models.PortfolioItem{}, err
	}

	gallery := []models.MediaRef{}
	for _, line := range splitLines(c.FormValue("gallery")) {
		gallery = append(gallery, models.RemoteMedia(line))
	}

	return models.PortfolioItem{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Image:       image,
		Video:       models.RemoteMedia(strings.TrimSpace(c.FormValue("video_url"))),
		Gallery:     gallery,
		Tags:        splitTags(c.FormValue("tags")),
	}, nil
}

// --- Dışa Aktarma / Sıfırlama / Senkronizasyon ---

// ExportContent mevcut içeriği seed dosyası biçiminde indirir.
func (h *AdminHandler) ExportContent(c *fiber.Ctx) error {
	source := h.content.GenerateConfigFile()
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="content.go"`)
	return c.SendString(source)
}

// ShowReset sıfırlama onay sayfasını gösterir. Yıkıcı işlem iki adımlıdır:
// önce bu sayfa, sonra açık onay alanı taşıyan POST.
func (h *AdminHandler) ShowReset(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/reset", "layouts/main", fiber.Map{
		"Title":  "İçeriği Sıfırla",
		"Prompt": services.ResetConfirmPrompt,
	})
}

// Reset onay alanı doluysa tüm içeriği seed değerlerine döndürür.
// Onaysız istek hiçbir şey değiştirmez.
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	confirmed := c.FormValue("confirm") == "yes"
	ran, err := h.content.ResetToDefault(services.ConfirmFunc(func(string) bool { return confirmed }))
	if err != nil {
		configslog.Log.Error("İçerik sıfırlama hatası", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Sıfırlama tamamlanamadı: "+err.Error())
		return c.Redirect("/admin/reset", fiber.StatusSeeOther)
	}
	if !ran {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Sıfırlama onaylanmadı, değişiklik yapılmadı.")
		return c.Redirect("/admin/reset", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İçerik başlangıç durumuna sıfırlandı.")
	return c.Redirect("/", fiber.StatusFound)
}

// ShowSync senkronizasyon formunu kayıtlı ayarlarla gösterir.
func (h *AdminHandler) ShowSync(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/sync", "layouts/main", fiber.Map{
		"Title":  "GitHub Senkronizasyonu",
		"Config": h.github.LoadConfig(),
	})
}

// Sync ayarları saklar ve üretilen içerik dosyasını hedef depoya iter.
// Sonuç (başarı ya da hata) aynı sayfada banner olarak gösterilir.
func (h *AdminHandler) Sync(c *fiber.Ctx) error {
	cfg := services.GitHubConfig{
		Token: strings.TrimSpace(c.FormValue("token")),
		Owner: strings.TrimSpace(c.FormValue("owner")),
		Repo:  strings.TrimSpace(c.FormValue("repo")),
		Path:  strings.TrimSpace(c.FormValue("path")),
	}

	if err := h.github.SaveConfig(cfg); err != nil {
		configslog.Log.Error("Senkronizasyon ayarları kaydedilemedi", zap.Error(err))
	}

	if !cfg.IsComplete() {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen tüm senkronizasyon alanlarını doldurun.")
		return c.Redirect("/admin/sync", fiber.StatusSeeOther)
	}

	result := h.github.UpdateFile(c.UserContext(), cfg, h.content.GenerateConfigFile())
	if result.Success {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, result.Message)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, result.Message)
	}
	return c.Redirect("/admin/sync", fiber.StatusSeeOther)
}

// --- Yardımcılar ---

func backTo(c *fiber.Ctx) string {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return ref
	}
	return "/"
}

// splitLines satır satır girilen çok değerli alanları çözer; boş satırlar atlanır.
func splitLines(value string) []string {
	out := []string{}
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitTags virgülle ayrılmış etiketleri çözer; sıra korunur.
func splitTags(value string) []string {
	out := []string{}
	for _, tag := range strings.Split(value, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
