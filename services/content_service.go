package services

import (
	"encoding/json"
	"errors"
	"sync"

	"zanaat.studio/configs/configslog"
	"zanaat.studio/content"
	"zanaat.studio/models"
	"zanaat.studio/pkg/contentfile"
	"zanaat.studio/repositories"

	"go.uber.org/zap"
)

// ContentServiceError özel servis hataları
type ContentServiceError string

func (e ContentServiceError) Error() string { return string(e) }

const (
	ErrContentPersistFailed ContentServiceError = "içerik kalıcı depoya yazılamadı"
	ErrContentResetFailed   ContentServiceError = "içerik sıfırlama sırasında depo temizlenemedi"
)

// ResetConfirmPrompt sıfırlama onayında gösterilen metin.
const ResetConfirmPrompt = "Tüm değişiklikler sıfırlansın mı? Bu işlem siteyi başlangıç durumuna döndürür ve geri alınamaz."

// Confirmer yıkıcı işlemler için onay yeteneği. Çekirdek mantık onayı bu
// arayüz üzerinden ister; HTTP akışı onu açık bir onay formuyla karşılar,
// testler ise sabit cevap veren bir fonksiyonla.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc fonksiyonları Confirmer'a uyarlar.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// IContentService içerik deposunun sözleşmesi: şirket bilgisi, ekip dizisi ve
// kategori->iş dizileri için tek doğruluk kaynağı. Her mutasyon dönmeden önce
// yalnızca kendi varlığının anahtarını senkron olarak kalıcılaştırır.
// Bilinmeyen id/kategori hata değil no-op'tur.
type IContentService interface {
	Initialize()

	Company() models.CompanyInfo
	TeamMembers() []models.TeamMember
	PortfolioData() []models.ServiceCategory
	Category(id models.ServiceType) (models.ServiceCategory, bool)

	UpdateCompanyInfo(info models.CompanyInfo) error
	AddTeamMember(member models.TeamMember) error
	UpdateTeamMember(id string, patch models.TeamMemberPatch) error
	DeleteTeamMember(id string) error
	AddPortfolioItem(categoryID models.ServiceType, item models.PortfolioItem) error
	UpdatePortfolioItem(categoryID models.ServiceType, itemID string, patch models.PortfolioItemPatch) error
	DeletePortfolioItem(categoryID models.ServiceType, itemID string) error

	ResetToDefault(confirm Confirmer) (bool, error)
	GenerateConfigFile() string
	FullContext() string
}

// ContentService IContentService arayüzünü uygular. Uygulama açılışında bir
// kez oluşturulur ve handler'lara enjekte edilir; bellek içi durum RWMutex
// ile korunur. Varlık başına son-yazan-kazanır davranışı korunur.
type ContentService struct {
	repo repositories.ISnapshotRepository

	mu        sync.RWMutex
	company   models.CompanyInfo
	team      []models.TeamMember
	portfolio []models.ServiceCategory
}

// NewContentService yeni bir ContentService örneği oluşturur.
func NewContentService() IContentService {
	return NewContentServiceWithRepo(repositories.NewSnapshotRepository())
}

// NewContentServiceWithRepo verilen depo ile servis oluşturur (testler için).
func NewContentServiceWithRepo(repo repositories.ISnapshotRepository) IContentService {
	return &ContentService{repo: repo}
}

// Initialize önce seed verisini yükler, ardından her varlık için kalıcı
// depodaki anlık görüntüyü dener. Kayıt yoksa veya çözümlenemiyorsa seed
// geçerli kalır; çağırana asla hata dönmez. Bozuk kayıt kullanıcıya
// gösterilmez, yalnızca loglanır.
func (s *ContentService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.company = copyCompany(content.CompanyInfo)
	s.team = copyTeam(content.TeamMembers)
	s.portfolio = copyPortfolio(content.PortfolioData)

	if raw, err := s.load(models.SnapshotKeyCompany); err == nil {
		var saved models.CompanyInfo
		if jsonErr := json.Unmarshal(raw, &saved); jsonErr != nil {
			configslog.Log.Warn("Kayıtlı şirket bilgisi çözümlenemedi, seed verisi kullanılıyor",
				zap.String("key", models.SnapshotKeyCompany), zap.Error(jsonErr))
		} else {
			s.company = saved
		}
	}

	if raw, err := s.load(models.SnapshotKeyTeam); err == nil {
		var saved []models.TeamMember
		if jsonErr := json.Unmarshal(raw, &saved); jsonErr != nil {
			configslog.Log.Warn("Kayıtlı ekip listesi çözümlenemedi, seed verisi kullanılıyor",
				zap.String("key", models.SnapshotKeyTeam), zap.Error(jsonErr))
		} else {
			s.team = saved
		}
	}

	if raw, err := s.load(models.SnapshotKeyPortfolio); err == nil {
		var saved []models.ServiceCategory
		if jsonErr := json.Unmarshal(raw, &saved); jsonErr != nil {
			configslog.Log.Warn("Kayıtlı portfolyo çözümlenemedi, seed verisi kullanılıyor",
				zap.String("key", models.SnapshotKeyPortfolio), zap.Error(jsonErr))
		} else {
			s.portfolio = saved
		}
	}

	configslog.SLog.Info("İçerik deposu başlatıldı.")
}

// load depo okumasını sarar; ErrNotFound sessiz, diğer hatalar loglanır.
func (s *ContentService) load(key string) ([]byte, error) {
	raw, err := s.repo.Get(key)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Warn("Kalıcı depo okunamadı, seed verisi kullanılıyor",
			zap.String("key", key), zap.Error(err))
	}
	return raw, err
}

// --- Okuma tarafı (derin kopya döndürür) ---

func (s *ContentService) Company() models.CompanyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCompany(s.company)
}

func (s *ContentService) TeamMembers() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTeam(s.team)
}

func (s *ContentService) PortfolioData() []models.ServiceCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPortfolio(s.portfolio)
}

// Category tek bir kategoriyi döndürür; bilinmeyen id için ok=false.
func (s *ContentService) Category(id models.ServiceType) (models.ServiceCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cat := range s.portfolio {
		if cat.ID == id {
			return copyCategory(cat), true
		}
	}
	return models.ServiceCategory{}, false
}

// --- Mutatörler ---

// UpdateCompanyInfo şirket bilgisini bütünüyle değiştirir ve hemen kalıcılaştırır.
func (s *ContentService) UpdateCompanyInfo(info models.CompanyInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = copyCompany(info)
	return s.persistCompany()
}

// AddTeamMember üyeyi ekip dizisinin sonuna ekler. member.ID çağıran
// tarafından sağlanmalı ve çakışmaya dayanıklı olmalıdır; depo küresel
// benzersizliği kendisi doğrulamaz.
func (s *ContentService) AddTeamMember(member models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.team = append(s.team, member)
	return s.persistTeam()
}

// UpdateTeamMember patch'i id'si eşleşen üyeye uygular; eşleşme yoksa no-op.
func (s *ContentService) UpdateTeamMember(id string, patch models.TeamMemberPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.team {
		if s.team[i].ID == id {
			patch.Apply(&s.team[i])
			return s.persistTeam()
		}
	}
	return nil
}

// DeleteTeamMember eşleşen üyeyi çıkarır; yoksa no-op.
func (s *ContentService) DeleteTeamMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.team {
		if s.team[i].ID == id {
			s.team = append(s.team[:i], s.team[i+1:]...)
			return s.persistTeam()
		}
	}
	return nil
}

// AddPortfolioItem işi kategorinin başına ekler (en yeni önce gösterim
// politikası); kategori bilinmiyorsa no-op.
func (s *ContentService) AddPortfolioItem(categoryID models.ServiceType, item models.PortfolioItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == categoryID {
			s.portfolio[i].Items = append([]models.PortfolioItem{item}, s.portfolio[i].Items...)
			return s.persistPortfolio()
		}
	}
	return nil
}

// UpdatePortfolioItem patch'i eşleşen kategori içindeki eşleşen işe uygular;
// iki aramadan biri başarısızsa no-op.
func (s *ContentService) UpdatePortfolioItem(categoryID models.ServiceType, itemID string, patch models.PortfolioItemPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID != categoryID {
			continue
		}
		for j := range s.portfolio[i].Items {
			if s.portfolio[i].Items[j].ID == itemID {
				patch.Apply(&s.portfolio[i].Items[j])
				return s.persistPortfolio()
			}
		}
	}
	return nil
}

// DeletePortfolioItem eşleşen işi çıkarır; yoksa no-op.
func (s *ContentService) DeletePortfolioItem(categoryID models.ServiceType, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID != categoryID {
			continue
		}
		items := s.portfolio[i].Items
		for j := range items {
			if items[j].ID == itemID {
				s.portfolio[i].Items = append(items[:j], items[j+1:]...)
				return s.persistPortfolio()
			}
		}
	}
	return nil
}

// ResetToDefault onaylanırsa üç varlığı da seed değerlerine döndürür ve üç
// depo anahtarını siler. Geri alınamaz; onaysız asla çalışmaz. Dönen bool
// işlemin gerçekten çalıştığını bildirir.
func (s *ContentService) ResetToDefault(confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(ResetConfirmPrompt) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.company = copyCompany(content.CompanyInfo)
	s.team = copyTeam(content.TeamMembers)
	s.portfolio = copyPortfolio(content.PortfolioData)

	var failed bool
	for _, key := range []string{models.SnapshotKeyCompany, models.SnapshotKeyTeam, models.SnapshotKeyPortfolio} {
		if err := s.repo.Delete(key); err != nil {
			configslog.Log.Error("Sıfırlama: depo anahtarı silinemedi", zap.String("key", key), zap.Error(err))
			failed = true
		}
	}
	if failed {
		return true, ErrContentResetFailed
	}

	configslog.SLog.Info("İçerik seed değerlerine sıfırlandı.")
	return true, nil
}

// GenerateConfigFile mevcut üçlüyü seed dosyasıyla aynı biçimde yüklenebilir
// Go kaynak metni olarak üretir.
func (s *ContentService) GenerateConfigFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contentfile.Generate(s.company, s.team, s.portfolio)
}

// FullContext üretken model çağrıları için düzleştirilmiş bağlam özetini
// çağrı anındaki anlık görüntüden üretir.
func (s *ContentService) FullContext() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contentfile.FlattenContext(s.company, s.team, s.portfolio)
}

// --- Kalıcılaştırma (mutex tutulurken çağrılır) ---

func (s *ContentService) persistCompany() error {
	return s.persist(models.SnapshotKeyCompany, s.company)
}

func (s *ContentService) persistTeam() error {
	return s.persist(models.SnapshotKeyTeam, s.team)
}

func (s *ContentService) persistPortfolio() error {
	return s.persist(models.SnapshotKeyPortfolio, s.portfolio)
}

func (s *ContentService) persist(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		configslog.Log.Error("İçerik JSON'a çevrilemedi", zap.String("key", key), zap.Error(err))
		return ErrContentPersistFailed
	}
	if err := s.repo.Set(key, raw); err != nil {
		return ErrContentPersistFailed
	}
	return nil
}

// --- Derin kopya yardımcıları ---

func copyCompany(c models.CompanyInfo) models.CompanyInfo {
	out := c
	out.Phones = append([]string(nil), c.Phones...)
	out.Locations = append([]string(nil), c.Locations...)
	return out
}

func copyTeam(team []models.TeamMember) []models.TeamMember {
	if team == nil {
		return nil
	}
	out := make([]models.TeamMember, len(team))
	for i, m := range team {
		out[i] = m
		out[i].Tags = append([]string(nil), m.Tags...)
	}
	return out
}

func copyPortfolio(cats []models.ServiceCategory) []models.ServiceCategory {
	if cats == nil {
		return nil
	}
	out := make([]models.ServiceCategory, len(cats))
	for i, cat := range cats {
		out[i] = copyCategory(cat)
	}
	return out
}

func copyCategory(cat models.ServiceCategory) models.ServiceCategory {
	out := cat
	out.Items = make([]models.PortfolioItem, len(cat.Items))
	for i, item := range cat.Items {
		out.Items[i] = item
		out.Items[i].Tags = append([]string(nil), item.Tags...)
		if item.Gallery != nil {
			out.Items[i].Gallery = append([]models.MediaRef(nil), item.Gallery...)
		}
	}
	return out
}

var _ IContentService = (*ContentService)(nil)
