package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"zanaat.studio/configs/configslog"
	"zanaat.studio/models"
	"zanaat.studio/repositories"

	"go.uber.org/zap"
)

// githubAPIBaseURL varsayılan GitHub API kökü. Testlerde değiştirilebilir.
const githubAPIBaseURL = "https://api.github.com"

// GitHubConfig senkronizasyon için gerekli erişim bilgileri. Değerler
// doğrulanmadan ve şifrelenmeden kalıcı depoda saklanır; yalnızca oturumlar
// arası kolaylık içindir.
type GitHubConfig struct {
	Token string
	Owner string
	Repo  string
	Path  string
}

// IsComplete dört alanın da dolu olup olmadığını bildirir.
func (c GitHubConfig) IsComplete() bool {
	return c.Token != "" && c.Owner != "" && c.Repo != "" && c.Path != ""
}

// SyncResult tek bir senkronizasyon denemesinin sonucu. Başarısızlık da bu
// yapıyla raporlanır; bu servisten dışarıya hata fırlatılmaz.
type SyncResult struct {
	Success bool
	Message string
}

// IGitHubService üretilen içerik dosyasını depodaki hedef dosyaya iten ve
// senkronizasyon ayarlarını saklayan arayüz.
type IGitHubService interface {
	UpdateFile(ctx context.Context, cfg GitHubConfig, content string) SyncResult
	LoadConfig() GitHubConfig
	SaveConfig(cfg GitHubConfig) error
}

// GitHubService IGitHubService arayüzünü uygular. Akış iyimser eşzamanlılıkla
// oku-değiştir-yaz şeklindedir: önce dosyanın mevcut sha'sı GET ile alınır,
// sonra yeni içerik aynı sha ile PUT edilir. Tek deneme yapılır, retry yoktur.
type GitHubService struct {
	repo       repositories.ISnapshotRepository
	httpClient *http.Client
	baseURL    string
}

// NewGitHubService yeni bir GitHubService örneği oluşturur.
func NewGitHubService() IGitHubService {
	return &GitHubService{
		repo:       repositories.NewSnapshotRepository(),
		httpClient: http.DefaultClient,
		baseURL:    githubAPIBaseURL,
	}
}

// NewGitHubServiceWithOptions bağımlılıkları dışarıdan alır (testler için).
func NewGitHubServiceWithOptions(repo repositories.ISnapshotRepository, client *http.Client, baseURL string) IGitHubService {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = githubAPIBaseURL
	}
	return &GitHubService{repo: repo, httpClient: client, baseURL: baseURL}
}

type githubFileResponse struct {
	SHA string `json:"sha"`
}

type githubErrorResponse struct {
	Message string `json:"message"`
}

type githubPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// UpdateFile içeriği hedef dosyaya iter. Her adımda başarısızlık SyncResult
// olarak raporlanır ve işlem orada kesilir; kısmi durum kalmaz çünkü yazma
// tek bir atomik PUT'tur.
func (s *GitHubService) UpdateFile(ctx context.Context, cfg GitHubConfig, content string) SyncResult {
	apiURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.baseURL, cfg.Owner, cfg.Repo, cfg.Path)

	// 1. Mevcut dosya bilgisini al (güncelleme için sha gerekli)
	getReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return s.networkError(err)
	}
	s.setHeaders(getReq, cfg.Token)

	getResp, err := s.httpClient.Do(getReq)
	if err != nil {
		return s.networkError(err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode == http.StatusNotFound {
		// Dosya yoksa oluşturma akışına düşülmez; yol hatası olarak raporlanır.
		return SyncResult{Success: false, Message: "GitHub üzerinde dosya bulunamadı, lütfen dosya yolunu kontrol edin."}
	}
	if getResp.StatusCode < 200 || getResp.StatusCode > 299 {
		return SyncResult{Success: false, Message: "GitHub API hatası: " + getResp.Status}
	}

	var fileData githubFileResponse
	if err := json.NewDecoder(getResp.Body).Decode(&fileData); err != nil {
		return s.networkError(err)
	}

	// 2. İçeriği Base64'e çevir. Encoding UTF-8 baytları üzerinden yapılır;
	// çok baytlı karakterler bozulmadan taşınır.
	encoded := base64.StdEncoding.EncodeToString([]byte(content))

	// 3. Yeni içeriği aynı uca PUT et
	body, err := json.Marshal(githubPutRequest{
		Message: "Update " + cfg.Path + " via Zanaat CMS",
		Content: encoded,
		SHA:     fileData.SHA,
	})
	if err != nil {
		return s.networkError(err)
	}

	putReq, err := http.NewRequestWithContext(ctx, http.MethodPut, apiURL, bytes.NewReader(body))
	if err != nil {
		return s.networkError(err)
	}
	s.setHeaders(putReq, cfg.Token)
	putReq.Header.Set("Content-Type", "application/json")

	putResp, err := s.httpClient.Do(putReq)
	if err != nil {
		return s.networkError(err)
	}
	defer putResp.Body.Close()

	if putResp.StatusCode >= 200 && putResp.StatusCode <= 299 {
		return SyncResult{Success: true, Message: "GitHub'a başarıyla gönderildi! Dağıtım hattı siteyi birkaç dakika içinde güncelleyecek."}
	}

	// Üst servisin hata mesajını olduğu gibi ilet
	raw, _ := io.ReadAll(putResp.Body)
	var apiErr githubErrorResponse
	if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Message != "" {
		return SyncResult{Success: false, Message: "Senkronizasyon başarısız: " + apiErr.Message}
	}
	return SyncResult{Success: false, Message: "Senkronizasyon başarısız: " + putResp.Status}
}

func (s *GitHubService) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}

func (s *GitHubService) networkError(err error) SyncResult {
	configslog.Log.Error("GitHub senkronizasyon hatası", zap.Error(err))
	return SyncResult{Success: false, Message: "Ağ hatası: " + err.Error()}
}

// LoadConfig kayıtlı senkronizasyon ayarlarını okur; eksik anahtarlar boş kalır.
func (s *GitHubService) LoadConfig() GitHubConfig {
	return GitHubConfig{
		Token: s.loadKey(models.SnapshotKeySyncToken),
		Owner: s.loadKey(models.SnapshotKeySyncOwner),
		Repo:  s.loadKey(models.SnapshotKeySyncRepo),
		Path:  s.loadKey(models.SnapshotKeySyncPath),
	}
}

func (s *GitHubService) loadKey(key string) string {
	raw, err := s.repo.Get(key)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("Senkronizasyon ayarı okunamadı", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		configslog.Log.Warn("Senkronizasyon ayarı çözümlenemedi", zap.String("key", key), zap.Error(err))
		return ""
	}
	return value
}

// SaveConfig dört ayarı ayrı anahtarlar altında saklar.
func (s *GitHubService) SaveConfig(cfg GitHubConfig) error {
	pairs := map[string]string{
		models.SnapshotKeySyncToken: cfg.Token,
		models.SnapshotKeySyncOwner: cfg.Owner,
		models.SnapshotKeySyncRepo:  cfg.Repo,
		models.SnapshotKeySyncPath:  cfg.Path,
	}
	for key, value := range pairs {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := s.repo.Set(key, raw); err != nil {
			return err
		}
	}
	return nil
}

var _ IGitHubService = (*GitHubService)(nil)
