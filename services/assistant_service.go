package services

import (
	"context"
	"fmt"
	"strings"

	"zanaat.studio/configs/configslog"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Sabit asistan cevapları. Sohbet arayüzü bu çağrıdan asla çökmemelidir;
// her hata durumu bu metinlerden birine dönüştürülür.
const (
	AssistantMsgNoAPIKey = "Akıllı asistanı kullanabilmek için lütfen bir API anahtarı yapılandırın."
	AssistantMsgEmpty    = "Üzgünüm, bu soruyu şu an yanıtlayamıyorum. Lütfen bizi doğrudan telefonla arayın."
	AssistantMsgFailure  = "Akıllı asistana bağlanılamadı. Lütfen daha sonra tekrar deneyin veya bizi telefonla arayın."
)

// IAssistantService serbest metin soruları, içerik deposunun çağrı anındaki
// anlık görüntüsüne dayanarak üretken modelle yanıtlar.
type IAssistantService interface {
	GenerateAIResponse(ctx context.Context, question string) string
}

// generatorFunc tek turluk bir üretim çağrısı. Testlerde sahte üreticiyle
// değiştirilir.
type generatorFunc func(ctx context.Context, prompt string) (string, error)

// AssistantService IAssistantService arayüzünü uygular.
type AssistantService struct {
	apiKey   string
	model    string
	contents IContentService
	generate generatorFunc
}

// NewAssistantService yeni bir AssistantService örneği oluşturur. apiKey boş
// olabilir; bu durumda hiç ağ çağrısı yapılmaz ve sabit yönlendirme mesajı döner.
func NewAssistantService(apiKey, model string, contents IContentService) IAssistantService {
	s := &AssistantService{
		apiKey:   apiKey,
		model:    model,
		contents: contents,
	}
	s.generate = s.generateWithGenai
	return s
}

// NewAssistantServiceWithGenerator üreticiyi dışarıdan alır (testler için).
func NewAssistantServiceWithGenerator(apiKey, model string, contents IContentService, generate func(ctx context.Context, prompt string) (string, error)) IAssistantService {
	return &AssistantService{
		apiKey:   apiKey,
		model:    model,
		contents: contents,
		generate: generate,
	}
}

// GenerateAIResponse soruyu yanıtlar. Anahtar yoksa yapılandırma mesajı,
// çağrı hatasında veya boş cevapta sabit fallback metni döner; hata asla
// yukarı taşınmaz.
func (s *AssistantService) GenerateAIResponse(ctx context.Context, question string) string {
	if s.apiKey == "" {
		return AssistantMsgNoAPIKey
	}

	prompt := s.buildPrompt(question)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		configslog.Log.Error("Üretken model çağrısı başarısız", zap.Error(err))
		return AssistantMsgFailure
	}
	if strings.TrimSpace(answer) == "" {
		return AssistantMsgEmpty
	}
	return answer
}

// buildPrompt rol talimatı, düzleştirilmiş bağlam özeti ve kullanıcı sorusunu
// tek turluk bir istemde birleştirir. Bağlam, depodan çağrı anında alınan
// statik anlık görüntüdür.
func (s *AssistantService) buildPrompt(question string) string {
	company := s.contents.Company()
	context := s.contents.FullContext()

	return fmt.Sprintf(`"%s" adlı şirket için yardımsever bir müşteri hizmetleri asistanısın.
Şirketin portfolyo bağlamı şu şekilde: %s

Kullanıcının sorusu: "%s"

Kibar ve öz bir şekilde Türkçe yanıt ver. Soru iletişim bilgileriyle ilgiliyse telefon numaralarını aramayı öne çıkar.
Bağlamda olmayan bilgiler uydurma.`, company.Name, context, question)
}

// generateWithGenai varsayılan üretici: Gemini API'ye tek turluk istek atar.
func (s *AssistantService) generateWithGenai(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: s.apiKey})
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 200,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

var _ IAssistantService = (*AssistantService)(nil)
