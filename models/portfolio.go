package models

// ServiceType kapalı kategori kümesi. Kategoriler derleme zamanında sabittir;
// store yalnızca kategori içindeki işleri değiştirir, kategori ekleyip silmez.
type ServiceType string

const (
	ServiceTypeBranding ServiceType = "branding"
	ServiceTypeVideo    ServiceType = "video"
	ServiceTypeMusic    ServiceType = "music"
	ServiceTypeEvent    ServiceType = "event"
	ServiceTypePrinting ServiceType = "printing"
)

// AllServiceTypes sabit kategori sırası.
var AllServiceTypes = []ServiceType{
	ServiceTypeBranding,
	ServiceTypeVideo,
	ServiceTypeMusic,
	ServiceTypeEvent,
	ServiceTypePrinting,
}

// IsValid verilen id'nin kapalı kümede olup olmadığını bildirir.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeBranding, ServiceTypeVideo, ServiceTypeMusic, ServiceTypeEvent, ServiceTypePrinting:
		return true
	}
	return false
}

// PortfolioItem bir kategorideki tek iş kaydı.
// Gallery ve Tags eklenme sırasını korur; benzersizlik şartı yoktur.
type PortfolioItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       MediaRef   `json:"image"`
	Video       MediaRef   `json:"video,omitempty"`
	Gallery     []MediaRef `json:"gallery,omitempty"`
	Tags        []string   `json:"tags"`
}

// PortfolioItemPatch kısmi güncelleme için değiştirilebilir alanları sayar.
// nil alan "dokunma" anlamına gelir.
type PortfolioItemPatch struct {
	Title       *string
	Description *string
	Image       *MediaRef
	Video       *MediaRef
	Gallery     *[]MediaRef
	Tags        *[]string
}

// Apply patch'i işe uygular.
func (p PortfolioItemPatch) Apply(item *PortfolioItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Video != nil {
		item.Video = *p.Video
	}
	if p.Gallery != nil {
		item.Gallery = append([]MediaRef(nil), *p.Gallery...)
	}
	if p.Tags != nil {
		item.Tags = append([]string(nil), *p.Tags...)
	}
}

// ServiceCategory sabit bir kategori ve ona bağlı iş listesi.
// Items newest-first tutulur: yeni iş listenin başına eklenir.
type ServiceCategory struct {
	ID    ServiceType     `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Items []PortfolioItem `json:"items"`
}
