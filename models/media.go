package models

import "html/template"

// MediaKind bir medya referansının türü.
type MediaKind string

const (
	// MediaKindRemote harici bir URL'i işaret eder.
	MediaKindRemote MediaKind = "remote"
	// MediaKindEmbedded dosya seçiminden üretilmiş gömülü bir data-URI içerir.
	MediaKindEmbedded MediaKind = "embedded"
)

// MediaRef görsel/video referansı. Bir alan ya harici URL ya da gömülü
// data-URI taşır; ikisi birden olamaz. Sıfır değeri "ayarlanmamış" demektir.
// Referansın erişilebilirliği veya formatı hiçbir katmanda doğrulanmaz.
type MediaRef struct {
	Kind  MediaKind `json:"kind,omitempty"`
	Value string    `json:"value,omitempty"`
}

// RemoteMedia harici URL'den bir MediaRef oluşturur.
func RemoteMedia(url string) MediaRef {
	if url == "" {
		return MediaRef{}
	}
	return MediaRef{Kind: MediaKindRemote, Value: url}
}

// EmbeddedMedia data-URI içeriğinden bir MediaRef oluşturur.
func EmbeddedMedia(dataURI string) MediaRef {
	if dataURI == "" {
		return MediaRef{}
	}
	return MediaRef{Kind: MediaKindEmbedded, Value: dataURI}
}

// Src tarayıcının yükleyeceği değeri döndürür (URL veya data-URI).
// template.URL tipi, gömülü data-URI'lerin view katmanındaki URL
// süzgecine takılmadan render edilmesini sağlar.
func (m MediaRef) Src() template.URL {
	return template.URL(m.Value)
}

// IsZero referansın ayarlanmadığını bildirir.
func (m MediaRef) IsZero() bool {
	return m.Value == ""
}

// IsRemote referansın harici URL taşıyıp taşımadığını bildirir.
func (m MediaRef) IsRemote() bool {
	return m.Kind == MediaKindRemote && m.Value != ""
}

// IsEmbedded referansın gömülü data-URI taşıyıp taşımadığını bildirir.
func (m MediaRef) IsEmbedded() bool {
	return m.Kind == MediaKindEmbedded && m.Value != ""
}
