package models

// CompanyInfo şirket tanıtım bilgileri. Sistemde her an tam olarak bir
// örneği bulunur (singleton); güncelleme her zaman tam değiştirme şeklindedir.
type CompanyInfo struct {
	Name                string   `json:"name"`
	Slogan              string   `json:"slogan"`
	Phones              []string `json:"phones"`
	Description         string   `json:"description"`
	Locations           []string `json:"locations"`
	HeroBackgroundImage MediaRef `json:"heroBackgroundImage,omitempty"`
	Logo                MediaRef `json:"logo,omitempty"`
}
