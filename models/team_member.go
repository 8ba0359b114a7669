package models

// TeamMember ekip üyesi kaydı. Sıra (slice içindeki konum) görüntüleme
// sırasını belirler; yeni üyeler sona eklenir.
type TeamMember struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Image MediaRef `json:"image"`
	Tags  []string `json:"tags"`
}

// TeamMemberPatch kısmi güncelleme için değiştirilebilir alanları sayar.
// nil alan "dokunma" anlamına gelir. Bilinmeyen alan bu yapıda temsil
// edilemediği için sessizce merge edilmesi de mümkün değildir.
type TeamMemberPatch struct {
	Name  *string
	Role  *string
	Image *MediaRef
	Tags  *[]string
}

// Apply patch'i üyeye uygular.
func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Tags != nil {
		m.Tags = append([]string(nil), *p.Tags...)
	}
}
