package models

// ContentSnapshot kalıcı anahtar/değer tablosunun satırı. Her içerik varlığı
// (şirket bilgisi, ekip listesi, portfolyo listesi) ve senkronizasyon ayarları
// kendi anahtarı altında tek bir JSON değeri olarak saklanır. Şema/versiyon
// yönetimi yoktur; çözümlenemeyen değer seed verisine düşülerek yok sayılır.
type ContentSnapshot struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Value []byte `gorm:"type:jsonb;not null"`
}

// Kalıcı depo anahtarları.
const (
	SnapshotKeyCompany   = "zanaat_company"
	SnapshotKeyTeam      = "zanaat_team"
	SnapshotKeyPortfolio = "zanaat_portfolio"

	SnapshotKeySyncToken = "zanaat_sync_token"
	SnapshotKeySyncOwner = "zanaat_sync_owner"
	SnapshotKeySyncRepo  = "zanaat_sync_repo"
	SnapshotKeySyncPath  = "zanaat_sync_path"
)
