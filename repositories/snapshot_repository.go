package repositories

import (
	"errors"

	"zanaat.studio/configs/configsdatabase"
	"zanaat.studio/configs/configslog"
	"zanaat.studio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

// ISnapshotRepository kalıcı anahtar/değer deposu işlemleri için arayüz.
// Her Set çağrısı tek bir anahtarı atomik olarak yazar; anahtarlar arası
// transaction yoktur (her içerik varlığı bağımsız saklanır).
type ISnapshotRepository interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// SnapshotRepository ISnapshotRepository arayüzünü GORM üzerinde uygular.
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository yeni bir SnapshotRepository örneği oluşturur.
func NewSnapshotRepository() ISnapshotRepository {
	return &SnapshotRepository{db: configsdatabase.GetDB()}
}

// NewSnapshotRepositoryWithDB verilen bağlantıyla repository oluşturur
// (migrasyon CLI ve seeder gibi GetDB dışı çağıranlar için).
func NewSnapshotRepositoryWithDB(db *gorm.DB) ISnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get anahtarın mevcut değerini döndürür; yoksa ErrNotFound.
func (r *SnapshotRepository) Get(key string) ([]byte, error) {
	var snap models.ContentSnapshot
	err := r.db.Where("key = ?", key).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("SnapshotRepository.Get: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return snap.Value, nil
}

// Set anahtarı tek bir upsert ile yazar (son yazan kazanır).
func (r *SnapshotRepository) Set(key string, value []byte) error {
	snap := models.ContentSnapshot{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		configslog.Log.Error("SnapshotRepository.Set: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

// Delete anahtarı siler; anahtarın yokluğu hata değildir.
func (r *SnapshotRepository) Delete(key string) error {
	err := r.db.Where("key = ?", key).Delete(&models.ContentSnapshot{}).Error
	if err != nil {
		configslog.Log.Error("SnapshotRepository.Delete: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

// Arayüz uyumluluğu kontrolü
var _ ISnapshotRepository = (*SnapshotRepository)(nil)
