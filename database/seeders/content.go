package seeders

import (
	"encoding/json"
	"errors"

	"zanaat.studio/configs/configslog"
	"zanaat.studio/content"
	"zanaat.studio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedContentSnapshots üç içerik anahtarını, yalnızca henüz mevcut
// değillerse seed verisiyle doldurur. İçerik deposu kayıt yokken zaten
// seed'e düştüğü için bu adım davranışı değiştirmez; sadece depo durumunu
// açılıştan itibaren görünür kılar. Mevcut düzenlemelere asla dokunulmaz.
func SeedContentSnapshots(db *gorm.DB) error {
	entries := []struct {
		key   string
		value interface{}
	}{
		{models.SnapshotKeyCompany, content.CompanyInfo},
		{models.SnapshotKeyTeam, content.TeamMembers},
		{models.SnapshotKeyPortfolio, content.PortfolioData},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("İçerik anlık görüntüsü seed işlemi başlıyor...")

	for _, entry := range entries {
		var existing models.ContentSnapshot
		result := db.Where("key = ?", entry.key).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Anahtar '%s' zaten mevcut, oluşturma atlanıyor.", entry.key)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Anahtar kontrol edilirken veritabanı hatası",
				zap.String("key", entry.key),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		raw, err := json.Marshal(entry.value)
		if err != nil {
			configslog.Log.Error("Seed verisi JSON'a çevrilemedi", zap.String("key", entry.key), zap.Error(err))
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Anahtar '%s' oluşturuluyor...", entry.key)
		if err := db.Create(&models.ContentSnapshot{Key: entry.key, Value: raw}).Error; err != nil {
			configslog.Log.Error("Anahtar oluşturulamadı", zap.String("key", entry.key), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet içerik anahtarı seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm içerik anahtarları zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("içerik anahtarları seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("İçerik anlık görüntüsü seed işlemi başarıyla tamamlandı.")
	return nil
}
