package migrations

import (
	"zanaat.studio/configs/configslog"
	"zanaat.studio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContentSnapshotsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating content_snapshots table...")
	err := db.AutoMigrate(&models.ContentSnapshot{})
	if err != nil {
		configslog.Log.Error("Failed to migrate content_snapshots table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Content_snapshots table migrated successfully")
	return nil
}
