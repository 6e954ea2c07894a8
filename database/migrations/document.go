package migrations

import (
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateDocumentsTable creates or updates the documents table used by the SQL backends.
func MigrateDocumentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating documents table...")
	if err := db.AutoMigrate(&models.DocumentRecord{}); err != nil {
		configslog.Log.Error("Failed to migrate documents table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Documents table migrated successfully")
	return nil
}
