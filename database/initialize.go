package database

import (
	"context"
	"errors"
	"time"

	"ilovehiphop.ja/configs/configsdatabase"
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/database/migrations"
	"ilovehiphop.ja/database/seeders"
	"ilovehiphop.ja/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when InitDB did not open any store.
var ErrNoDatabase = errors.New("no database available")

// Initialize runs the migrations and/or the seeders against the store opened by
// configsdatabase.InitDB. On the SQL backends both steps share one transaction.
func Initialize(ctx context.Context, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return nil
	}

	configslog.SLog.Info("Database initialization starting...")

	var err error
	switch configsdatabase.CurrentDriver() {
	case configsdatabase.DriverPostgres, configsdatabase.DriverSQLite:
		err = InitializeSQL(ctx, configsdatabase.GetDB(), migrate, seed, time.Now())
	case configsdatabase.DriverMongo:
		err = initializeMongo(ctx, migrate, seed, time.Now())
	default:
		err = ErrNoDatabase
		if initErr := configsdatabase.InitError(); initErr != nil {
			err = errors.Join(ErrNoDatabase, initErr)
		}
	}
	if err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// InitializeSQL migrates and seeds a GORM database inside a single transaction.
func InitializeSQL(ctx context.Context, db *gorm.DB, migrate bool, seed bool, now time.Time) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info(" -> Running migrations...")
			if err := migrations.MigrateDocumentsTable(tx); err != nil {
				return err
			}
		} else {
			configslog.SLog.Info("Migrate flag not set, skipping migrations.")
		}

		if seed {
			configslog.SLog.Info(" -> Running seeders...")
			if _, err := seeders.SeedContent(ctx, repositories.NewGormDocumentRepositoryTx(tx), now); err != nil {
				return err
			}
		} else {
			configslog.SLog.Info("Seed flag not set, skipping seeders.")
		}
		return nil
	})
}

func initializeMongo(ctx context.Context, migrate bool, seed bool, now time.Time) error {
	db := configsdatabase.GetMongoDB()
	if migrate {
		configslog.SLog.Info(" -> Creating collections and indexes...")
		if err := migrations.MigrateMongoCollections(ctx, db); err != nil {
			return err
		}
	}
	if seed {
		configslog.SLog.Info(" -> Running seeders...")
		if _, err := seeders.SeedContent(ctx, repositories.NewMongoDocumentRepository(db), now); err != nil {
			return err
		}
	}
	return nil
}
