package configsdatabase

import (
	"context"
	"errors"
	"strings"

	"ilovehiphop.ja/configs/configsapp"
	"ilovehiphop.ja/configs/configslog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Driver names the document store backend selected by DATABASE_URL.
type Driver string

const (
	DriverNone     Driver = ""
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

var (
	ErrDatabaseURLNotSet  = errors.New("DATABASE_URL is not set")
	ErrDatabaseNameNotSet = errors.New("DATABASE_NAME is not set")
	ErrUnsupportedURL     = errors.New("unsupported DATABASE_URL scheme")
)

var (
	driver      Driver
	db          *gorm.DB
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	initErr     error
)

// DriverFromURL picks the backend from the connection string scheme.
func DriverFromURL(url string) Driver {
	switch {
	case url == "":
		return DriverNone
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return DriverSQLite
	default:
		return DriverNone
	}
}

// InitDB opens the configured store. Failures are logged and remembered, never fatal:
// the process keeps serving and reports the degraded state on the diagnostic endpoint.
func InitDB(cfg *configsapp.Config) {
	driver, db, mongoClient, mongoDB, initErr = DriverNone, nil, nil, nil, nil

	if !cfg.DatabaseURLSet() {
		initErr = ErrDatabaseURLNotSet
		configslog.SLog.Warn("DATABASE_URL not set, running without a database")
		return
	}

	switch d := DriverFromURL(cfg.DatabaseURL); d {
	case DriverMongo:
		if cfg.DatabaseName == "" {
			initErr = ErrDatabaseNameNotSet
			configslog.SLog.Warn("DATABASE_NAME not set, MongoDB database not selected")
			return
		}
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.DatabaseURL))
		if err != nil {
			initErr = err
			configslog.Log.Error("MongoDB client could not be created", zap.Error(err))
			return
		}
		driver, mongoClient, mongoDB = d, client, client.Database(cfg.DatabaseName)
		configslog.Log.Info("MongoDB client ready", zap.String("database", cfg.DatabaseName))

	case DriverPostgres, DriverSQLite:
		var dialector gorm.Dialector
		if d == DriverPostgres {
			dialector = postgres.Open(cfg.DatabaseURL)
		} else {
			dialector = sqlite.Open(strings.TrimPrefix(cfg.DatabaseURL, "sqlite://"))
		}
		conn, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			initErr = err
			configslog.Log.Error("SQL database connection failed", zap.String("driver", string(d)), zap.Error(err))
			return
		}
		driver, db = d, conn
		configslog.Log.Info("SQL database connected", zap.String("driver", string(d)))

	default:
		initErr = ErrUnsupportedURL
		configslog.SLog.Warn("DATABASE_URL scheme not supported, running without a database")
	}
}

// CurrentDriver returns the backend opened by InitDB, or DriverNone.
func CurrentDriver() Driver {
	return driver
}

// GetDB returns the GORM handle for the SQL backends, nil otherwise.
func GetDB() *gorm.DB {
	return db
}

// GetMongoDB returns the selected MongoDB database, nil otherwise.
func GetMongoDB() *mongo.Database {
	return mongoDB
}

// InitError is the reason InitDB left the store unopened, if any.
func InitError() error {
	return initErr
}

// CloseDB releases the store connections.
func CloseDB() {
	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			configslog.Log.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				configslog.Log.Error("SQL database close failed", zap.Error(err))
			}
		}
	}
	configslog.SLog.Info("Database connections closed")
}
