package repositories

import (
	"context"
	"errors"
	"time"

	"ilovehiphop.ja/configs/configsdatabase"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
)

// ErrNotConnected is returned when no document store could be opened at startup.
var ErrNotConnected = errors.New("database not connected")

// IDocumentRepository is the document store adapter every service talks to.
type IDocumentRepository interface {
	// CreateDocument inserts doc into collection and returns the generated id.
	CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error)
	// GetDocuments returns the documents matching filter; limit <= 0 means unbounded.
	GetDocuments(ctx context.Context, collection string, filter queryfilter.Filter, limit int) ([]models.Document, error)
	ListCollections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// StoreError wraps a backend failure with the operation that hit it.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Collection + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// NewDocumentRepository returns the repository for the backend opened by
// configsdatabase.InitDB, or nil when no store is available.
func NewDocumentRepository() IDocumentRepository {
	switch configsdatabase.CurrentDriver() {
	case configsdatabase.DriverMongo:
		return NewMongoDocumentRepository(configsdatabase.GetMongoDB())
	case configsdatabase.DriverPostgres, configsdatabase.DriverSQLite:
		return NewGormDocumentRepository(configsdatabase.GetDB())
	}
	return nil
}

// stampDocument copies doc and sets the storage timestamps.
func stampDocument(doc models.Document, now time.Time) models.Document {
	out := make(models.Document, len(doc)+2)
	for k, v := range doc {
		out[k] = v
	}
	now = now.UTC()
	out["created_at"] = now
	out["updated_at"] = now
	return out
}
