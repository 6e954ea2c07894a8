package repositories

import (
	"context"
	"encoding/json"
	"time"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormDocumentRepository stores documents of every collection in the documents table,
// as JSONB on PostgreSQL and JSON text on SQLite.
type GormDocumentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormDocumentRepository(db *gorm.DB) IDocumentRepository {
	return &GormDocumentRepository{db: db, now: time.Now}
}

// NewGormDocumentRepositoryTx binds the repository to an open transaction.
func NewGormDocumentRepositoryTx(tx *gorm.DB) IDocumentRepository {
	return &GormDocumentRepository{db: tx, now: time.Now}
}

func (r *GormDocumentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GormDocumentRepository) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	now := r.now().UTC()
	data, err := json.Marshal(stampDocument(doc, now))
	if err != nil {
		return "", storeError("insert", collection, err)
	}

	record := models.DocumentRecord{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       data,
		CreatedAt:  now,
	}
	if err := r.getDB(ctx).Create(&record).Error; err != nil {
		configslog.Log.Error("GormDocumentRepository.CreateDocument: insert failed", zap.String("collection", collection), zap.Error(err))
		return "", storeError("insert", collection, err)
	}
	return record.ID, nil
}

func (r *GormDocumentRepository) GetDocuments(ctx context.Context, collection string, filter queryfilter.Filter, limit int) ([]models.Document, error) {
	conds, err := sqlConditions(r.db.Dialector.Name(), filter)
	if err != nil {
		return nil, storeError("find", collection, err)
	}

	query := r.getDB(ctx).Model(&models.DocumentRecord{}).Where("collection = ?", collection)
	for _, c := range conds {
		query = query.Where(c.query, c.args...)
	}
	query = query.Order("created_at ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []models.DocumentRecord
	if err := query.Find(&records).Error; err != nil {
		configslog.Log.Error("GormDocumentRepository.GetDocuments: query failed", zap.String("collection", collection), zap.Error(err))
		return nil, storeError("find", collection, err)
	}

	docs := make([]models.Document, 0, len(records))
	for _, rec := range records {
		var doc models.Document
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			configslog.Log.Error("GormDocumentRepository.GetDocuments: corrupt document", zap.String("id", rec.ID), zap.Error(err))
			return nil, storeError("decode", collection, err)
		}
		if doc == nil {
			doc = models.Document{}
		}
		doc["_id"] = rec.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *GormDocumentRepository) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := r.getDB(ctx).Model(&models.DocumentRecord{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, storeError("list collections", "", err)
	}
	return names, nil
}

func (r *GormDocumentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return storeError("ping", "", err)
	}
	return storeError("ping", "", sqlDB.PingContext(ctx))
}

// Interface compliance checks
var (
	_ IDocumentRepository = (*GormDocumentRepository)(nil)
	_ IDocumentRepository = (*MongoDocumentRepository)(nil)
)
