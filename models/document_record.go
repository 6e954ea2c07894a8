package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DocumentRecord stores one document of any collection in the SQL backends.
type DocumentRecord struct {
	ID         string       `gorm:"type:varchar(36);primaryKey"`
	Collection string       `gorm:"type:varchar(64);not null;index:idx_documents_collection_created"`
	Data       JSONDocument `gorm:"not null"`
	CreatedAt  time.Time    `gorm:"not null;index:idx_documents_collection_created"`
}

func (DocumentRecord) TableName() string {
	return "documents"
}

// JSONDocument is a raw JSON object column: JSONB on PostgreSQL, JSON text elsewhere.
type JSONDocument []byte

func (j JSONDocument) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONDocument) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONDocument(v)
	default:
		return fmt.Errorf("JSONDocument: unsupported scan type %T", value)
	}
	return nil
}

func (JSONDocument) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "JSON"
}

func (JSONDocument) GormDataType() string {
	return "json"
}
