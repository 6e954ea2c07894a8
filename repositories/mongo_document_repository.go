package repositories

import (
	"context"
	"fmt"
	"time"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoDocumentRepository keeps each kind in its own MongoDB collection.
type MongoDocumentRepository struct {
	db  *mongo.Database
	now func() time.Time
}

func NewMongoDocumentRepository(db *mongo.Database) IDocumentRepository {
	return &MongoDocumentRepository{db: db, now: time.Now}
}

func (r *MongoDocumentRepository) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, bson.M(stampDocument(doc, r.now())))
	if err != nil {
		configslog.Log.Error("MongoDocumentRepository.CreateDocument: insert failed", zap.String("collection", collection), zap.Error(err))
		return "", storeError("insert", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (r *MongoDocumentRepository) GetDocuments(ctx context.Context, collection string, filter queryfilter.Filter, limit int) ([]models.Document, error) {
	if err := filter.Validate(); err != nil {
		return nil, storeError("find", collection, err)
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.db.Collection(collection).Find(ctx, mongoFilter(filter), opts)
	if err != nil {
		configslog.Log.Error("MongoDocumentRepository.GetDocuments: find failed", zap.String("collection", collection), zap.Error(err))
		return nil, storeError("find", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		configslog.Log.Error("MongoDocumentRepository.GetDocuments: cursor failed", zap.String("collection", collection), zap.Error(err))
		return nil, storeError("find", collection, err)
	}

	docs := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, normalizeMongoMap(m))
	}
	return docs, nil
}

func (r *MongoDocumentRepository) ListCollections(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, storeError("list collections", "", err)
	}
	return names, nil
}

func (r *MongoDocumentRepository) Ping(ctx context.Context) error {
	return storeError("ping", "", r.db.Client().Ping(ctx, readpref.Primary()))
}

// mongoFilter translates a backend-neutral filter into a query document.
func mongoFilter(f queryfilter.Filter) bson.M {
	out := bson.M{}
	for _, c := range f.Conditions {
		if c.Op == queryfilter.OpEq {
			if ops, ok := out[c.Field].(bson.M); ok {
				ops["$eq"] = c.Value
			} else {
				out[c.Field] = c.Value
			}
			continue
		}

		ops, ok := out[c.Field].(bson.M)
		if !ok {
			ops = bson.M{}
			if existing, present := out[c.Field]; present {
				ops["$eq"] = existing
			}
			out[c.Field] = ops
		}
		switch c.Op {
		case queryfilter.OpContains:
			ops["$in"] = bson.A{c.Value}
		case queryfilter.OpLte:
			ops["$lte"] = c.Value
		case queryfilter.OpGte:
			ops["$gte"] = c.Value
		}
	}
	return out
}

func normalizeMongoMap(m map[string]any) models.Document {
	doc := make(models.Document, len(m))
	for k, v := range m {
		doc[k] = normalizeMongoValue(v)
	}
	return doc
}

// normalizeMongoValue turns driver types into plain Go values the models understand.
func normalizeMongoValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.Decimal128:
		return t.String()
	case int32:
		return int64(t)
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeMongoValue(item)
		}
		return out
	case primitive.M:
		return map[string]any(normalizeMongoMap(t))
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = e.Value
		}
		return map[string]any(normalizeMongoMap(m))
	}
	return v
}
