package migrations

import (
	"context"
	"errors"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// mongoIndexes backs the filters the read endpoints use.
var mongoIndexes = map[models.Kind][]mongo.IndexModel{
	models.KindEvent: {
		{Keys: bson.D{{Key: "tags", Value: 1}}, Options: options.Index().SetName("idx_event_tags")},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}, Options: options.Index().SetName("idx_event_is_featured")},
	},
	models.KindArticle: {
		{Keys: bson.D{{Key: "tags", Value: 1}}, Options: options.Index().SetName("idx_article_tags")},
	},
	models.KindMixtape: {
		{Keys: bson.D{{Key: "dj", Value: 1}}, Options: options.Index().SetName("idx_mixtape_dj")},
	},
	models.KindPartner: {
		{Keys: bson.D{{Key: "featured", Value: 1}}, Options: options.Index().SetName("idx_partner_featured")},
	},
	models.KindCoupon: {
		{Keys: bson.D{{Key: "starts_at", Value: 1}, {Key: "ends_at", Value: 1}}, Options: options.Index().SetName("idx_coupon_window")},
	},
}

// MigrateMongoCollections creates the missing collections and their indexes.
func MigrateMongoCollections(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		configslog.Log.Error("Could not list MongoDB collections", zap.Error(err))
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range models.Collections() {
		if have[name] {
			configslog.SLog.Debugf("Collection '%s' already exists, skipping creation.", name)
		} else {
			configslog.SLog.Infof("Creating collection '%s'...", name)
			if err := db.CreateCollection(ctx, name); err != nil {
				var cmdErr mongo.CommandError
				// NamespaceExists: created concurrently by another process
				if !errors.As(err, &cmdErr) || cmdErr.Code != 48 {
					configslog.Log.Error("Failed to create collection", zap.String("collection", name), zap.Error(err))
					return err
				}
			}
		}

		indexes := mongoIndexes[models.Kind(name)]
		if len(indexes) == 0 {
			continue
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			configslog.Log.Error("Failed to create indexes", zap.String("collection", name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Indexes ensured for '%s' (%d).", name, len(indexes))
	}
	return nil
}
