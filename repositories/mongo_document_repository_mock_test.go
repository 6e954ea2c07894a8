package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMongoRepository(mt *mtest.T) *MongoDocumentRepository {
	return &MongoDocumentRepository{
		db:  mt.DB,
		now: func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestMongoDocumentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create returns object id", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.CreateDocument(ctx, "mixtape", models.Mixtape{Title: "Golden Era", DJ: "DJ Smooth"}.Document())
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
	})

	mt.Run("create reports write errors", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := repo.CreateDocument(ctx, "mixtape", models.Document{"title": "Golden Era"})
		var storeErr *StoreError
		require.True(mt, errors.As(err, &storeErr))
		assert.Equal(mt, "insert", storeErr.Op)
		assert.Equal(mt, "mixtape", storeErr.Collection)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("find applies limit and normalizes values", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		oid := primitive.NewObjectID()
		date := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".event", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: oid},
				{Key: "title", Value: "Reggae Night"},
				{Key: "date", Value: primitive.NewDateTimeFromTime(date)},
				{Key: "capacity", Value: int32(150)},
				{Key: "tags", Value: bson.A{"reggae", "dancehall"}},
			},
		))

		docs, err := repo.GetDocuments(ctx, "event", queryfilter.Filter{}.Where("is_featured", queryfilter.OpEq, true), 2)
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, oid.Hex(), docs[0]["_id"])
		assert.Equal(mt, date, docs[0]["date"])
		assert.Equal(mt, int64(150), docs[0]["capacity"])
		assert.Equal(mt, []any{"reggae", "dancehall"}, docs[0]["tags"])

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		assert.Equal(mt, int64(2), started.Command.Lookup("limit").AsInt64())
		assert.True(mt, started.Command.Lookup("filter", "is_featured").Boolean())
	})

	mt.Run("find without limit", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".article", mtest.FirstBatch))

		docs, err := repo.GetDocuments(ctx, "article", queryfilter.Filter{}, 0)
		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		_, err = started.Command.LookupErr("limit")
		assert.Error(mt, err)
	})

	mt.Run("find reports command errors", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}))

		_, err := repo.GetDocuments(ctx, "event", queryfilter.Filter{}, 0)
		var storeErr *StoreError
		require.True(mt, errors.As(err, &storeErr))
		assert.Equal(mt, "find", storeErr.Op)
	})

	mt.Run("list collections", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".$cmd.listCollections", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "event"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "partner"}, {Key: "type", Value: "collection"}},
		))

		names, err := repo.ListCollections(ctx)
		require.NoError(mt, err)
		assert.ElementsMatch(mt, []string{"event", "partner"}, names)
	})

	mt.Run("list collections failure", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}))

		_, err := repo.ListCollections(ctx)
		assert.ErrorContains(mt, err, "list collections")
	})

	mt.Run("ping", func(mt *mtest.T) {
		repo := newMockMongoRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repo.Ping(ctx))

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}))
		err := repo.Ping(ctx)
		var storeErr *StoreError
		require.True(mt, errors.As(err, &storeErr))
		assert.Equal(mt, "ping", storeErr.Op)
	})
}
