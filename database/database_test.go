package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
	"ilovehiphop.ja/repositories"
	"ilovehiphop.ja/repositories/repositoriestest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestInitializeSQL(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 6, 15, 0, 0, 0, time.UTC)

	require.NoError(t, InitializeSQL(ctx, db, true, true, now))
	assert.True(t, db.Migrator().HasTable(&models.DocumentRecord{}))

	var count int64
	require.NoError(t, db.Model(&models.DocumentRecord{}).Count(&count).Error)
	assert.Positive(t, count)

	require.NoError(t, InitializeSQL(ctx, db, true, true, now))
	var again int64
	require.NoError(t, db.Model(&models.DocumentRecord{}).Count(&again).Error)
	assert.Equal(t, count, again)

	repo := repositories.NewGormDocumentRepository(db)
	docs, err := repo.GetDocuments(ctx, "event", queryfilter.Filter{}.Where("is_featured", queryfilter.OpEq, true), 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "reggae-fridays", docs[0]["slug"])
}

func TestInitializeSQLRollsBackOnFailure(t *testing.T) {
	db := openSQLite(t)

	// seeding without a migrated table fails and leaves nothing behind
	err := InitializeSQL(context.Background(), db, false, true, time.Now())
	assert.Error(t, err)
	assert.False(t, db.Migrator().HasTable(&models.DocumentRecord{}))
}

func TestInitializeNothingRequested(t *testing.T) {
	assert.NoError(t, Initialize(context.Background(), false, false))
}

func TestReadDocuments(t *testing.T) {
	docs, err := ReadDocuments(strings.NewReader(`[{"title":"a","plays":3},{"title":"b"}]`))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0]["title"])

	docs, err = ReadDocuments(strings.NewReader(` {"code":"HH"} `))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = ReadDocuments(strings.NewReader(`"just a string"`))
	assert.Error(t, err)
}

func TestImportDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("valid batch", func(t *testing.T) {
		repo := repositoriestest.NewMemoryRepository()
		docs, err := ReadDocuments(strings.NewReader(`[
			{"title":"Golden Era","dj":"DJ Smooth","plays":3},
			{"title":"Pressure","dj":"Selecta Kemist","extra":"ignored"}
		]`))
		require.NoError(t, err)

		ids, err := ImportDocuments(ctx, repo, models.KindMixtape, docs)
		require.NoError(t, err)
		assert.Len(t, ids, 2)

		stored := repo.Documents("mixtape")
		require.Len(t, stored, 2)
		assert.Equal(t, 3, stored[0]["plays"])
		assert.Equal(t, 0, stored[1]["plays"])
		assert.NotContains(t, stored[1], "extra")
	})

	t.Run("one invalid record rejects the batch", func(t *testing.T) {
		repo := repositoriestest.NewMemoryRepository()
		docs := []models.Document{
			{"name": "Red Stripe"},
			{"logo_url": "not-a-url"},
		}

		_, err := ImportDocuments(ctx, repo, models.KindPartner, docs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")
		assert.Empty(t, repo.Documents("partner"))
	})

	t.Run("conversion kinds are not importable", func(t *testing.T) {
		_, err := ImportDocuments(ctx, repositoriestest.NewMemoryRepository(), models.KindMember, []models.Document{{"email": "a@b.com"}})
		assert.Error(t, err)
	})

	t.Run("no store", func(t *testing.T) {
		_, err := ImportDocuments(ctx, nil, models.KindSpecial, []models.Document{{"week_of": "2024-06-03"}})
		assert.ErrorIs(t, err, repositories.ErrNotConnected)
	})
}
