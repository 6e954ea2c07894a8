package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
	"ilovehiphop.ja/pkg/queryparams"
	"ilovehiphop.ja/repositories"
	"ilovehiphop.ja/repositories/repositoriestest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_ListEvents(t *testing.T) {
	repo := repositoriestest.NewMemoryRepository()
	repo.Seed("event",
		models.Document{"title": "Reggae Night", "date": "2024-06-01T22:00:00Z", "tags": []any{"reggae"}, "is_featured": true},
		models.Document{"title": "Trap House", "date": "2024-06-08T22:00:00Z", "tags": []any{"trap"}},
	)
	svc := NewContentService(repo)
	ctx := context.Background()

	events, err := svc.ListEvents(ctx, queryparams.EventParams{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, []string{}, events[1].DJs)

	events, err = svc.ListEvents(ctx, queryparams.EventParams{Featured: models.Some(true)})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Reggae Night", events[0].Title)

	events, err = svc.ListEvents(ctx, queryparams.EventParams{Tag: models.Some("trap")})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Trap House", events[0].Title)
}

func TestContentService_EmptyCollectionIsEmptySlice(t *testing.T) {
	svc := NewContentService(repositoriestest.NewMemoryRepository())

	mixtapes, err := svc.ListMixtapes(context.Background(), queryparams.MixtapeParams{DJ: models.Some("nobody")})
	require.NoError(t, err)
	assert.NotNil(t, mixtapes)
	assert.Empty(t, mixtapes)
}

func TestContentService_ListSpecials(t *testing.T) {
	repo := repositoriestest.NewMemoryRepository()
	for i := 0; i < 5; i++ {
		repo.Seed("special", models.Document{"week_of": time.Date(2024, 6, 3+7*i, 0, 0, 0, 0, time.UTC)})
	}
	svc := NewContentService(repo)

	specials, err := svc.ListSpecials(context.Background(), queryparams.SpecialParams{Limit: queryparams.DefaultSpecialsLimit})
	require.NoError(t, err)
	assert.Len(t, specials, 3)
	assert.Equal(t, 3, repo.LastLimit)
	assert.True(t, repo.LastFilter.IsEmpty())
	assert.Equal(t, models.DefaultSpecialTitle, specials[0].Title)

	_, err = svc.ListSpecials(context.Background(), queryparams.SpecialParams{Limit: 13})
	assert.True(t, models.IsValidationError(err))
}

func TestContentService_ListCoupons(t *testing.T) {
	now := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
	repo := repositoriestest.NewMemoryRepository()
	repo.Seed("coupon",
		models.Document{"code": "PAST", "starts_at": now.Add(-48 * time.Hour), "ends_at": now.Add(-24 * time.Hour)},
		models.Document{"code": "NOW", "starts_at": now.Add(-time.Hour), "ends_at": now.Add(time.Hour)},
		models.Document{"code": "EDGE", "starts_at": now, "ends_at": now},
		models.Document{"code": "SOON", "starts_at": now.Add(time.Hour), "ends_at": now.Add(2 * time.Hour)},
	)
	calls := 0
	svc := NewContentService(repo).WithClock(func() time.Time {
		calls++
		return now
	})

	coupons, err := svc.ListCoupons(context.Background(), queryparams.CouponParams{ActiveOnly: true})
	require.NoError(t, err)
	var codes []string
	for _, c := range coupons {
		codes = append(codes, c.Code)
		assert.True(t, c.ActiveAt(now))
		assert.Equal(t, models.DefaultCouponTitle, c.Title)
	}
	assert.Equal(t, []string{"NOW", "EDGE"}, codes)
	assert.Equal(t, 1, calls)

	all, err := svc.ListCoupons(context.Background(), queryparams.CouponParams{ActiveOnly: false})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, queryfilter.Filter{}, repo.LastFilter)
}

func TestContentService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no store", func(t *testing.T) {
		_, err := NewContentService(nil).ListPartners(ctx, queryparams.PartnerParams{})
		assert.ErrorIs(t, err, repositories.ErrNotConnected)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := repositoriestest.NewMemoryRepository()
		repo.Err = errors.New("connection reset")
		_, err := NewContentService(repo).ListArticles(ctx, queryparams.ArticleParams{})

		var storeErr *repositories.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("invalid stored document", func(t *testing.T) {
		repo := repositoriestest.NewMemoryRepository()
		repo.Seed("partner", models.Document{"logo_url": "https://cdn.example.com/logo.png"})
		_, err := NewContentService(repo).ListPartners(ctx, queryparams.PartnerParams{})

		assert.ErrorIs(t, err, ErrInvalidStoredDocument)
		assert.False(t, models.IsValidationError(err))
	})
}
