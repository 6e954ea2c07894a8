package services

import (
	"context"
	"fmt"
	"time"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
	"ilovehiphop.ja/pkg/queryparams"
	"ilovehiphop.ja/repositories"

	"go.uber.org/zap"
)

// ContentServiceError custom content service errors
type ContentServiceError string

func (e ContentServiceError) Error() string { return string(e) }

const (
	ErrInvalidStoredDocument ContentServiceError = "stored document failed validation"
)

// IContentService lists the public promotional content.
type IContentService interface {
	ListEvents(ctx context.Context, params queryparams.EventParams) ([]models.Event, error)
	ListArticles(ctx context.Context, params queryparams.ArticleParams) ([]models.Article, error)
	ListMixtapes(ctx context.Context, params queryparams.MixtapeParams) ([]models.Mixtape, error)
	ListPartners(ctx context.Context, params queryparams.PartnerParams) ([]models.Partner, error)
	ListSpecials(ctx context.Context, params queryparams.SpecialParams) ([]models.Special, error)
	ListCoupons(ctx context.Context, params queryparams.CouponParams) ([]models.Coupon, error)
}

// ContentService implements IContentService.
type ContentService struct {
	repo repositories.IDocumentRepository
	now  func() time.Time
}

// NewContentService builds the service on repo; a nil repo means no store is connected.
func NewContentService(repo repositories.IDocumentRepository) *ContentService {
	return &ContentService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used for the active coupon window.
func (s *ContentService) WithClock(now func() time.Time) *ContentService {
	s.now = now
	return s
}

func (s *ContentService) ListEvents(ctx context.Context, params queryparams.EventParams) ([]models.Event, error) {
	return listDocuments(ctx, s.repo, models.KindEvent, queryfilter.Events(params), 0, models.DecodeEvent)
}

func (s *ContentService) ListArticles(ctx context.Context, params queryparams.ArticleParams) ([]models.Article, error) {
	return listDocuments(ctx, s.repo, models.KindArticle, queryfilter.Articles(params), 0, models.DecodeArticle)
}

func (s *ContentService) ListMixtapes(ctx context.Context, params queryparams.MixtapeParams) ([]models.Mixtape, error) {
	return listDocuments(ctx, s.repo, models.KindMixtape, queryfilter.Mixtapes(params), 0, models.DecodeMixtape)
}

func (s *ContentService) ListPartners(ctx context.Context, params queryparams.PartnerParams) ([]models.Partner, error) {
	return listDocuments(ctx, s.repo, models.KindPartner, queryfilter.Partners(params), 0, models.DecodePartner)
}

func (s *ContentService) ListSpecials(ctx context.Context, params queryparams.SpecialParams) ([]models.Special, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return listDocuments(ctx, s.repo, models.KindSpecial, queryfilter.Specials(), params.Limit, models.DecodeSpecial)
}

// ListCoupons reads the clock once so both window bounds use the same instant.
func (s *ContentService) ListCoupons(ctx context.Context, params queryparams.CouponParams) ([]models.Coupon, error) {
	now := s.now().UTC()
	return listDocuments(ctx, s.repo, models.KindCoupon, queryfilter.Coupons(params, now), 0, models.DecodeCoupon)
}

// listDocuments runs one store read and maps every document through decode, which
// drops storage fields such as "_id" and fills defaults.
func listDocuments[T any](
	ctx context.Context,
	repo repositories.IDocumentRepository,
	kind models.Kind,
	filter queryfilter.Filter,
	limit int,
	decode func(models.Document) (T, error),
) ([]T, error) {
	if repo == nil {
		return nil, &repositories.StoreError{Op: "find", Collection: string(kind), Err: repositories.ErrNotConnected}
	}

	docs, err := repo.GetDocuments(ctx, string(kind), filter, limit)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, decodeErr := decode(doc)
		if decodeErr != nil {
			configslog.Log.Error("Stored document failed validation",
				zap.String("collection", string(kind)),
				zap.Any("id", doc["_id"]),
				zap.Error(decodeErr),
			)
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidStoredDocument, kind, decodeErr)
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ IContentService = (*ContentService)(nil)
