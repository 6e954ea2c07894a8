package seeders

import (
	"context"
	"time"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
	"ilovehiphop.ja/repositories"

	"go.uber.org/zap"
)

// seedItem is one sample record plus the field that identifies it across runs.
type seedItem struct {
	keyField string
	keyValue any
	record   models.Record
}

// SeedContent inserts the sample content that is not already present.
// It returns the number of documents created.
func SeedContent(ctx context.Context, repo repositories.IDocumentRepository, now time.Time) (int, error) {
	created := 0
	configslog.SLog.Info("Seeding sample content...")

	for _, item := range sampleContent(now.UTC()) {
		collection := string(item.record.Kind())
		filter := queryfilter.Filter{}.Where(item.keyField, queryfilter.OpEq, item.keyValue)

		existing, err := repo.GetDocuments(ctx, collection, filter, 1)
		if err != nil {
			configslog.Log.Error("Could not check existing seed document",
				zap.String("collection", collection),
				zap.Any(item.keyField, item.keyValue),
				zap.Error(err))
			return created, err
		}
		if len(existing) > 0 {
			configslog.SLog.Debugf("%s '%v' already exists, skipping.", collection, item.keyValue)
			continue
		}

		id, err := repo.CreateDocument(ctx, collection, item.record.Document())
		if err != nil {
			configslog.Log.Error("Could not create seed document",
				zap.String("collection", collection),
				zap.Any(item.keyField, item.keyValue),
				zap.Error(err))
			return created, err
		}
		configslog.SLog.Infof("Created %s '%v' (id: %s)", collection, item.keyValue, id)
		created++
	}

	configslog.SLog.Infof("Seeding finished, %d document(s) created.", created)
	return created, nil
}

// WeekStart returns midnight UTC of the Monday starting t's week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

func sampleContent(now time.Time) []seedItem {
	week := WeekStart(now)
	friday := week.AddDate(0, 0, 4).Add(22 * time.Hour)
	saturday := week.AddDate(0, 0, 5).Add(22 * time.Hour)
	happyHour := week.AddDate(0, 0, 4).Add(20 * time.Hour)

	return []seedItem{
		{"slug", "reggae-fridays", models.Event{
			Title:        "Reggae Fridays",
			Slug:         models.Some("reggae-fridays"),
			Date:         friday,
			Theme:        models.Some("Roots & Culture"),
			Description:  models.Some("Strictly vinyl selections all night."),
			Sponsors:     []string{"Red Stripe"},
			DJs:          []string{"DJ Ricky Trooper", "Selecta Kemist"},
			Tags:         []string{"reggae", "dancehall"},
			IsFeatured:   true,
			VenueName:    models.Some("Hip Hop Lounge"),
			VenueAddress: models.Some("Knutsford Blvd, Kingston"),
		}},
		{"slug", "throwback-saturdays", models.Event{
			Title:      "Throwback Saturdays",
			Slug:       models.Some("throwback-saturdays"),
			Date:       saturday,
			Theme:      models.Some("90s & 2000s Hip Hop"),
			Sponsors:   []string{},
			DJs:        []string{"DJ Smooth"},
			Tags:       []string{"hip-hop", "throwback"},
			IsFeatured: false,
			VenueName:  models.Some("Hip Hop Lounge"),
		}},
		{"slug", "welcome-to-i-love-hip-hop-ja", models.Article{
			Title:   "Welcome to I Love Hip Hop JA",
			Slug:    "welcome-to-i-love-hip-hop-ja",
			Content: "Events, mixtapes and member specials, all in one place.",
			Tags:    []string{"news"},
			Author:  models.Some("ILHH Team"),
		}},
		{"title", "Golden Era Vol. 1", models.Mixtape{
			Title:       "Golden Era Vol. 1",
			DJ:          "DJ Smooth",
			Description: models.Some("Boom bap classics, one take."),
		}},
		{"title", "Dancehall Pressure", models.Mixtape{
			Title: "Dancehall Pressure",
			DJ:    "Selecta Kemist",
		}},
		{"name", "Red Stripe", models.Partner{
			Name:      "Red Stripe",
			Instagram: models.Some("@redstripe"),
			Featured:  true,
		}},
		{"name", "Kingston Kicks", models.Partner{
			Name:      "Kingston Kicks",
			Instagram: models.Some("@kingstonkicks"),
		}},
		{"code", "HAPPYHOUR", models.Coupon{
			Code:       "HAPPYHOUR",
			Title:      models.DefaultCouponTitle,
			MemberOnly: false,
			StartsAt:   week,
			EndsAt:     week.AddDate(0, 0, 7).Add(-time.Second),
		}},
		{"code", "MEMBERS241", models.Coupon{
			Code:       "MEMBERS241",
			Title:      "Members 2-4-1",
			MemberOnly: true,
			StartsAt:   happyHour,
			EndsAt:     happyHour.Add(150 * time.Minute),
		}},
		{"week_of", week, models.Special{
			Title:   models.DefaultSpecialTitle,
			Details: models.DefaultSpecialDetails,
			WeekOf:  week,
		}},
	}
}
