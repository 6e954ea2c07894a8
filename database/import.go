package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/repositories"

	"go.uber.org/multierr"
)

// importableKinds are the content kinds managed out of band; members and
// reservations only arrive through the public endpoints.
var importableKinds = map[models.Kind]bool{
	models.KindEvent:   true,
	models.KindArticle: true,
	models.KindMixtape: true,
	models.KindPartner: true,
	models.KindCoupon:  true,
	models.KindSpecial: true,
}

// ReadDocuments decodes a JSON array of objects, or a single object.
func ReadDocuments(r io.Reader) ([]models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("[")) {
		var docs []models.Document
		if err := decodeJSON(data, &docs); err != nil {
			return nil, fmt.Errorf("expected an array of objects: %w", err)
		}
		return docs, nil
	}

	var single models.Document
	if err := decodeJSON(data, &single); err != nil {
		return nil, fmt.Errorf("expected a JSON object or an array of objects: %w", err)
	}
	return []models.Document{single}, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// ImportDocuments validates every raw document first and inserts them only if all pass.
func ImportDocuments(ctx context.Context, repo repositories.IDocumentRepository, kind models.Kind, raws []models.Document) ([]string, error) {
	if !importableKinds[kind] {
		return nil, fmt.Errorf("kind %q cannot be imported", kind)
	}
	if repo == nil {
		return nil, &repositories.StoreError{Op: "insert", Collection: string(kind), Err: repositories.ErrNotConnected}
	}

	records := make([]models.Record, 0, len(raws))
	var errs error
	for i, raw := range raws {
		rec, err := models.Validate(kind, raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		records = append(records, rec)
	}
	if errs != nil {
		return nil, errs
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		id, err := repo.CreateDocument(ctx, string(kind), rec.Document())
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	configslog.SLog.Infof("Imported %d %s document(s).", len(ids), kind)
	return ids, nil
}
