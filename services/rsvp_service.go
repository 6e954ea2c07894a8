package services

import (
	"context"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError custom RSVP service errors
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrInvalidPackage RSVPServiceError = "Invalid package"
)

// IRSVPService handles table reservation requests.
type IRSVPService interface {
	CreateRSVP(ctx context.Context, payload models.Document) (string, error)
}

type RSVPService struct {
	repo repositories.IDocumentRepository
}

func NewRSVPService(repo repositories.IDocumentRepository) *RSVPService {
	return &RSVPService{repo: repo}
}

// CreateRSVP stores a pending reservation. The package is checked before the
// reservation is built so an unknown package is reported on its own.
func (s *RSVPService) CreateRSVP(ctx context.Context, payload models.Document) (string, error) {
	req, err := models.DecodeRSVPRequest(payload)
	if err != nil {
		return "", err
	}
	if !models.IsValidRSVPPackage(req.Package) {
		configslog.Log.Warn("RSVP rejected: unknown package", zap.String("package", req.Package))
		return "", ErrInvalidPackage
	}

	rsvp, err := models.NewRSVP(req)
	if err != nil {
		return "", err
	}

	id, err := createDocument(ctx, s.repo, rsvp)
	if err != nil {
		return "", err
	}
	configslog.Log.Info("RSVP created",
		zap.String("id", id),
		zap.String("package", rsvp.Package),
		zap.Int("group_size", rsvp.GroupSize),
	)
	return id, nil
}

var _ IRSVPService = (*RSVPService)(nil)
