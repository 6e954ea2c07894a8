package services

import (
	"context"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/repositories"

	"go.uber.org/zap"
)

// IMembershipService handles the membership signup conversion.
type IMembershipService interface {
	Signup(ctx context.Context, payload models.Document) (string, error)
}

type MembershipService struct {
	repo repositories.IDocumentRepository
}

func NewMembershipService(repo repositories.IDocumentRepository) *MembershipService {
	return &MembershipService{repo: repo}
}

// Signup stores a new standard-tier member. Emails are not deduplicated: signing up
// twice creates two members.
func (s *MembershipService) Signup(ctx context.Context, payload models.Document) (string, error) {
	signup, err := models.DecodeMembershipSignup(payload)
	if err != nil {
		return "", err
	}
	member := models.NewMember(signup)

	id, err := createDocument(ctx, s.repo, member)
	if err != nil {
		return "", err
	}
	configslog.Log.Info("Member signed up", zap.String("id", id), zap.String("tier", string(member.Tier)))
	return id, nil
}

// createDocument is the single write every conversion performs.
func createDocument(ctx context.Context, repo repositories.IDocumentRepository, rec models.Record) (string, error) {
	collection := string(rec.Kind())
	if repo == nil {
		return "", &repositories.StoreError{Op: "insert", Collection: collection, Err: repositories.ErrNotConnected}
	}
	id, err := repo.CreateDocument(ctx, collection, rec.Document())
	if err != nil {
		configslog.Log.Error("Document could not be created", zap.String("collection", collection), zap.Error(err))
		return "", err
	}
	return id, nil
}

var _ IMembershipService = (*MembershipService)(nil)
