package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

// ProviderService is the admin view over provider profiles.
type ProviderService struct {
	Providers repo.ProviderRepository
	Users     repo.UserRepository
	Index     *ProviderIndex
	Logger    *logrus.Logger
}

func NewProviderService(providers repo.ProviderRepository, users repo.UserRepository, index *ProviderIndex, logger *logrus.Logger) *ProviderService {
	return &ProviderService{Providers: providers, Users: users, Index: index, Logger: logger}
}

// List returns profiles, optionally filtered by verification status.
func (s *ProviderService) List(ctx context.Context, status string) ([]entity.ProviderProfile, error) {
	st := entity.VerificationStatus(status)
	if st != "" && !st.Valid() {
		return nil, ErrInvalidStatus
	}
	out, err := s.Providers.List(ctx, st)
	if err != nil {
		return nil, apperror.Internal("list providers", err)
	}
	return out, nil
}

func (s *ProviderService) Get(ctx context.Context, id int64) (*entity.ProviderProfile, error) {
	p, err := s.Providers.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound, "get provider")
	}
	return p, nil
}

// SetStatus records an admin verification decision and refreshes the search document.
func (s *ProviderService) SetStatus(ctx context.Context, id int64, status string) (*entity.ProviderProfile, error) {
	st := entity.VerificationStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.Providers.SetVerificationStatus(ctx, id, st); err != nil {
		return nil, notFoundAs(err, ErrNotFound, "set provider status")
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"provider_id": id, "status": st}).Info("provider status changed")
	}
	if s.Index.Enabled() {
		if u, uErr := s.Users.GetByID(ctx, p.UserID); uErr == nil {
			s.Index.Put(ctx, u, p)
		}
	}
	return p, nil
}

func (s *ProviderService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if q == "" {
		return []map[string]any{}, nil
	}
	out, err := s.Index.Search(ctx, q, size)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("provider search failed")
		}
		return nil, apperror.Internal("search providers", err)
	}
	return out, nil
}
