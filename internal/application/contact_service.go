package application

import (
	"context"
	"strings"
	"time"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

type ContactService struct {
	Contacts repo.ContactRepository
	Now      func() time.Time
}

func NewContactService(contacts repo.ContactRepository) *ContactService {
	return &ContactService{Contacts: contacts, Now: time.Now}
}

// Submit stores a public inquiry as unread.
func (s *ContactService) Submit(ctx context.Context, m *entity.ContactMessage) error {
	m.FullName = strings.TrimSpace(m.FullName)
	m.Message = strings.TrimSpace(m.Message)
	if m.FullName == "" || m.Email == "" || m.Message == "" {
		return ErrMissingFields
	}
	m.SubmittedAt = s.Now().UTC()
	m.Status = entity.ContactStatusUnread
	if err := s.Contacts.Create(ctx, m); err != nil {
		return apperror.Internal("save contact message", err)
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	out, err := s.Contacts.List(ctx)
	if err != nil {
		return nil, apperror.Internal("list contact messages", err)
	}
	return out, nil
}
