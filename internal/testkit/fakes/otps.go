package fakes

import (
	"context"
	"sync"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

// OTPStore is an in-memory OTPRepository. Returned codes are copies.
type OTPStore struct {
	mu        sync.Mutex
	Codes     []*entity.OTPCode
	CreateErr error
	MarkErr   error
	next      int64
}

func NewOTPStore() *OTPStore {
	return &OTPStore{}
}

func (s *OTPStore) Create(_ context.Context, otp *entity.OTPCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.next++
	otp.ID = s.next
	cp := *otp
	s.Codes = append(s.Codes, &cp)
	return nil
}

func (s *OTPStore) FindLatestUnused(_ context.Context, userID, code string) (*entity.OTPCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *entity.OTPCode
	for _, c := range s.Codes {
		if c.UserID != userID || c.Code != code || c.Used {
			continue
		}
		if best == nil || c.CreatedAt.After(best.CreatedAt) || (c.CreatedAt.Equal(best.CreatedAt) && c.ID > best.ID) {
			best = c
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (s *OTPStore) MarkUsed(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MarkErr != nil {
		return s.MarkErr
	}
	for _, c := range s.Codes {
		if c.ID == id {
			c.Used = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// Get returns a copy of the stored code with id.
func (s *OTPStore) Get(id int64) (entity.OTPCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.Codes {
		if c.ID == id {
			return *c, true
		}
	}
	return entity.OTPCode{}, false
}

func (s *OTPStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Codes)
}

var _ repository.OTPRepository = (*OTPStore)(nil)
