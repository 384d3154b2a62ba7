// Package fakes holds in-memory repository and port fakes for tests.
package fakes

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

// UserStore is an in-memory UserRepository. Calls counts every method invocation.
type UserStore struct {
	mu        sync.Mutex
	Users     map[string]*entity.User
	Providers *ProviderStore
	Calls     int
	UpdateErr error
	GetErr    error
	next      int
}

// NewUserStore constructs a UserStore linked to providers, which may be nil.
func NewUserStore(providers *ProviderStore) *UserStore {
	return &UserStore{Users: make(map[string]*entity.User), Providers: providers}
}

// Seed stores u as-is, assigning an id when empty.
func (s *UserStore) Seed(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		s.next++
		u.ID = "user-" + strconv.Itoa(s.next)
	}
	cp := *u
	s.Users[u.ID] = &cp
	return u
}

func (s *UserStore) Create(ctx context.Context, u *entity.User, profile *entity.ProviderProfile) error {
	s.mu.Lock()
	s.Calls++
	for _, existing := range s.Users {
		if existing.Email == u.Email {
			s.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	s.mu.Unlock()
	s.Seed(u)
	if profile != nil && s.Providers != nil {
		profile.UserID = u.ID
		s.Providers.Seed(profile)
	}
	return nil
}

func (s *UserStore) find(match func(*entity.User) bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	ids := make([]string, 0, len(s.Users))
	for id := range s.Users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if u := s.Users[id]; match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.ID == id })
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.find(func(u *entity.User) bool { return u.Email == email })
}

func (s *UserStore) GetByPhone(_ context.Context, phone string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return phone != "" && u.Phone == phone })
}

func (s *UserStore) Update(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if _, ok := s.Users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	s.Users[u.ID] = &cp
	return nil
}

func (s *UserStore) UpdatePassword(_ context.Context, id, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	u, ok := s.Users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (s *UserStore) CountByRole(_ context.Context, role entity.Role) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	n := 0
	for _, u := range s.Users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// Password returns the stored hash for id.
func (s *UserStore) Password(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.Users[id]; ok {
		return u.Password
	}
	return ""
}

// ProviderStore is an in-memory ProviderRepository.
type ProviderStore struct {
	mu       sync.Mutex
	Profiles map[int64]*entity.ProviderProfile
	next     int64
}

func NewProviderStore() *ProviderStore {
	return &ProviderStore{Profiles: make(map[int64]*entity.ProviderProfile)}
}

func (s *ProviderStore) Seed(p *entity.ProviderProfile) *entity.ProviderProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.next++
		p.ID = s.next
	}
	cp := *p
	s.Profiles[p.ID] = &cp
	return p
}

func (s *ProviderStore) GetByID(_ context.Context, id int64) (*entity.ProviderProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *ProviderStore) GetByUserID(_ context.Context, userID string) (*entity.ProviderProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ProviderStore) List(_ context.Context, status entity.VerificationStatus) ([]entity.ProviderProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ProviderProfile, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		if status == "" || p.VerificationStatus == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ProviderStore) SetVerificationStatus(_ context.Context, id int64, status entity.VerificationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Profiles[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.VerificationStatus = status
	return nil
}

func (s *ProviderStore) CountByStatus(ctx context.Context, status entity.VerificationStatus) (int, error) {
	out, _ := s.List(ctx, status)
	return len(out), nil
}

var (
	_ repository.UserRepository     = (*UserStore)(nil)
	_ repository.ProviderRepository = (*ProviderStore)(nil)
)
