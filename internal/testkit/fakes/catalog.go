package fakes

import (
	"context"
	"sort"
	"sync"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

// LocationStore is an in-memory LocationRepository. Deleting a state drops its cities.
type LocationStore struct {
	mu     sync.Mutex
	States map[int64]entity.State
	Cities map[int64]entity.City
	next   int64
}

func NewLocationStore() *LocationStore {
	return &LocationStore{States: map[int64]entity.State{}, Cities: map[int64]entity.City{}}
}

func (s *LocationStore) ListStates(context.Context) ([]entity.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.State, 0, len(s.States))
	for _, st := range s.States {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *LocationStore) GetState(_ context.Context, id int64) (*entity.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.States[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &st, nil
}

func (s *LocationStore) CreateState(_ context.Context, st *entity.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	st.ID = s.next
	s.States[st.ID] = *st
	return nil
}

func (s *LocationStore) UpdateState(_ context.Context, st *entity.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.States[st.ID]; !ok {
		return repository.ErrNotFound
	}
	s.States[st.ID] = *st
	return nil
}

func (s *LocationStore) DeleteState(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.States[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.States, id)
	for cid, c := range s.Cities {
		if c.StateID == id {
			delete(s.Cities, cid)
		}
	}
	return nil
}

func (s *LocationStore) ListCities(context.Context) ([]entity.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.City, 0, len(s.Cities))
	for _, c := range s.Cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *LocationStore) GetCity(_ context.Context, id int64) (*entity.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Cities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *LocationStore) CreateCity(_ context.Context, c *entity.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	c.ID = s.next
	s.Cities[c.ID] = *c
	return nil
}

func (s *LocationStore) UpdateCity(_ context.Context, c *entity.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Cities[c.ID]; !ok {
		return repository.ErrNotFound
	}
	s.Cities[c.ID] = *c
	return nil
}

func (s *LocationStore) DeleteCity(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Cities[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.Cities, id)
	return nil
}

// CatalogStore is an in-memory CatalogRepository with unique slugs.
type CatalogStore struct {
	mu       sync.Mutex
	Services map[int64]entity.Service
	Options  map[int64]entity.ServiceOption
	next     int64
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{Services: map[int64]entity.Service{}, Options: map[int64]entity.ServiceOption{}}
}

func (s *CatalogStore) withOptions(svc entity.Service) entity.Service {
	svc.Options = []entity.ServiceOption{}
	for _, o := range s.sortedOptions() {
		if o.ServiceID == svc.ID {
			svc.Options = append(svc.Options, o)
		}
	}
	return svc
}

func (s *CatalogStore) sortedOptions() []entity.ServiceOption {
	out := make([]entity.ServiceOption, 0, len(s.Options))
	for _, o := range s.Options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *CatalogStore) slugTaken(slug string, except int64) bool {
	for _, svc := range s.Services {
		if svc.Slug == slug && svc.ID != except {
			return true
		}
	}
	return false
}

func (s *CatalogStore) ListServices(context.Context) ([]entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Service, 0, len(s.Services))
	for _, svc := range s.Services {
		out = append(out, s.withOptions(svc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CatalogStore) GetService(_ context.Context, id int64) (*entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.Services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	svc = s.withOptions(svc)
	return &svc, nil
}

func (s *CatalogStore) CreateService(_ context.Context, svc *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slugTaken(svc.Slug, 0) {
		return repository.ErrDuplicate
	}
	s.next++
	svc.ID = s.next
	stored := *svc
	stored.Options = nil
	s.Services[svc.ID] = stored
	return nil
}

func (s *CatalogStore) UpdateService(_ context.Context, svc *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Services[svc.ID]; !ok {
		return repository.ErrNotFound
	}
	if s.slugTaken(svc.Slug, svc.ID) {
		return repository.ErrDuplicate
	}
	stored := *svc
	stored.Options = nil
	s.Services[svc.ID] = stored
	return nil
}

func (s *CatalogStore) DeleteService(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.Services, id)
	for oid, o := range s.Options {
		if o.ServiceID == id {
			delete(s.Options, oid)
		}
	}
	return nil
}

func (s *CatalogStore) ListOptions(context.Context) ([]entity.ServiceOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedOptions(), nil
}

func (s *CatalogStore) GetOption(_ context.Context, id int64) (*entity.ServiceOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Options[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *CatalogStore) CreateOption(_ context.Context, o *entity.ServiceOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	o.ID = s.next
	s.Options[o.ID] = *o
	return nil
}

func (s *CatalogStore) UpdateOption(_ context.Context, o *entity.ServiceOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Options[o.ID]; !ok {
		return repository.ErrNotFound
	}
	s.Options[o.ID] = *o
	return nil
}

func (s *CatalogStore) DeleteOption(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Options[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.Options, id)
	return nil
}

// PlanStore is an in-memory PlanRepository.
type PlanStore struct {
	mu    sync.Mutex
	Plans map[int64]entity.SubscriptionPlan
	next  int64
}

func NewPlanStore() *PlanStore {
	return &PlanStore{Plans: map[int64]entity.SubscriptionPlan{}}
}

func (s *PlanStore) List(context.Context) ([]entity.SubscriptionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.SubscriptionPlan, 0, len(s.Plans))
	for _, p := range s.Plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *PlanStore) Get(_ context.Context, id int64) (*entity.SubscriptionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *PlanStore) Create(_ context.Context, p *entity.SubscriptionPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	p.ID = s.next
	s.Plans[p.ID] = *p
	return nil
}

func (s *PlanStore) Update(_ context.Context, p *entity.SubscriptionPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Plans[p.ID]; !ok {
		return repository.ErrNotFound
	}
	s.Plans[p.ID] = *p
	return nil
}

func (s *PlanStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.Plans, id)
	return nil
}

// ContactStore is an in-memory ContactRepository.
type ContactStore struct {
	mu       sync.Mutex
	Messages []entity.ContactMessage
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

func (s *ContactStore) Create(_ context.Context, m *entity.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = int64(len(s.Messages) + 1)
	s.Messages = append(s.Messages, *m)
	return nil
}

func (s *ContactStore) List(context.Context) ([]entity.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entity.ContactMessage(nil), s.Messages...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (s *ContactStore) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Messages), nil
}

var (
	_ repository.LocationRepository = (*LocationStore)(nil)
	_ repository.CatalogRepository  = (*CatalogStore)(nil)
	_ repository.PlanRepository     = (*PlanStore)(nil)
	_ repository.ContactRepository  = (*ContactStore)(nil)
)
