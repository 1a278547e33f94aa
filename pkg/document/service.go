package document

import (
	"context"
	"time"
)

type ServiceDocument interface {
	GetAll(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	GetByField(ctx context.Context, field, value string) ([]Document, error)
	Create(ctx context.Context, doc Document) (*InsertResult, error)
	Update(ctx context.Context, id string, fields Document) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

// DocumentService runs exactly one repository call per operation. Calls are
// detached from the caller's cancellation so a client that disconnects does
// not abort a write halfway; Timeout bounds them instead.
type DocumentService struct {
	Repo    Repository
	Timeout time.Duration
}

func NewService(repo Repository, timeout time.Duration) *DocumentService {
	return &DocumentService{Repo: repo, Timeout: timeout}
}

func (s *DocumentService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

func (s *DocumentService) GetAll(ctx context.Context) ([]Document, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.GetAll(ctx)
}

func (s *DocumentService) GetByID(ctx context.Context, id string) (Document, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.GetByID(ctx, id)
}

func (s *DocumentService) GetByField(ctx context.Context, field, value string) ([]Document, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.GetByField(ctx, field, value)
}

// Create stores doc verbatim.
func (s *DocumentService) Create(ctx context.Context, doc Document) (*InsertResult, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.Create(ctx, doc)
}

func (s *DocumentService) Update(ctx context.Context, id string, fields Document) (*UpdateResult, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.Upsert(ctx, id, fields)
}

func (s *DocumentService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.Repo.Delete(ctx, id)
}
