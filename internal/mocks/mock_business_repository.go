package mocks

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockBusinessRepository implements domain.BusinessRepository interface for testing
type MockBusinessRepository struct {
	CreateForOwnerFunc   func(ctx context.Context, business *domain.Business) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Business, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uint) (*domain.Business, error)
	UpdateFunc           func(ctx context.Context, business *domain.Business) error
}

func NewMockBusinessRepository() *MockBusinessRepository {
	return &MockBusinessRepository{}
}

// CreateForOwner assigns id 1 unless overridden
func (m *MockBusinessRepository) CreateForOwner(ctx context.Context, business *domain.Business) error {
	if m.CreateForOwnerFunc != nil {
		return m.CreateForOwnerFunc(ctx, business)
	}
	business.ID = 1
	return nil
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Business, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) Update(ctx context.Context, business *domain.Business) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, business)
	}
	return nil
}

var _ domain.BusinessRepository = (*MockBusinessRepository)(nil)
