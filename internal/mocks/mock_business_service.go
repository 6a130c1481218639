package mocks

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockBusinessService implements domain.BusinessService interface for testing
type MockBusinessService struct {
	RegisterOrUpdateBusinessFunc func(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error)
	GetBusinessFunc              func(ctx context.Context, actor domain.Actor) (*domain.Business, error)
	AddEmployeeFunc              func(ctx context.Context, actor domain.Actor, in domain.EmployeeInput) (uint, error)
	UpdateEmployeeFunc           func(ctx context.Context, actor domain.Actor, in domain.EmployeeUpdate) error
	DeleteEmployeeFunc           func(ctx context.Context, actor domain.Actor, employeeID uint) error
	ListEmployeesByBusinessFunc  func(ctx context.Context, actor domain.Actor, businessID uint) ([]domain.EmployeeSummary, error)
}

func NewMockBusinessService() *MockBusinessService {
	return &MockBusinessService{}
}

func (m *MockBusinessService) RegisterOrUpdateBusiness(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error) {
	if m.RegisterOrUpdateBusinessFunc != nil {
		return m.RegisterOrUpdateBusinessFunc(ctx, actor, in)
	}
	return &domain.BusinessResult{BusinessID: 1, Created: true}, nil
}

func (m *MockBusinessService) GetBusiness(ctx context.Context, actor domain.Actor) (*domain.Business, error) {
	if m.GetBusinessFunc != nil {
		return m.GetBusinessFunc(ctx, actor)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessService) AddEmployee(ctx context.Context, actor domain.Actor, in domain.EmployeeInput) (uint, error) {
	if m.AddEmployeeFunc != nil {
		return m.AddEmployeeFunc(ctx, actor, in)
	}
	return 1, nil
}

func (m *MockBusinessService) UpdateEmployee(ctx context.Context, actor domain.Actor, in domain.EmployeeUpdate) error {
	if m.UpdateEmployeeFunc != nil {
		return m.UpdateEmployeeFunc(ctx, actor, in)
	}
	return nil
}

func (m *MockBusinessService) DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID uint) error {
	if m.DeleteEmployeeFunc != nil {
		return m.DeleteEmployeeFunc(ctx, actor, employeeID)
	}
	return nil
}

func (m *MockBusinessService) ListEmployeesByBusiness(ctx context.Context, actor domain.Actor, businessID uint) ([]domain.EmployeeSummary, error) {
	if m.ListEmployeesByBusinessFunc != nil {
		return m.ListEmployeesByBusinessFunc(ctx, actor, businessID)
	}
	return []domain.EmployeeSummary{}, nil
}

var _ domain.BusinessService = (*MockBusinessService)(nil)
