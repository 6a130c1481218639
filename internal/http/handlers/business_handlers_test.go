package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/middleware"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/mocks"
)

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

// newBusinessRouter authenticates "admin" as business_admin of business 5,
// "employee" as an employee of business 5 and "user" as a plain user.
func newBusinessRouter(svc domain.BusinessService, policy domain.PolicyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	writer := responses.NewWriter(nil, false)

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		switch token {
		case "admin":
			return &domain.TokenClaims{UserID: 1, Role: domain.RoleBusinessAdmin, BusinessID: uintPtr(5)}, nil
		case "employee":
			return &domain.TokenClaims{UserID: 2, Role: domain.RoleEmployee, BusinessID: uintPtr(5)}, nil
		case "user":
			return &domain.TokenClaims{UserID: 3, Role: domain.RoleUser}, nil
		}
		return nil, domain.ErrTokenInvalid
	}
	auth := middleware.NewAuthMW(tokenSvc, writer, nil)
	h := NewBusinessHandlers(svc, writer)

	r := gin.New()
	authed := r.Group("/", auth.Authenticate())
	authed.POST("/register-business", h.RegisterOrUpdateBusiness)
	authed.GET("/employee-list", h.ListEmployees)
	authed.POST("/add-employee", h.AddEmployee)
	authed.PUT("/update-employee", h.UpdateEmployee)
	authed.DELETE("/delete-employees", h.DeleteEmployee)

	admin := authed.Group("/", auth.IsBusinessAdmin())
	admin.GET("/business", h.GetBusiness)
	if policy != nil {
		admin.GET("/policies", NewPolicyHandlers(policy, writer).List)
	}
	return r
}

func TestBusinessHandlers_RegisterOrUpdate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		result         *domain.BusinessResult
		err            error
		validateInput  func(t *testing.T, in domain.BusinessInput)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "register",
			body:   `{"business_name":"Acme","logo":"logo.png"}`,
			result: &domain.BusinessResult{BusinessID: 5, AuthToken: "elevated", Created: true},
			validateInput: func(t *testing.T, in domain.BusinessInput) {
				assert.Nil(t, in.BusinessID)
				assert.Equal(t, "Acme", in.Name)
				require.NotNil(t, in.Logo)
				assert.Equal(t, "logo.png", *in.Logo)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Business registered successfully.",
		},
		{
			name:   "update with string id",
			body:   `{"business_id":"5","business_address":"1 Main St"}`,
			result: &domain.BusinessResult{BusinessID: 5},
			validateInput: func(t *testing.T, in domain.BusinessInput) {
				require.NotNil(t, in.BusinessID)
				assert.Equal(t, uint(5), *in.BusinessID)
				require.NotNil(t, in.Address)
				assert.Equal(t, "1 Main St", *in.Address)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Business updated successfully.",
		},
		{
			name:           "already admin",
			body:           `{"business_name":"Acme"}`,
			err:            domain.ErrAlreadyBusinessAdmin,
			expectedStatus: http.StatusConflict,
			expectedMsg:    domain.MessageOf(domain.ErrAlreadyBusinessAdmin),
		},
		{
			name:           "non numeric id",
			body:           `{"business_id":"abc"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBusinessService()
			svc.RegisterOrUpdateBusinessFunc = func(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error) {
				assert.Equal(t, uint(3), actor.ID)
				if tt.validateInput != nil {
					tt.validateInput(t, in)
				}
				return tt.result, tt.err
			}

			status, res := perform(t, newBusinessRouter(svc, nil), http.MethodPost, "/register-business", "user", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, res.Data["message"])
			if tt.result != nil && tt.result.Created {
				assert.Equal(t, float64(5), res.Data["business_id"])
				assert.Equal(t, "elevated", res.Data["auth_token"])
			}
		})
	}
}

func TestBusinessHandlers_GetBusiness(t *testing.T) {
	svc := mocks.NewMockBusinessService()
	svc.GetBusinessFunc = func(ctx context.Context, actor domain.Actor) (*domain.Business, error) {
		return &domain.Business{ID: 5, Name: "Acme", OwnerID: actor.ID, Address: strPtr("1 Main St")}, nil
	}
	r := newBusinessRouter(svc, nil)

	status, res := perform(t, r, http.MethodGet, "/business", "admin", "")
	require.Equal(t, http.StatusOK, status)
	business := res.Data["business"].(map[string]interface{})
	assert.Equal(t, "Acme", business["name"])
	assert.Equal(t, float64(1), business["owner_id"])

	status, res = perform(t, r, http.MethodGet, "/business", "employee", "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Access denied. Business admin role required.", res.Data["message"])
}

func TestBusinessHandlers_Employees(t *testing.T) {
	svc := mocks.NewMockBusinessService()
	svc.AddEmployeeFunc = func(ctx context.Context, actor domain.Actor, in domain.EmployeeInput) (uint, error) {
		if in.Email == "taken@x.com" {
			return 0, domain.ErrEmployeeEmailInUse
		}
		return 11, nil
	}
	svc.UpdateEmployeeFunc = func(ctx context.Context, actor domain.Actor, in domain.EmployeeUpdate) error {
		if in.Password != nil && actor.Role == domain.RoleEmployee {
			return domain.ErrEmployeePasswordChange
		}
		if in.EmployeeID != 11 {
			return domain.ErrEmployeeNotFound
		}
		return nil
	}
	svc.DeleteEmployeeFunc = func(ctx context.Context, actor domain.Actor, employeeID uint) error {
		if employeeID == 0 {
			return domain.ErrEmployeeIDRequired
		}
		if employeeID != 11 {
			return domain.ErrEmployeeNotInBusiness
		}
		return nil
	}
	svc.ListEmployeesByBusinessFunc = func(ctx context.Context, actor domain.Actor, businessID uint) ([]domain.EmployeeSummary, error) {
		if businessID != 5 {
			return nil, domain.ErrBusinessAccessDenied
		}
		return []domain.EmployeeSummary{{ID: 11, Name: "Bob", Email: "b@x.com", Address: domain.DefaultAddress}}, nil
	}
	r := newBusinessRouter(svc, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{"add", http.MethodPost, "/add-employee", "admin", `{"name":"Bob","email":"b@x.com","password":"pw"}`, http.StatusOK, "Employee added successfully"},
		{"add duplicate", http.MethodPost, "/add-employee", "admin", `{"name":"Bob","email":"taken@x.com","password":"pw"}`, http.StatusConflict, "Email already in use."},
		{"update numeric id", http.MethodPut, "/update-employee", "admin", `{"employee_id":11,"name":"Robert"}`, http.StatusOK, "Employee updated successfully."},
		{"update string id", http.MethodPut, "/update-employee", "admin", `{"employee_id":"11","number":"555"}`, http.StatusOK, "Employee updated successfully."},
		{"update unknown", http.MethodPut, "/update-employee", "admin", `{"employee_id":12}`, http.StatusNotFound, domain.MessageOf(domain.ErrEmployeeNotFound)},
		{"employee password", http.MethodPut, "/update-employee", "employee", `{"employee_id":11,"password":"x"}`, http.StatusForbidden, domain.MessageOf(domain.ErrEmployeePasswordChange)},
		{"delete", http.MethodDelete, "/delete-employees?employee_id=11", "admin", "", http.StatusOK, "Employee deleted successfully."},
		{"delete other business", http.MethodDelete, "/delete-employees?employee_id=12", "admin", "", http.StatusNotFound, domain.MessageOf(domain.ErrEmployeeNotInBusiness)},
		{"delete without id", http.MethodDelete, "/delete-employees?employee_id=abc", "admin", "", http.StatusBadRequest, "Employee ID is required."},
		{"list other business", http.MethodGet, "/employee-list?business_id=6", "admin", "", http.StatusForbidden, domain.MessageOf(domain.ErrBusinessAccessDenied)},
		{"no token", http.MethodGet, "/employee-list?business_id=5", "", "", http.StatusUnauthorized, "Access denied. No token provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, res := perform(t, r, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, res.Data["message"])
		})
	}

	t.Run("list", func(t *testing.T) {
		status, res := perform(t, r, http.MethodGet, "/employee-list?business_id=5", "admin", "")
		require.Equal(t, http.StatusOK, status)
		employees := res.Data["employees"].([]interface{})
		require.Len(t, employees, 1)
		assert.Equal(t, "Bob", employees[0].(map[string]interface{})["name"])
	})
}

func TestPolicyHandlers_List(t *testing.T) {
	policy := mocks.NewMockPolicyService()
	policy.GetPoliciesFunc = func() ([][]string, error) {
		return [][]string{
			{"business_admin", "employee", "delete", "business"},
			{"broken"},
			{"employee", "employee", "update", "self"},
		}, nil
	}
	r := newBusinessRouter(mocks.NewMockBusinessService(), policy)

	status, res := perform(t, r, http.MethodGet, "/policies", "admin", "")
	require.Equal(t, http.StatusOK, status)
	rules := res.Data["policies"].([]interface{})
	require.Len(t, rules, 2)
	assert.Equal(t, map[string]interface{}{
		"role": "employee", "resource": "employee", "action": "update", "scope": "self",
	}, rules[1])

	status, _ = perform(t, r, http.MethodGet, "/policies", "user", "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestPolicyHandlers_ListFailure(t *testing.T) {
	policy := mocks.NewMockPolicyService()
	policy.GetPoliciesFunc = func() ([][]string, error) {
		return nil, domain.Internal(errors.New("adapter unavailable"), "failed to load policies")
	}
	r := newBusinessRouter(mocks.NewMockBusinessService(), policy)

	status, res := perform(t, r, http.MethodGet, "/policies", "admin", "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", res.Data["message"])
	assert.Nil(t, res.Data["policies"])
}
