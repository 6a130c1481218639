package services

import (
	"context"
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

// BusinessServiceImpl implements domain.BusinessService. Every role and
// ownership question is delegated to the policy service.
type BusinessServiceImpl struct {
	userRepo     domain.UserRepository
	businessRepo domain.BusinessRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	policy       domain.PolicyService
	audit        domain.AuditLogger
	logger       *logging.Logger
}

// NewBusinessService creates a new business service
func NewBusinessService(
	userRepo domain.UserRepository,
	businessRepo domain.BusinessRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	policy domain.PolicyService,
	audit domain.AuditLogger,
	logger *logging.Logger,
) domain.BusinessService {
	return &BusinessServiceImpl{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		policy:       policy,
		audit:        audit,
		logger:       logger,
	}
}

// RegisterOrUpdateBusiness registers a business for the caller, promoting
// them to business_admin, or updates the caller's business when in.BusinessID is set.
func (s *BusinessServiceImpl) RegisterOrUpdateBusiness(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error) {
	if in.BusinessID == nil || *in.BusinessID == 0 {
		return s.registerBusiness(ctx, actor, in)
	}
	return s.updateBusiness(ctx, actor, in)
}

func (s *BusinessServiceImpl) registerBusiness(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error) {
	if in.Name == "" {
		return nil, domain.ErrBusinessNameRequired
	}

	owner, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, classify(err, "failed to load user")
	}
	if owner.Role == domain.RoleBusinessAdmin {
		return nil, domain.ErrAlreadyBusinessAdmin
	}

	subject := domain.Actor{ID: owner.ID, Role: owner.Role, BusinessID: owner.BusinessID}
	if err := s.policy.Authorize(subject, domain.Resource{Kind: domain.ResourceBusiness, OwnerID: owner.ID}, domain.ActionRegister); err != nil {
		return nil, s.denied(ctx, subject, translatePolicy(err, domain.ErrAccessDenied, domain.ErrAccessDenied))
	}

	business := &domain.Business{
		Name:    in.Name,
		OwnerID: owner.ID,
		Address: present(in.Address),
		Logo:    present(in.Logo),
	}
	if err := s.businessRepo.CreateForOwner(ctx, business); err != nil {
		return nil, classify(err, "failed to register business")
	}

	businessID := business.ID
	token, err := s.tokenSvc.IssueElevationToken(owner.ID, domain.RoleBusinessAdmin, &businessID)
	if err != nil {
		return nil, domain.Internal(err, "failed to issue token")
	}
	if err := s.userRepo.SetAuthToken(ctx, owner.ID, token); err != nil {
		return nil, classify(err, "failed to store token")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.BusinessRegisteredEvent, owner.ID).WithBusiness(businessID))
	return &domain.BusinessResult{BusinessID: businessID, AuthToken: token, Created: true}, nil
}

func (s *BusinessServiceImpl) updateBusiness(ctx context.Context, actor domain.Actor, in domain.BusinessInput) (*domain.BusinessResult, error) {
	resource := domain.Resource{Kind: domain.ResourceBusiness, OwnerID: actor.ID, BusinessID: in.BusinessID}
	if err := s.policy.Authorize(actor, resource, domain.ActionUpdate); err != nil {
		return nil, s.denied(ctx, actor, translatePolicy(err, domain.ErrBusinessUpdateForbidden, domain.ErrBusinessNotFound))
	}

	business, err := s.businessRepo.FindByIDAndOwner(ctx, *in.BusinessID, actor.ID)
	if err != nil {
		return nil, classify(err, "failed to load business")
	}

	if in.Name != "" {
		business.Name = in.Name
	}
	if v := present(in.Address); v != nil {
		business.Address = v
	}
	if v := present(in.Logo); v != nil {
		business.Logo = v
	}

	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, classify(err, "failed to update business")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.BusinessUpdatedEvent, actor.ID).WithBusiness(business.ID))
	return &domain.BusinessResult{BusinessID: business.ID}, nil
}

// GetBusiness returns the business owned by the caller
func (s *BusinessServiceImpl) GetBusiness(ctx context.Context, actor domain.Actor) (*domain.Business, error) {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, classify(err, "failed to load user")
	}
	if user.BusinessID == nil {
		return nil, domain.ErrBusinessNotFound
	}

	business, err := s.businessRepo.FindByID(ctx, *user.BusinessID)
	if err != nil {
		return nil, classify(err, "failed to load business")
	}

	subject := domain.Actor{ID: user.ID, Role: user.Role, BusinessID: user.BusinessID}
	resource := domain.Resource{Kind: domain.ResourceBusiness, OwnerID: business.OwnerID, BusinessID: &business.ID}
	if err := s.policy.Authorize(subject, resource, domain.ActionRead); err != nil {
		return nil, s.denied(ctx, subject, translatePolicy(err, domain.ErrBusinessAccessDenied, domain.ErrBusinessAccessDenied))
	}
	return business, nil
}

// AddEmployee creates a verified employee inside the caller's business
func (s *BusinessServiceImpl) AddEmployee(ctx context.Context, actor domain.Actor, in domain.EmployeeInput) (uint, error) {
	admin, err := s.loadAdmin(ctx, actor, domain.ActionCreate, domain.ErrNotBusinessAdmin)
	if err != nil {
		return 0, err
	}

	if err := validateForm(in, domain.ErrEmployeeFieldsRequired); err != nil {
		return 0, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return 0, domain.ErrEmployeeEmailInUse
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, classify(err, "failed to check email")
	}

	hash, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return 0, domain.Internal(err, "failed to hash password")
	}

	businessID := *admin.BusinessID
	employee := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Number:       present(in.Number),
		Address:      valueOr(in.Address, domain.DefaultAddress),
		ProfilePhoto: present(in.ProfilePhoto),
		Role:         domain.RoleEmployee,
		BusinessID:   &businessID,
		IsVerified:   true,
	}
	if err := s.userRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return 0, domain.ErrEmployeeEmailInUse
		}
		return 0, classify(err, "failed to add employee")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.EmployeeAddedEvent, admin.ID).
		WithEmail(in.Email).
		WithBusiness(businessID).
		WithMetadata("employee_id", employee.ID))
	return employee.ID, nil
}

// UpdateEmployee applies a partial update. Admins may update any employee of
// their business; employees may update their own profile but not their password.
func (s *BusinessServiceImpl) UpdateEmployee(ctx context.Context, actor domain.Actor, in domain.EmployeeUpdate) error {
	if in.EmployeeID == 0 {
		return domain.ErrEmployeeIDRequired
	}

	employee, err := s.userRepo.FindByID(ctx, in.EmployeeID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrEmployeeNotFound
		}
		return classify(err, "failed to load employee")
	}

	subject := actor
	outOfScope := domain.ErrEmployeeNotSelf
	if actor.Role == domain.RoleBusinessAdmin {
		admin, err := s.userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrEmployeeOtherBusiness
			}
			return classify(err, "failed to load user")
		}
		subject.BusinessID = admin.BusinessID
		outOfScope = domain.ErrEmployeeOtherBusiness
	}

	resource := domain.Resource{Kind: domain.ResourceEmployee, OwnerID: employee.ID, BusinessID: employee.BusinessID}
	if err := s.policy.Authorize(subject, resource, domain.ActionUpdate); err != nil {
		return s.denied(ctx, subject, translatePolicy(err, domain.ErrAccessDenied, outOfScope))
	}

	password := present(in.Password)
	if password != nil {
		if err := s.policy.Authorize(subject, resource, domain.ActionSetPassword); err != nil {
			return s.denied(ctx, subject, translatePolicy(err, domain.ErrEmployeePasswordChange, domain.ErrEmployeePasswordChange))
		}
	}

	if email := present(in.Email); email != nil && *email != employee.Email {
		return domain.ErrEmailImmutable
	}

	if v := present(in.Name); v != nil {
		employee.Name = *v
	}
	if v := present(in.Number); v != nil {
		employee.Number = v
	}
	if v := present(in.Address); v != nil {
		employee.Address = *v
	}
	if v := present(in.ProfilePhoto); v != nil {
		employee.ProfilePhoto = v
	}
	if password != nil {
		hash, err := s.passwordSvc.Hash(*password)
		if err != nil {
			return domain.Internal(err, "failed to hash password")
		}
		employee.PasswordHash = hash
	}

	if err := s.userRepo.UpdateProfile(ctx, employee); err != nil {
		return classify(err, "failed to update employee")
	}

	event := domain.NewAuditEvent(domain.EmployeeUpdatedEvent, actor.ID).WithMetadata("employee_id", employee.ID)
	if employee.BusinessID != nil {
		event.WithBusiness(*employee.BusinessID)
	}
	s.audit.LogEvent(ctx, event)
	return nil
}

// DeleteEmployee removes an employee of the caller's business
func (s *BusinessServiceImpl) DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID uint) error {
	admin, err := s.loadAdmin(ctx, actor, domain.ActionDelete, domain.ErrDeleteNotBusinessAdmin)
	if err != nil {
		return err
	}
	if employeeID == 0 {
		return domain.ErrEmployeeIDRequired
	}

	businessID := *admin.BusinessID
	if _, err := s.userRepo.FindEmployeeInBusiness(ctx, employeeID, businessID); err != nil {
		return classify(err, "failed to load employee")
	}
	if err := s.userRepo.DeleteEmployee(ctx, employeeID, businessID); err != nil {
		return classify(err, "failed to delete employee")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.EmployeeDeletedEvent, admin.ID).
		WithBusiness(businessID).
		WithMetadata("employee_id", employeeID))
	return nil
}

// ListEmployeesByBusiness lists the employees of businessID. Admins may only
// list their own business; other roles are not checked for ownership.
func (s *BusinessServiceImpl) ListEmployeesByBusiness(ctx context.Context, actor domain.Actor, businessID uint) ([]domain.EmployeeSummary, error) {
	if businessID == 0 {
		return nil, domain.ErrBusinessIDRequired
	}

	subject := actor
	if actor.Role == domain.RoleBusinessAdmin {
		admin, err := s.userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrBusinessAccessDenied
			}
			return nil, classify(err, "failed to load user")
		}
		subject.BusinessID = admin.BusinessID
	}

	resource := domain.Resource{Kind: domain.ResourceEmployee, BusinessID: &businessID}
	if err := s.policy.Authorize(subject, resource, domain.ActionList); err != nil {
		return nil, s.denied(ctx, subject, translatePolicy(err, domain.ErrAccessDenied, domain.ErrBusinessAccessDenied))
	}

	employees, err := s.userRepo.ListEmployees(ctx, businessID)
	if err != nil {
		return nil, classify(err, "failed to list employees")
	}
	return employees, nil
}

// loadAdmin re-reads the caller and checks it may manage employees of its own business
func (s *BusinessServiceImpl) loadAdmin(ctx context.Context, actor domain.Actor, action domain.Action, notAdmin error) (*domain.User, error) {
	admin, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, notAdmin
		}
		return nil, classify(err, "failed to load user")
	}

	subject := domain.Actor{ID: admin.ID, Role: admin.Role, BusinessID: admin.BusinessID}
	resource := domain.Resource{Kind: domain.ResourceEmployee, BusinessID: admin.BusinessID}
	if err := s.policy.Authorize(subject, resource, action); err != nil {
		return nil, s.denied(ctx, subject, translatePolicy(err, notAdmin, domain.ErrNoBusiness))
	}
	return admin, nil
}

func (s *BusinessServiceImpl) denied(ctx context.Context, actor domain.Actor, err error) error {
	if domain.KindOf(err) == domain.KindForbidden {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.AccessDeniedEvent, actor.ID).
			WithMetadata("role", string(actor.Role)).
			WithError(err))
	}
	return err
}
