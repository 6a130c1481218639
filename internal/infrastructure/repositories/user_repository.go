package repositories

import (
	"context"
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, domain.ErrUserNotFound, "email = ?", email)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, domain.ErrUserNotFound, "id = ?", id)
}

// FindEmployeeInBusiness returns the row only when it is an employee of businessID
func (r *UserRepositoryImpl) FindEmployeeInBusiness(ctx context.Context, employeeID, businessID uint) (*domain.User, error) {
	return r.findOne(ctx, domain.ErrEmployeeNotInBusiness,
		"id = ? AND business_id = ? AND role = ?", employeeID, businessID, string(domain.RoleEmployee))
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, notFound error, query string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// SetOTP implements domain.UserRepository
func (r *UserRepositoryImpl) SetOTP(ctx context.Context, email string, otp *string) error {
	return r.updateWhere(ctx, domain.ErrUserNotFound, map[string]interface{}{"otp": otp}, "email = ?", email)
}

// MarkVerified flips is_verified and consumes the pending code
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, email string) error {
	return r.updateWhere(ctx, domain.ErrUserNotFound,
		map[string]interface{}{"is_verified": true, "otp": nil}, "email = ?", email)
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.updateWhere(ctx, domain.ErrUserNotFound, map[string]interface{}{"password": passwordHash}, "email = ?", email)
}

// SetAuthToken caches the last issued token; it is never read back for verification
func (r *UserRepositoryImpl) SetAuthToken(ctx context.Context, userID uint, token string) error {
	return r.updateWhere(ctx, domain.ErrUserNotFound, map[string]interface{}{"auth_token": token}, "id = ?", userID)
}

// UpdateProfile writes the mutable profile columns of user
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, user *domain.User) error {
	return r.updateWhere(ctx, domain.ErrUserNotFound, map[string]interface{}{
		"name":          user.Name,
		"number":        user.Number,
		"address":       user.Address,
		"profile_photo": user.ProfilePhoto,
		"password":      user.PasswordHash,
	}, "id = ?", user.ID)
}

func (r *UserRepositoryImpl) updateWhere(ctx context.Context, notFound error, values map[string]interface{}, query string, args ...interface{}) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where(query, args...).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// DeleteEmployee implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteEmployee(ctx context.Context, employeeID, businessID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND role = ?", employeeID, businessID, string(domain.RoleEmployee)).
		Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotInBusiness
	}
	return nil
}

// ListEmployees returns the employee rows of a business ordered by id
func (r *UserRepositoryImpl) ListEmployees(ctx context.Context, businessID uint) ([]domain.EmployeeSummary, error) {
	var rows []DBUser
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "number", "address", "profile_photo").
		Where("business_id = ? AND role = ?", businessID, string(domain.RoleEmployee)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	employees := make([]domain.EmployeeSummary, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, domain.EmployeeSummary{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			Number:       row.Number,
			Address:      row.Address,
			ProfilePhoto: row.ProfilePhoto,
		})
	}
	return employees, nil
}
