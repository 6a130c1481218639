package repositories

import (
	"context"
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
	"gorm.io/gorm"
)

// BusinessRepositoryImpl implements domain.BusinessRepository using GORM
type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) domain.BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

// CreateForOwner inserts the business and promotes the owner to business_admin atomically
func (r *BusinessRepositoryImpl) CreateForOwner(ctx context.Context, business *domain.Business) error {
	dbBusiness := businessToDB(business)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbBusiness).Error; err != nil {
			return err
		}
		result := tx.Model(&DBUser{}).
			Where("id = ?", business.OwnerID).
			Updates(map[string]interface{}{
				"role":        string(domain.RoleBusinessAdmin),
				"business_id": dbBusiness.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	business.ID = dbBusiness.ID
	business.CreatedAt = dbBusiness.CreatedAt
	business.UpdatedAt = dbBusiness.UpdatedAt
	return nil
}

// FindByID implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByIDAndOwner implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Business, error) {
	return r.findOne(ctx, "id = ? AND owner_id = ?", id, ownerID)
}

func (r *BusinessRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Business, error) {
	var dbBusiness DBBusiness
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbBusiness).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return businessToDomain(&dbBusiness), nil
}

// Update implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) Update(ctx context.Context, business *domain.Business) error {
	result := r.db.WithContext(ctx).Model(&DBBusiness{}).
		Where("id = ?", business.ID).
		Updates(map[string]interface{}{
			"name":    business.Name,
			"address": business.Address,
			"logo":    business.Logo,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}
