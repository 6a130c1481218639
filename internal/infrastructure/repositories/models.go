package repositories

import (
	"time"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `gorm:"column:password;not null"`
	Number       *string `gorm:"size:32"`
	Address      string  `gorm:"not null"`
	ProfilePhoto *string
	Role         string  `gorm:"size:32;not null"`
	BusinessID   *uint   `gorm:"index"`
	OTP          *string `gorm:"column:otp;size:6"`
	IsVerified   bool    `gorm:"not null"`
	AuthToken    *string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// DBBusiness represents the database model for Business
type DBBusiness struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	OwnerID   uint   `gorm:"index;not null"`
	Address   *string
	Logo      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBBusiness) TableName() string {
	return "businesses"
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Number:       user.Number,
		Address:      user.Address,
		ProfilePhoto: user.ProfilePhoto,
		Role:         string(user.Role),
		BusinessID:   user.BusinessID,
		OTP:          user.OTP,
		IsVerified:   user.IsVerified,
		AuthToken:    user.AuthToken,
		RefreshToken: user.RefreshToken,
	}
}

func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Number:       dbUser.Number,
		Address:      dbUser.Address,
		ProfilePhoto: dbUser.ProfilePhoto,
		Role:         domain.Role(dbUser.Role),
		BusinessID:   dbUser.BusinessID,
		OTP:          dbUser.OTP,
		IsVerified:   dbUser.IsVerified,
		AuthToken:    dbUser.AuthToken,
		RefreshToken: dbUser.RefreshToken,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}

func businessToDB(b *domain.Business) *DBBusiness {
	return &DBBusiness{
		ID:      b.ID,
		Name:    b.Name,
		OwnerID: b.OwnerID,
		Address: b.Address,
		Logo:    b.Logo,
	}
}

func businessToDomain(b *DBBusiness) *domain.Business {
	return &domain.Business{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		Address:   b.Address,
		Logo:      b.Logo,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
