package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/tracko/internal/auth"
	userDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentialsByEmail(email string) (*auth.Credentials, error) {
	var creds auth.Credentials
	query := `SELECT id, email, password_hash, role, status FROM users WHERE email = ? AND is_deleted = false`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&creds.UserID, &creds.Email, &creds.PasswordHash, &creds.Role, &creds.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &creds, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("email = ? AND is_deleted = ?", email, false).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(name, email, passwordHash, phoneNumber, countryCode string, role coreuser.Role) (int64, error) {
	now := time.Now()
	record := &userDatamodel.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		PhoneNumber:  phoneNumber,
		CountryCode:  countryCode,
		Role:         int8(role),
		Status:       int8(coreuser.StatusActive),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, auth.ErrEmailTaken
		}
		return 0, err
	}
	return record.ID, nil
}

func (r *Repository) GetActorByID(userID int64) (*coreuser.Actor, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ? AND is_deleted = ? AND status = ?", userID, false, int8(coreuser.StatusActive)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	return &coreuser.Actor{
		ID:    record.ID,
		Email: record.Email,
		Role:  coreuser.Role(record.Role),
	}, nil
}
