package repository

import (
	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindAll() ([]model.User, error)
	Create(user *model.User) error
	Update(id uuid.UUID, fields map[string]interface{}) (*model.User, error)
	Delete(id uuid.UUID) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	return findByID[model.User](r.db, id)
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	return updateFields[model.User](r.db, id, fields)
}

func (r *userRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.User](r.db, id)
}

// adjustPoint adds delta (negative to debit) to a user's balance inside tx.
// There is no lower bound: a debit may leave the balance negative.
func adjustPoint(tx *gorm.DB, userID uuid.UUID, delta int64) error {
	res := tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("point", gorm.Expr("point + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOwnerNotFound
	}
	return nil
}
