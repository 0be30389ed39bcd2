package repo

import (
	"errors"
	"stocklist/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) FindByUserName(userName string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("user_name = ?", userName).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUserNameOrEmail(userName, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("user_name = ? OR email = ?", userName, email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) CountAdmins() (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error
}

// CreateAssigningID fills u.UserID with max+1 inside a transaction. The
// unique index backstops the assignment; a concurrent winner shows up as
// gorm.ErrDuplicatedKey and we recompute once.
func (r *UserRepository) CreateAssigningID(u *models.User) error {
	for attempt := 0; ; attempt++ {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			var maxID int64
			if err := tx.Model(&models.User{}).Select("COALESCE(MAX(user_id), 0)").Scan(&maxID).Error; err != nil {
				return err
			}
			u.ID = 0
			u.UserID = int(maxID) + 1
			return tx.Create(u).Error
		})
		if err == nil || attempt > 0 || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
}

func (r *UserRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.User{}).Error
}
