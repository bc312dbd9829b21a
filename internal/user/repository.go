package user

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	EmailExists(email string) (bool, error)
	List() ([]User, error)
	ListStaff() ([]User, error)
	Update(user *User) error
	Delete(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *gormRepository) FindByID(id uint) (*User, error) {
	var user User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) FindByEmail(email string) (*User, error) {
	var user User
	if err := r.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).Where("email = ?", NormalizeEmail(email)).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) List() ([]User, error) {
	var users []User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *gormRepository) ListStaff() ([]User, error) {
	var users []User
	err := r.db.Where("is_staff = ?", true).Find(&users).Error
	return users, err
}

func (r *gormRepository) Update(user *User) error {
	return r.db.Save(user).Error
}

// Delete removes the account and any outstanding password reset tokens.
func (r *gormRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM password_reset_tokens WHERE user_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
