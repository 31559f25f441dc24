package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medclinic-client/internal/models"
)

// User represents an account in the system
type User struct {
	BaseModel
	Email    string      `gorm:"uniqueIndex;size:255;not null"`
	Password string      `gorm:"size:255;not null"`
	FullName string      `gorm:"size:255;not null"`
	Role     models.Role `gorm:"size:20;not null"`
	IsActive bool        `gorm:"not null"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// ToModel returns the user without credentials.
func (u *User) ToModel() models.User {
	return models.User{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// SeedAdmin creates the administrator account unless the e-mail is taken.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	admin := User{Email: email, FullName: "Administrator", Role: models.RoleAdmin, IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
