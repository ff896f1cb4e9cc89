package database

import (
	"context"
	"errors"
	"time"

	c "github.com/aviodesk/charterops/internal/interfaces/config"
	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserOperation struct {
	config       *c.GeneralConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration, config *c.GeneralConfig) *UserOperation {
	return &UserOperation{config: config, db: db, queryTimeout: queryTimeout}
}

func (userOperation *UserOperation) GetUserByUid(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByUsername(username string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("username = ?", username).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) NewUser(username string, email string, password string) (user *User, err error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), userOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user = &User{
		Username: username,
		Email:    email,
		Password: string(encodePassword),
	}
	return
}

// AddUser checks the username and email uniqueness constraints inside a
// transaction before inserting. A conflict is reported as a
// *ConstraintViolationError carrying the colliding column, the caller is
// responsible for keeping the user-facing message generic. Row locking is
// not used here, sqlite has no SELECT FOR UPDATE and its write
// serialization covers the check-then-insert window.
func (userOperation *UserOperation) AddUser(user *User) error {
	return userOperation.db.Transaction(func(tx *gorm.DB) error {
		field, err := userOperation.takenIdentifier(tx, user.Username, user.Email)
		if err != nil {
			return ErrIdentifierCheck
		}

		if field != "" {
			return &ConstraintViolationError{Field: field}
		}

		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(user).Error
	})
}

func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// takenIdentifier reports which unique column an insert would collide on,
// or "" when both are free.
func (userOperation *UserOperation) takenIdentifier(tx *gorm.DB, username, email string) (string, error) {
	if tx == nil {
		tx = userOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "username", nil
	}

	if err := tx.WithContext(ctx).
		Model(&User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "email", nil
	}
	return "", nil
}
