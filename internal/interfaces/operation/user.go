// Package operation
package operation

// UserOperationInterface 用户操作接口定义
type UserOperationInterface interface {
	// GetUserByUid fetches a user by primary key, user is valid when err is nil
	GetUserByUid(uid uint) (user *User, err error)
	// GetUserByUsername fetches a user by username, user is valid when err is nil
	GetUserByUsername(username string) (user *User, err error)
	// NewUser builds a user with the password bcrypt-hashed, nothing is written
	// to the database yet, user is valid when err is nil
	NewUser(username string, email string, password string) (user *User, err error)
	// AddUser writes a new user, checking the username/email uniqueness
	// constraints first. A conflict yields a *ConstraintViolationError.
	AddUser(user *User) (err error)
	// VerifyUserPassword compares a plaintext password against the stored
	// hash, pass is true when they match
	VerifyUserPassword(user *User, password string) (pass bool)
}
