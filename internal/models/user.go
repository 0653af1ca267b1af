package models

// MaxAccountsPerEmail bounds how many accounts may share one email address.
const MaxAccountsPerEmail = 5

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// UserStatus is the profile lifecycle, not the review lifecycle.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusVerified  UserStatus = "verified"
	UserStatusCompleted UserStatus = "completed"
)

// User is one account. Username is globally unique; Email is deliberately
// NOT unique - up to MaxAccountsPerEmail accounts may share it and are told
// apart at login.
type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"index;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Phone        string     `json:"phone"`
	ProfileImage string     `json:"profileImage"`
	IsVerified   bool       `gorm:"default:false" json:"isVerified"`
	// OTP currently pending for this account, empty when consumed.
	VerificationCode string     `json:"-"`
	Role             UserRole   `gorm:"type:varchar(20);default:'user'" json:"role"`
	Status           UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Services []Service `gorm:"many2many:user_services" json:"services,omitempty"`
}

// PublicProjection is the minimal view returned by send-otp so a human
// can pick which of their accounts to log into.
type PublicProjection struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Role     UserRole   `json:"role"`
	Status   UserStatus `json:"status"`
}

// Projection builds the public view of the account.
func (u *User) Projection() PublicProjection {
	return PublicProjection{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Status:   u.Status,
	}
}
