package models

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName" gorm:"uniqueIndex;not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string `json:"phone"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:USER"`
	Is2FA     bool   `json:"is2FA" gorm:"column:is_2fa;default:false"`
	IsActive  bool   `json:"isActive" gorm:"default:true"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
	Is2FA     bool   `json:"is2FA"`
}

// SigninRequest accepts an email address or a userName in the user field.
type SigninRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
