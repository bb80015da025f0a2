package models

const (
	OtpTypeEmailVerification = "EMAILVERIFICATION"
	OtpTypePasswordReset     = "PASSWORDRESET"
	OtpType2FA               = "2FA"
)

// OTP holds one pending code per (email, otpType) pair; resends update
// the row in place instead of stacking records.
type OTP struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Email       string `json:"email" gorm:"index:idx_otps_email_type,unique;not null"`
	OtpType     string `json:"otpType" gorm:"index:idx_otps_email_type,unique;not null"`
	HashedOtp   string `json:"-" gorm:"not null"`
	OtpExpiry   string `json:"otpExpiry"`
	IsValidated bool   `json:"isValidated" gorm:"default:false"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (OTP) TableName() string {
	return "otps"
}

// IsValidOtpType reports whether t names a supported OTP flow.
func IsValidOtpType(t string) bool {
	switch t {
	case OtpTypeEmailVerification, OtpTypePasswordReset, OtpType2FA:
		return true
	}
	return false
}
