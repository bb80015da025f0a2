package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"auth/models"
	"auth/utils"

	"gorm.io/gorm"
)

var (
	ErrOtpNotFound       = errors.New("no otp found for this email")
	ErrOtpExpired        = errors.New("otp has expired")
	ErrOtpMismatch       = errors.New("otp does not match")
	ErrOtpRequestPending = errors.New("an otp request is already pending")
	ErrEmailNotVerified  = errors.New("email has not been verified")
)

type OTPService struct {
	db           *gorm.DB
	emailService EmailService
}

func NewOTPService(db *gorm.DB, emailService EmailService) *OTPService {
	return &OTPService{
		db:           db,
		emailService: emailService,
	}
}

// GenerateOTP returns a zero-padded 6-digit code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendOtp issues a fresh code for (email, otpType) and mails it.
// Verification and reset codes may be re-requested at will; any other
// flow is throttled while an unexpired code is outstanding.
func (s *OTPService) SendOtp(email, otpType string) error {
	var existing models.OTP
	err := s.db.Where("email = ? AND otp_type = ?", email, otpType).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	found := err == nil

	if found &&
		otpType != models.OtpTypeEmailVerification &&
		otpType != models.OtpTypePasswordReset &&
		!existing.IsValidated &&
		!utils.IsExpired(existing.OtpExpiry) {
		return ErrOtpRequestPending
	}

	otp, err := GenerateOTP()
	if err != nil {
		return err
	}

	hashedOtp, err := utils.HashPassword(otp)
	if err != nil {
		return err
	}

	now := utils.GenerateTimeStamp()
	if !found {
		record := models.OTP{
			Email:       email,
			OtpType:     otpType,
			HashedOtp:   hashedOtp,
			OtpExpiry:   utils.OTPExpiry(),
			IsValidated: false,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return err
		}
	} else {
		updates := map[string]interface{}{
			"hashed_otp":   hashedOtp,
			"otp_expiry":   utils.OTPExpiry(),
			"is_validated": false,
			"updated_at":   now,
		}
		if err := s.db.Model(&models.OTP{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return err
		}
	}

	return s.emailService.SendOtpEmail(email, otp, otpType)
}

// ValidateOtp checks a submitted code and marks the record validated.
func (s *OTPService) ValidateOtp(email, otp, otpType string) error {
	var record models.OTP
	if err := s.db.Where("email = ? AND otp_type = ?", email, otpType).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOtpNotFound
		}
		return err
	}

	if utils.IsExpired(record.OtpExpiry) {
		return ErrOtpExpired
	}

	if !utils.CheckPassword(otp, record.HashedOtp) {
		return ErrOtpMismatch
	}

	return s.db.Model(&models.OTP{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"is_validated": true,
		"updated_at":   utils.GenerateTimeStamp(),
	}).Error
}

// IsEmailVerified reports whether a validated email-verification code
// exists for the address.
func (s *OTPService) IsEmailVerified(email string) (bool, error) {
	var record models.OTP
	err := s.db.Where("email = ? AND otp_type = ? AND is_validated = ?",
		email, models.OtpTypeEmailVerification, true).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
