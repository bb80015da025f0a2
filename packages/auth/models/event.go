package models

// Audit event names for the auth routes. Core defines its own set for
// player, team and match routes.
const (
	EventSendMail            = "send mail"
	EventValidateOtp         = "validate otp"
	EventCheckValidatedEmail = "check validated email"
	EventUserSignup          = "user signup"
	EventUserSignin          = "user signin"
	EventChangePassword      = "change password"
)

// Event is the audit record written for every handled request: who
// called which route, from where, with what payload. Append-only.
type Event struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EventType      string `gorm:"size:64;not null;index" json:"eventType"`
	UserName       string `gorm:"size:255;index" json:"userName,omitempty"`
	URL            string `gorm:"size:512;not null" json:"url"`
	IPAddress      string `gorm:"size:64" json:"ipAddress,omitempty"`
	HTTPMethod     string `gorm:"size:16;not null" json:"httpMethod"`
	RequestPayload string `gorm:"type:text" json:"requestPayload,omitempty"`
	CreatedAt      string `gorm:"size:64" json:"createdAt"`
}

func (Event) TableName() string {
	return "events"
}
