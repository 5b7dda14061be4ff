package waitlist

import (
	"time"

	"github.com/bytedance/sonic"
)

// StatusPending and StatusInvited are the waitlist entry lifecycle states.
const (
	StatusPending = "pending"
	StatusInvited = "invited"
)

// Entry is one waitlist signup row. Position, status and timestamps are
// derived fields owned by the store; this system never deletes entries.
type Entry struct {
	ID                int64      `gorm:"primaryKey" json:"-"`
	Email             string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FirstName         string     `gorm:"size:100;not null" json:"first_name"`
	LastName          string     `gorm:"size:100;not null" json:"last_name"`
	Company           *string    `gorm:"size:200" json:"company,omitempty"`
	Role              *string    `gorm:"size:100" json:"role,omitempty"`
	UseCase           *string    `gorm:"size:1000" json:"use_case,omitempty"`
	Interests         *string    `gorm:"size:1000" json:"-"`
	ReferralSource    *string    `gorm:"size:200" json:"referral_source,omitempty"`
	NewsletterConsent bool       `json:"newsletter_consent"`
	IPAddress         string     `gorm:"size:64" json:"-"`
	UserAgent         string     `gorm:"size:512" json:"-"`
	Status            string     `gorm:"size:32;default:pending" json:"status"`
	Position          int64      `json:"position"`
	CreatedAt         time.Time  `json:"created_at"`
	InvitedAt         *time.Time `json:"invited_at,omitempty"`
}

// TableName maps the model onto the hosted store's waitlist table.
func (Entry) TableName() string {
	return "waitlist"
}

// SetInterests JSON-encodes the interest tags into the row.
func (e *Entry) SetInterests(interests []string) error {
	if len(interests) == 0 {
		e.Interests = nil
		return nil
	}
	encoded, err := sonic.MarshalString(interests)
	if err != nil {
		return err
	}
	e.Interests = &encoded
	return nil
}

// GetInterests decodes the interest tags from the row.
func (e *Entry) GetInterests() []string {
	if e.Interests == nil || *e.Interests == "" {
		return nil
	}
	var interests []string
	if err := sonic.UnmarshalString(*e.Interests, &interests); err != nil {
		return nil
	}
	return interests
}
