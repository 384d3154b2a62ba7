package entity

import "time"

// Channel is the medium an OTP is delivered through.
type Channel string

const (
	ChannelPhone Channel = "phone"
	ChannelEmail Channel = "email"
)

func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelPhone, ChannelEmail:
		return Channel(s), true
	}
	return "", false
}

// OTPCode is a single-use, time-bounded password reset code.
// Records are never deleted; Used flips to true at most once.
type OTPCode struct {
	ID        int64
	UserID    string
	Code      string
	Channel   Channel
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

// IsValid reports whether the code is unused and not past its expiry at now.
func (o *OTPCode) IsValid(now time.Time) bool {
	return !o.Used && !now.After(o.ExpiresAt)
}
