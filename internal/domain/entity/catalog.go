package entity

import "time"

// Service is a bookable offering in the catalog. Options are loaded on read.
type Service struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Image          string          `json:"image,omitempty"`
	OptionalFields map[string]any  `json:"optional_fields"`
	Active         bool            `json:"active"`
	Options        []ServiceOption `json:"options"`
}

// ServiceOption is a priced duration variant of a Service.
type ServiceOption struct {
	ID            int64   `json:"id"`
	ServiceID     int64   `json:"service"`
	DurationLabel string  `json:"duration_label"`
	DurationHours *int    `json:"duration_hours"`
	Price         float64 `json:"price"`
}

type SubscriptionPlan struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

const ContactStatusUnread = "unread"

type ContactMessage struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}
