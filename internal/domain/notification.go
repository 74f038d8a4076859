package domain

import "time"

// NotifyAllUsers is the sentinel target for notifications addressed to
// every user rather than one.
const NotifyAllUsers = "all"

// Notification is an in-app message for one user (or all users). It is
// created by system actions, flipped to read exactly once, and never deleted
// in normal flow.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	EventID   string    `json:"event_id,omitempty"`
}

// NewNotification returns an unread notification for userID. ID is generated
// by the store on add when empty.
func NewNotification(userID, title, message, eventID string, at time.Time) *Notification {
	return &Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Timestamp: at,
		EventID:   eventID,
	}
}

// Clone returns a copy of the notification.
func (n *Notification) Clone() *Notification {
	c := *n
	return &c
}
