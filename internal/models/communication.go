package models

import "time"

// Announcement fans out to every user whose role is in TargetRoles.
// Announcements are immutable once created.
type Announcement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"author_id"`
	Date        time.Time  `json:"date"`
	TargetRoles []UserRole `json:"target_roles"`
}

// VisibleTo reports whether the announcement targets the given role.
func (a Announcement) VisibleTo(role UserRole) bool {
	for _, r := range a.TargetRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Message is a directed chat message between two users. Read flips
// false to true only, never back.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}
