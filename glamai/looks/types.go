package looks

import "time"

// Look is a saved transformation: the photo the user started from and the
// styled result, plus the selections that produced it. Images are stored as
// data URLs.
type Look struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Before    string    `json:"before"`
	After     string    `json:"after"`
	Style     string    `json:"style"`
	Color     string    `json:"color,omitempty"`
	Digest    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLookRequest struct {
	Before string `json:"before" binding:"required"`
	After  string `json:"after" binding:"required"`
	Style  string `json:"style" binding:"required"`
	Color  string `json:"color"`
}
