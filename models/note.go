package models

import "time"

// timeLayout is the display format for note timestamps (UTC, minute precision).
const timeLayout = "2006-01-02 15:04"

// Note is the single persisted entity. The record itself carries no behavior
// beyond building its JSON view; all operations live in the repository.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AIInsight *string   `gorm:"type:text" json:"ai_insight"`
	IsPinned  bool      `gorm:"not null;default:false" json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteView is the wire representation of a Note. It exists because the API
// formats created_at as "YYYY-MM-DD HH:MM" in UTC rather than RFC 3339.
type NoteView struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	AIInsight *string `json:"ai_insight"`
	IsPinned  bool    `json:"is_pinned"`
	CreatedAt string  `json:"created_at"`
}

// View converts a Note into its wire representation.
func (n Note) View() NoteView {
	return NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		AIInsight: n.AIInsight,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt.UTC().Format(timeLayout),
	}
}
