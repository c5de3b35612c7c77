package models

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest carries a partial update. Title and Content use pointers
// so an absent field can be told apart from an empty one. IsPinned stays an
// untyped JSON value and is coerced truthily, so clients that send 1/0 keep
// working.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPinned any     `json:"is_pinned"`
}

// PinnedValue reports the coerced pin flag and whether the field was present.
func (r UpdateNoteRequest) PinnedValue() (value bool, present bool) {
	switch v := r.IsPinned.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case string:
		return v != "", true
	default:
		return true, true
	}
}

type GenerateTitleRequest struct {
	Content string `json:"content"`
}

type ProcessAIRequest struct {
	NoteID uint   `json:"note_id"`
	Action string `json:"action"`
}
