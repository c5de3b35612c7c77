package services

import (
	"context"
	"log"

	"notemind/models"
	"notemind/repository"
)

// untitledFallback is used when the client omits the title and the model
// cannot produce one. Creation must never fail because the LLM is down.
const untitledFallback = "Untitled Note"

// maxTitleLen matches the title column cap. Auto-generated titles have no
// inherent length bound, so overflow is truncated here.
const maxTitleLen = 100

// NoteService implements the note operations on top of the repository and
// the AI service.
type NoteService struct {
	repo repository.NoteRepository
	ai   AIService
}

func NewNoteService(repo repository.NoteRepository, ai AIService) *NoteService {
	return &NoteService{repo: repo, ai: ai}
}

// CreateNote inserts a note, asking the model for a title when none is given.
func (s *NoteService) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	if title == "" {
		generated := s.ai.Generate(ctx, ActionAutoTitle, content)
		if generated == "" || IsFailure(generated) {
			log.Printf("SERVICE: auto-title unavailable, falling back to %q", untitledFallback)
			title = untitledFallback
		} else {
			title = generated
		}
	}
	return s.repo.Insert(ctx, truncateTitle(title), content)
}

// ListNotes returns all notes in display order: pinned first, newest first.
func (s *NoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.repo.List(ctx)
}

// UpdateNote applies a partial update. Returns (nil, nil) when the note does
// not exist.
func (s *NoteService) UpdateNote(ctx context.Context, id uint, req models.UpdateNoteRequest) (*models.Note, error) {
	patch := repository.NotePatch{
		Content: req.Content,
	}
	if req.Title != nil {
		title := truncateTitle(*req.Title)
		patch.Title = &title
	}
	if pinned, present := req.PinnedValue(); present {
		patch.IsPinned = &pinned
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteNote removes a note. Returns false when no such note exists.
func (s *NoteService) DeleteNote(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// GenerateTitle asks the model for a title. Failure markers are returned
// verbatim; the caller decides how to display them.
func (s *NoteService) GenerateTitle(ctx context.Context, content string) string {
	return s.ai.Generate(ctx, ActionAutoTitle, content)
}

// ProcessAI runs an action over the note's content and stores the result as
// the note's insight, replacing any previous one. The insight is written even
// when the result is a failure marker, so the user sees the error inline.
// found is false when the note does not exist.
func (s *NoteService) ProcessAI(ctx context.Context, id uint, action string) (result string, found bool, err error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil || note == nil {
		return "", false, err
	}
	result = s.ai.Generate(ctx, action, note.Content)
	if _, err := s.repo.Update(ctx, id, repository.NotePatch{AIInsight: &result}); err != nil {
		return "", true, err
	}
	return result, true, nil
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen])
}
