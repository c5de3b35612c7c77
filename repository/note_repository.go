package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notemind/models"

	"gorm.io/gorm"
)

// NotePatch is a partial update; nil fields are left untouched.
type NotePatch struct {
	Title     *string
	Content   *string
	IsPinned  *bool
	AIInsight *string
}

// NoteRepository defines the persistence operations for notes.
type NoteRepository interface {
	Insert(ctx context.Context, title, content string) (*models.Note, error)
	Get(ctx context.Context, id uint) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Update(ctx context.Context, id uint, patch NotePatch) (*models.Note, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type gormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a repository backed by the given GORM handle.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Insert(ctx context.Context, title, content string) (*models.Note, error) {
	note := &models.Note{
		Title:     title,
		Content:   content,
		IsPinned:  false,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}
	return note, nil
}

// Get returns the note, or (nil, nil) when no row exists.
func (r *gormNoteRepository) Get(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load note %d: %w", id, err)
	}
	return &note, nil
}

// List returns all notes: pinned first, then newest first. The id tie-break
// keeps the order deterministic when two notes share a timestamp.
func (r *gormNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Order("is_pinned DESC, created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (r *gormNoteRepository) Update(ctx context.Context, id uint, patch NotePatch) (*models.Note, error) {
	note, err := r.Get(ctx, id)
	if err != nil || note == nil {
		return nil, err
	}
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.IsPinned != nil {
		note.IsPinned = *patch.IsPinned
	}
	if patch.AIInsight != nil {
		note.AIInsight = patch.AIInsight
	}
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return note, nil
}

func (r *gormNoteRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Note{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete note %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
