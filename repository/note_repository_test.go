package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"notemind/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (NoteRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "notemind.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Note{}))
	return NewNoteRepository(db), db
}

func setCreatedAt(t *testing.T, db *gorm.DB, id uint, ts time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&models.Note{}).Where("id = ?", id).Update("created_at", ts).Error)
}

func TestInsertAssignsDefaults(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	before := time.Now().UTC()
	note, err := repo.Insert(ctx, "Groceries", "buy milk")
	require.NoError(t, err)

	require.NotZero(t, note.ID)
	require.Equal(t, "Groceries", note.Title)
	require.Equal(t, "buy milk", note.Content)
	require.False(t, note.IsPinned)
	require.Nil(t, note.AIInsight)
	require.False(t, note.CreatedAt.Before(before.Truncate(time.Second)))
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t)

	note, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, note)
}

func TestListOrdersPinnedThenNewest(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	oldest, err := repo.Insert(ctx, "oldest", "a")
	require.NoError(t, err)
	pinned, err := repo.Insert(ctx, "pinned", "b")
	require.NoError(t, err)
	newest, err := repo.Insert(ctx, "newest", "c")
	require.NoError(t, err)

	setCreatedAt(t, db, oldest.ID, base)
	setCreatedAt(t, db, pinned.ID, base.Add(time.Minute))
	setCreatedAt(t, db, newest.ID, base.Add(2*time.Minute))

	yes := true
	_, err = repo.Update(ctx, pinned.ID, NotePatch{IsPinned: &yes})
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	require.Equal(t, pinned.ID, notes[0].ID)
	require.Equal(t, newest.ID, notes[1].ID)
	require.Equal(t, oldest.ID, notes[2].ID)
}

func TestListBreaksTimestampTiesByID(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	ts := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	first, err := repo.Insert(ctx, "first", "a")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "second", "b")
	require.NoError(t, err)
	setCreatedAt(t, db, first.ID, ts)
	setCreatedAt(t, db, second.ID, ts)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, second.ID, notes[0].ID)
	require.Equal(t, first.ID, notes[1].ID)
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.Insert(ctx, "Groceries", "buy milk")
	require.NoError(t, err)
	created := note.CreatedAt

	title := "Shopping"
	updated, err := repo.Update(ctx, note.ID, NotePatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Shopping", updated.Title)
	require.Equal(t, "buy milk", updated.Content)
	require.False(t, updated.IsPinned)
	require.Nil(t, updated.AIInsight)
	require.WithinDuration(t, created, updated.CreatedAt, time.Second)

	insight := "A short summary"
	pinned := true
	updated, err = repo.Update(ctx, note.ID, NotePatch{AIInsight: &insight, IsPinned: &pinned})
	require.NoError(t, err)
	require.Equal(t, "Shopping", updated.Title)
	require.True(t, updated.IsPinned)
	require.NotNil(t, updated.AIInsight)
	require.Equal(t, insight, *updated.AIInsight)
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t)

	title := "x"
	note, err := repo.Update(context.Background(), 999, NotePatch{Title: &title})
	require.NoError(t, err)
	require.Nil(t, note)
}

func TestDeleteReportsRemoval(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.Insert(ctx, "Groceries", "buy milk")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, note.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.Get(ctx, note.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = repo.Delete(ctx, note.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
