package controller

import (
	"net/http"
	"strconv"

	"notemind/models"
	"notemind/services"

	"github.com/gin-gonic/gin"
)

// NoteController handles the HTTP requests for the notes API. It depends on
// the NoteService to perform the actual business logic.
type NoteController struct {
	notes *services.NoteService
}

// NewNoteController is called from main.go to inject the service dependency.
func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{notes: notes}
}

// ListNotes is the Gin handler for GET /api/notes. Pinned notes come first,
// then newest first.
func (c *NoteController) ListNotes(ctx *gin.Context) {
	notes, err := c.notes.ListNotes(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list notes"})
		return
	}

	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, note.View())
	}
	ctx.JSON(http.StatusOK, views)
}

// CreateNote is the Gin handler for POST /api/notes. When the title is
// omitted the service asks the model for one; creation never fails because
// the model is unavailable.
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req models.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Content == "" {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "content is required"})
		return
	}

	note, err := c.notes.CreateNote(ctx.Request.Context(), req.Title, req.Content)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create note"})
		return
	}
	ctx.JSON(http.StatusCreated, note.View())
}

// UpdateNote is the Gin handler for PUT /api/notes/:id. The body may carry
// any subset of title, content and is_pinned.
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, ok := noteID(ctx)
	if !ok {
		return
	}

	var req models.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	note, err := c.notes.UpdateNote(ctx.Request.Context(), id, req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update note"})
		return
	}
	if note == nil {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "note not found"})
		return
	}
	ctx.JSON(http.StatusOK, note.View())
}

// DeleteNote is the Gin handler for DELETE /api/notes/:id.
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, ok := noteID(ctx)
	if !ok {
		return
	}

	deleted, err := c.notes.DeleteNote(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete note"})
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "note not found"})
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "note deleted"})
}

// GenerateTitle is the Gin handler for POST /api/generate-title. Failure
// markers from the model are passed through verbatim.
func (c *NoteController) GenerateTitle(ctx *gin.Context) {
	var req models.GenerateTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Content == "" {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "content is required"})
		return
	}

	title := c.notes.GenerateTitle(ctx.Request.Context(), req.Content)
	ctx.JSON(http.StatusOK, models.TitleResponse{Title: title})
}

// ProcessAI is the Gin handler for POST /api/process-ai. The result replaces
// the note's stored insight, failure markers included.
func (c *NoteController) ProcessAI(ctx *gin.Context) {
	var req models.ProcessAIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, found, err := c.notes.ProcessAI(ctx.Request.Context(), req.NoteID, req.Action)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process note"})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "note not found"})
		return
	}
	ctx.JSON(http.StatusOK, models.ResultResponse{Result: result})
}

// noteID parses the :id route parameter. A non-numeric id can never match a
// note, so it is reported as not found rather than bad input.
func noteID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "note not found"})
		return 0, false
	}
	return uint(id), true
}
