package handlers

import (
	"encoding/json"
	"net/http"

	"productivity-api/internal/database"
	"productivity-api/internal/models"
	"productivity-api/internal/realtime"
	"productivity-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateNoteRequest represents the request payload for creating a note.
// Content is an opaque rich-text document; the server only checks that it
// is well-formed JSON.
type CreateNoteRequest struct {
	Title   string          `json:"title" binding:"required"`
	Content json.RawMessage `json:"content"`
}

// UpdateNoteRequest represents a partial note patch. A JSON null content
// clears the document; an absent content leaves it untouched.
type UpdateNoteRequest struct {
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
}

// ReorderNotesRequest carries the (id, order) batch of a drag-and-drop.
type ReorderNotesRequest struct {
	Notes []store.OrderUpdate `json:"notes" binding:"required"`
}

// GetNotes handles GET /api/notes
func GetNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := store.List[models.Note](database.GetDB(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetNoteByID handles GET /api/notes/:id
func GetNoteByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	note, err := store.Get[models.Note](database.GetDB(), userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Note not found", "Failed to fetch note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote handles POST /api/notes
func CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := models.Note{
		ID:     uuid.NewString(),
		Title:  req.Title,
		UserID: userID,
	}
	if len(req.Content) > 0 {
		if !json.Valid(req.Content) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content document"})
			return
		}
		note.Content = datatypes.JSON(req.Content)
	}

	if err := store.Create(database.GetDB(), &note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "notes", Action: "created", ID: note.ID})
	c.JSON(http.StatusCreated, note)
}

// UpdateNote handles PATCH /api/notes/:id (PUT is an alias)
func UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	db := database.GetDB()
	note, err := store.Get[models.Note](db, userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Note not found", "Failed to fetch note")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		note.Title = *req.Title
	}
	if len(req.Content) > 0 {
		if !json.Valid(req.Content) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content document"})
			return
		}
		// A literal null clears the document.
		if string(req.Content) == "null" {
			note.Content = nil
		} else {
			note.Content = datatypes.JSON(req.Content)
		}
	}

	if err := store.Save(db, note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "notes", Action: "updated", ID: note.ID})
	c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/:id
func DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	noteID := c.Param("id")
	if err := store.Delete[models.Note](database.GetDB(), userID, noteID); err != nil {
		respondStoreError(c, err, "Note not found", "Failed to delete note")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "notes", Action: "deleted", ID: noteID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
		"id":      noteID,
	})
}

// ReorderNotes handles POST /api/notes/reorder
func ReorderNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ReorderNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Reorder[models.Note](database.GetDB(), userID, req.Notes); err != nil {
		respondStoreError(c, err, "Note not found", "Failed to reorder notes")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "notes", Action: "reordered"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
