package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"productivity-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestNoteLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	content := map[string]any{
		"type": "doc",
		"content": []map[string]any{
			{"type": "paragraph", "text": "hello"},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/notes", token, map[string]any{
		"title":   "Meeting notes",
		"content": content,
	})
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Note](t, w)
	require.NotEmpty(t, created.ID)

	// The document round-trips untouched.
	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(created.Content, &roundTrip))
	require.Equal(t, "doc", roundTrip["type"])

	// Patching only the title leaves the content byte-identical.
	w = doJSON(t, r, http.MethodPatch, "/api/notes/"+created.ID, token, map[string]any{"title": "Renamed"})
	requireStatus(t, w, http.StatusOK)
	patched := decode[models.Note](t, w)
	require.Equal(t, "Renamed", patched.Title)
	require.JSONEq(t, string(created.Content), string(patched.Content))

	// Explicit null clears the document.
	w = doJSON(t, r, http.MethodPatch, "/api/notes/"+created.ID, token, map[string]any{"content": nil})
	requireStatus(t, w, http.StatusOK)
	cleared := decode[models.Note](t, w)
	require.Contains(t, []string{"", "null"}, string(cleared.Content))

	w = doJSON(t, r, http.MethodDelete, "/api/notes/"+created.ID, token, nil)
	requireStatus(t, w, http.StatusOK)
	// Deleting again is NotFound, not a crash.
	w = doJSON(t, r, http.MethodDelete, "/api/notes/"+created.ID, token, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestCreateNote_RequiresTitle(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/notes", token, map[string]any{"content": map[string]any{}})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestReorderNotes_AtomicOnForeignID(t *testing.T) {
	r := newTestRouter(t)
	alice := tokenFor(t, "u-alice", "alice@example.com")
	bob := tokenFor(t, "u-bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/notes", alice, map[string]any{"title": "mine"})
	mine := decode[models.Note](t, w)
	w = doJSON(t, r, http.MethodPost, "/api/notes", bob, map[string]any{"title": "theirs"})
	theirs := decode[models.Note](t, w)

	w = doJSON(t, r, http.MethodPost, "/api/notes/reorder", alice, map[string]any{
		"notes": []map[string]any{
			{"id": mine.ID, "order": 0},
			{"id": theirs.ID, "order": 1},
		},
	})
	requireStatus(t, w, http.StatusNotFound)

	// Nothing from the batch was persisted.
	w = doJSON(t, r, http.MethodGet, "/api/notes", alice, nil)
	list := decode[[]models.Note](t, w)
	require.Len(t, list, 1)
	require.Nil(t, list[0].Order)
}
