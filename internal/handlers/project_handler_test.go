package handlers

import (
	"net/http"
	"testing"

	"productivity-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateProject_Defaults(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{"title": "Side project"})
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Project](t, w)
	require.Equal(t, models.ProjectStatusActive, created.Status)
	require.Empty(t, created.NextSteps)
	require.Nil(t, created.Order)
}

func TestCreateProject_RequiresTitle(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{"status": "En pause"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestProject_NextStepsGetStableIDs(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{
		"title": "Launch",
		"nextSteps": []map[string]any{
			{"text": "write docs", "completed": false},
			{"text": "write docs", "completed": false}, // duplicate text is fine
		},
	})
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Project](t, w)
	require.Len(t, created.NextSteps, 2)
	require.NotEmpty(t, created.NextSteps[0].ID)
	require.NotEmpty(t, created.NextSteps[1].ID)
	require.NotEqual(t, created.NextSteps[0].ID, created.NextSteps[1].ID)

	// Toggling one of two identically named steps is unambiguous by id.
	steps := []map[string]any{
		{"id": created.NextSteps[0].ID, "text": "write docs", "completed": true},
		{"id": created.NextSteps[1].ID, "text": "write docs", "completed": false},
	}
	w = doJSON(t, r, http.MethodPatch, "/api/projects/"+created.ID, token, map[string]any{"nextSteps": steps})
	requireStatus(t, w, http.StatusOK)
	patched := decode[models.Project](t, w)
	require.Equal(t, created.NextSteps[0].ID, patched.NextSteps[0].ID)
	require.True(t, patched.NextSteps[0].Completed)
	require.False(t, patched.NextSteps[1].Completed)
}

func TestUpdateProject_PartialMerge(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{
		"title":       "Keep fields",
		"description": "desc",
		"deployment":  "https://example.com",
	})
	requireStatus(t, w, http.StatusCreated)
	project := decode[models.Project](t, w)

	w = doJSON(t, r, http.MethodPatch, "/api/projects/"+project.ID, token, map[string]any{"status": models.ProjectStatusPaused})
	requireStatus(t, w, http.StatusOK)
	patched := decode[models.Project](t, w)
	require.Equal(t, models.ProjectStatusPaused, patched.Status)
	require.Equal(t, "Keep fields", patched.Title)
	require.Equal(t, "desc", *patched.Description)
	require.Equal(t, "https://example.com", *patched.Deployment)
}

func TestProject_OwnershipIsolation(t *testing.T) {
	r := newTestRouter(t)
	alice := tokenFor(t, "u-alice", "alice@example.com")
	bob := tokenFor(t, "u-bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", alice, map[string]any{"title": "Mine"})
	project := decode[models.Project](t, w)

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+project.ID, bob, nil)
	requireStatus(t, w, http.StatusNotFound)
	w = doJSON(t, r, http.MethodDelete, "/api/projects/"+project.ID, bob, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestReorderProjects(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, "u-1", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{"title": "A"})
	a := decode[models.Project](t, w)
	w = doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]any{"title": "B"})
	b := decode[models.Project](t, w)

	w = doJSON(t, r, http.MethodPost, "/api/projects/reorder", token, map[string]any{
		"projects": []map[string]any{
			{"id": b.ID, "order": 0},
			{"id": a.ID, "order": 1},
		},
	})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/projects", token, nil)
	list := decode[[]models.Project](t, w)
	require.Len(t, list, 2)
	require.Equal(t, b.ID, list[0].ID)
	require.Equal(t, a.ID, list[1].ID)
}
