package http

import (
	"errors"
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// projectID parses the {id} path segment. A malformed id gets the same 404 as
// an unknown one so the two cases are indistinguishable to the caller.
func projectID(w http.ResponseWriter, r *http.Request) (idx.ID, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeProjectNotFound(w)
		return idx.Zero, false
	}
	return id, true
}

func writeProjectNotFound(w http.ResponseWriter) {
	httpx.WriteMessage(w, http.StatusNotFound, "Project not found")
}

// HandleList returns all of the user's projects.
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Success	200	{object}	ProjectListResponse
//	@Failure	401	{object}	httpx.Message
//	@Router		/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	projects, err := h.ProjectService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProjectListResponse(projects))
}

// HandleCreate creates a project owned by the user.
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ProjectRequest	true	"Project details"
//	@Success	201		{object}	ProjectResponse
//	@Failure	400		{object}	httpx.Message	"Missing or oversized project name"
//	@Failure	401		{object}	httpx.Message
//	@Router		/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	var req ProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.ProjectService.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newProjectResponse(project))
}

// HandleGet returns one project.
//
//	@Summary	Get a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project id"
//	@Success	200	{object}	ProjectResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"Absent or owned by another user"
//	@Router		/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	project, err := h.ProjectService.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeProjectNotFound(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProjectResponse(project))
}

// HandleUpdate updates a project's name and description.
//
//	@Summary	Update a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Project id"
//	@Param		body	body		ProjectRequest	true	"New values"
//	@Success	200		{object}	ProjectResponse
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message
//	@Failure	404		{object}	httpx.Message
//	@Router		/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.ProjectService.Update(r.Context(), userID, id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeProjectNotFound(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProjectResponse(project))
}

// HandleDelete removes a project.
//
//	@Summary	Delete a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project id"
//	@Success	200	{object}	httpx.Message
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message
//	@Router		/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeProjectNotFound(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Project deleted successfully!")
}
