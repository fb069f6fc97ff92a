package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/userdir/internal/domain"
	"github.com/msomdec/userdir/internal/service"
)

// UserHandler handles the user directory HTTP API.
type UserHandler struct {
	users    *service.UserService
	verifier *service.BasicVerifier
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, verifier *service.BasicVerifier) *UserHandler {
	return &UserHandler{users: users, verifier: verifier}
}

// HandleList returns all users.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		degradeToEmptyList(w, "list users", err)
		return
	}
	writeXML(w, http.StatusOK, toUserListDTO(users))
}

// HandleActive returns only active users.
func (h *UserHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListActive(r.Context())
	if err != nil {
		degradeToEmptyList(w, "list active users", err)
		return
	}
	writeXML(w, http.StatusOK, toUserListDTO(users))
}

// HandleSearch returns users whose name contains the name query
// parameter, case-insensitively.
func (h *UserHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("name") {
		writeError(w, http.StatusBadRequest, "missing required query parameter: name")
		return
	}

	users, err := h.users.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		degradeToEmptyList(w, "search users", err)
		return
	}
	writeXML(w, http.StatusOK, toUserListDTO(users))
}

// HandleGet returns a single user by id.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "get user", err)
		return
	}
	writeXML(w, http.StatusOK, toUserDTO(user))
}

// HandleCreate creates a new user from the XML body.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := readXML(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed XML request body")
		return
	}

	user := req.toUser()
	if err := h.users.Create(r.Context(), user); err != nil {
		h.writeServiceError(w, "create user", err)
		return
	}
	writeXML(w, http.StatusCreated, toUserDTO(user))
}

// HandleUpdate replaces every mutable field of the user at id.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := readXML(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed XML request body")
		return
	}

	user, err := h.users.Update(r.Context(), id, req.toUser())
	if err != nil {
		h.writeServiceError(w, "update user", err)
		return
	}
	writeXML(w, http.StatusOK, toUserDTO(user))
}

// HandlePatch updates only the fields present in the XML body.
func (h *UserHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req patchUserRequest
	if err := readXML(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed XML request body")
		return
	}

	user, err := h.users.Patch(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeServiceError(w, "patch user", err)
		return
	}
	writeXML(w, http.StatusOK, toUserDTO(user))
}

// HandleDelete removes the user at id. The request must carry a valid
// Basic Authorization header; authentication is checked before the
// record is looked up, so a bad credential yields 401 regardless of
// whether the target exists.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if !h.verifier.Authenticate(r.Header.Get("Authorization")) {
		h.writeServiceError(w, "delete user",
			fmt.Errorf("%w: please provide valid credentials", domain.ErrUnauthorized))
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, "delete user", err)
		return
	}
	writeXML(w, http.StatusOK, newSuccessResponse(
		fmt.Sprintf("user with id %d has been deleted", id)))
}

// writeServiceError maps service failures to status codes: 400 for
// invalid input, 401 for failed authentication, 404 for missing
// records, 409 for duplicate emails, 500 for everything else.
func (h *UserHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// degradeToEmptyList answers a failed list read with 200 and an empty
// envelope instead of surfacing the error. Kept for compatibility with
// existing consumers even though it masks store outages; do not copy
// this behavior into new endpoints.
func degradeToEmptyList(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	writeXML(w, http.StatusOK, toUserListDTO(nil))
}

// pathID parses the {id} path segment, answering 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}
