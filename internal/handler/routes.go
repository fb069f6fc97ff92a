package handler

import "net/http"

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *UserHandler) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Literal segments win over {id}, so /search and /active never
	// reach the by-id handler.
	mux.HandleFunc("GET /api/users", users.HandleList)
	mux.HandleFunc("GET /api/users/search", users.HandleSearch)
	mux.HandleFunc("GET /api/users/active", users.HandleActive)
	mux.HandleFunc("GET /api/users/{id}", users.HandleGet)
	mux.HandleFunc("POST /api/users", users.HandleCreate)
	mux.HandleFunc("PUT /api/users/{id}", users.HandleUpdate)
	mux.HandleFunc("PATCH /api/users/{id}", users.HandlePatch)
	mux.HandleFunc("DELETE /api/users/{id}", users.HandleDelete)
}
