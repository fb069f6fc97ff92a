package handler

import "net/http"

// HandleHealthz responds with a 200 OK status envelope indicating the
// server is up.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeXML(w, http.StatusOK, newSuccessResponse("ok"))
}
