package handler

import (
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
)

const contentTypeXML = "application/xml"

// writeXML sends an XML response with the given status code and body.
func writeXML(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(status)
	io.WriteString(w, xml.Header)
	if err := xml.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write XML response", "error", err)
	}
}

// writeError sends an error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeXML(w, status, newErrorResponse(message))
}

// readXML decodes the request body into the given destination.
func readXML(r *http.Request, dst any) error {
	return xml.NewDecoder(r.Body).Decode(dst)
}
