package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/msomdec/userdir/internal/handler"
)

func TestIntegration_UserLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// 1. Create a user.
	body := `<user><name>Cycle User</name><email>cycle@example.com</email><phone>+15550100</phone></user>`
	resp := doXML(t, http.MethodPost, srv.URL+"/api/users", body, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	var created handler.UserDTO
	decodeBody(t, resp, &created)
	userURL := fmt.Sprintf("%s/api/users/%d", srv.URL, created.ID)

	// 2. Read it back.
	resp = doXML(t, http.MethodGet, userURL, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	var fetched handler.UserDTO
	decodeBody(t, resp, &fetched)
	if fetched != created {
		t.Fatalf("fetched %+v does not match created %+v", fetched, created)
	}

	// 3. Patch the phone only.
	resp = doXML(t, http.MethodPatch, userURL, `<user><phone>555</phone></user>`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.StatusCode)
	}
	var patched handler.UserDTO
	decodeBody(t, resp, &patched)
	if patched.Phone != "555" || patched.Name != created.Name || patched.Email != created.Email {
		t.Fatalf("unexpected patched record: %+v", patched)
	}

	// 4. Replace it wholesale.
	resp = doXML(t, http.MethodPut, userURL,
		`<user><name>Cycle Replaced</name><email>cycle2@example.com</email><active>true</active></user>`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put: expected 200, got %d", resp.StatusCode)
	}
	var replaced handler.UserDTO
	decodeBody(t, resp, &replaced)
	if replaced.Name != "Cycle Replaced" || replaced.Email != "cycle2@example.com" || replaced.Phone != "" {
		t.Fatalf("unexpected replaced record: %+v", replaced)
	}

	// 5. Delete without credentials fails, with credentials succeeds.
	resp = doXML(t, http.MethodDelete, userURL, "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated delete: expected 401, got %d", resp.StatusCode)
	}
	resp = doXML(t, http.MethodDelete, userURL, "", basicAuth("admin:admin123"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}

	// 6. The record is gone.
	resp = doXML(t, http.MethodGet, userURL, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}
