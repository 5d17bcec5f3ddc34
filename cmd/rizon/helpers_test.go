package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// isolateEnv keeps user config and RIZON_* variables out of a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"RIZON_API_URL", "RIZON_LOG_LEVEL", "RIZON_LOG_FILE", "RIZON_THEME", envEmail} {
		t.Setenv(key, "")
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

type fakeBackend struct {
	mu     sync.Mutex
	emails []string
	URL    string
}

func (b *fakeBackend) received() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.emails...)
}

// newFakeBackend serves the request-link route with a fixed status and body.
func newFakeBackend(t *testing.T, status int, body string) *fakeBackend {
	t.Helper()
	backend := &fakeBackend{}

	r := chi.NewRouter()
	r.Post("/api/v1/auth/request-link", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Email string `json:"email"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))

		backend.mu.Lock()
		backend.emails = append(backend.emails, payload.Email)
		backend.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	backend.URL = server.URL
	return backend
}
