package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"toystore/internal/config"
	"toystore/internal/domain"
	"toystore/internal/http/handlers"
	"toystore/internal/repos"
)

// Full app over an in-memory sqlite store
func newToyApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if cfg.SearchRateMax == 0 {
		cfg.SearchRateMax = 100
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}
	return handlers.NewApp(cfg, handlers.NewDeps(repos.NewToyRepo(db)))
}

func do(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
	return v
}

func create(t *testing.T, app *fiber.App, toy map[string]any) string {
	t.Helper()
	resp, body := do(t, app, "POST", "/toys", toy)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: status %d body=%s", resp.StatusCode, body)
	}
	res := decode[domain.InsertResult](t, body)
	if !res.Acknowledged || res.InsertedID == "" {
		t.Fatalf("create: bad ack %s", body)
	}
	return res.InsertedID
}
