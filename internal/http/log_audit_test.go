package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"testing"

	"toystore/internal/config"
)

type auditLogEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	ToyID  string         `json:"toy_id"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []auditLogEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []auditLogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e auditLogEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []auditLogEntry, action string) (auditLogEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return auditLogEntry{}, false
}

// writes to the collection leave audit lines
func TestWritesAreAudited(t *testing.T) {
	app := newToyApp(t, config.Config{})

	var id string
	entries := captureLogs(t, func() {
		id = create(t, app, map[string]any{"toyName": "Bot"})
		do(t, app, "PUT", "/toys/"+id, map[string]any{"toyName": "Robo"})
		do(t, app, "DELETE", "/toys/"+id, nil)
	})

	e, ok := findAction(entries, "toy.create")
	if !ok || e.Level != "audit" || e.Fields["toy_id"] != id {
		t.Fatalf("expected toy.create audit with id, got %+v", entries)
	}
	if e, ok := findAction(entries, "toy.update"); !ok || e.ToyID != id {
		t.Fatalf("expected toy.update audit for %s, got %+v", id, entries)
	}
	if e, ok := findAction(entries, "toy.delete"); !ok || e.ToyID != id {
		t.Fatalf("expected toy.delete audit for %s, got %+v", id, entries)
	}
}

// server errors are logged with the cause the client never sees
func TestServerErrorsAreLogged(t *testing.T) {
	app := newToyApp(t, config.Config{})
	entries := captureLogs(t, func() {
		do(t, app, "GET", "/toys/not-a-real-id", nil)
	})
	if e, ok := findAction(entries, "server.error"); !ok || e.Level != "error" {
		t.Fatalf("expected server.error log, got %+v", entries)
	}
}
