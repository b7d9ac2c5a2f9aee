package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

type level string

const (
	levelInfo  level = "info"
	levelAudit level = "audit"
	levelWarn  level = "warn"
	levelError level = "error"
)

// line is one JSON log record. Request fields stay empty for events that
// happen outside a request, such as startup.
type line struct {
	TS     string         `json:"ts"`
	Level  level          `json:"level"`
	Action string         `json:"action,omitempty"`
	ReqID  string         `json:"req_id,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	ToyID  string         `json:"toy_id,omitempty"`
	Status int            `json:"status,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func (l *line) fromRequest(c *fiber.Ctx) {
	l.Method = c.Method()
	l.Path = c.Path()
	l.ToyID = c.Params("toyId")
	l.Status = c.Response().StatusCode()
	l.IP = c.IP()
	if rid, ok := c.Locals("requestid").(string); ok {
		l.ReqID = rid
	}
}

func emit(lv level, c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := line{TS: time.Now().UTC().Format(time.RFC3339), Level: lv, Action: action, Fields: fields}
	if c != nil {
		l.fromRequest(c)
	}
	if err != nil {
		l.Err = err.Error()
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

// Info records lifecycle events; c is usually nil.
func Info(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelInfo, c, action, nil, fields)
}

// Audit records a write to the collection.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelAudit, c, action, nil, fields)
}

func Warn(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit(levelError, c, action, err, fields)
}
