// Package log configures the process-wide apex logger.
package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the default log level.
const EnvLevel = "MEMOBENCH_LOG"

// InitLogger sets up apex with a CustomHandler on stderr and a log level
// from the MEMOBENCH_LOG env variable, ERROR when unset or invalid.
func InitLogger() {
	log.SetHandler(NewHandler(os.Stderr))
	level := os.Getenv(EnvLevel)
	if level == "" {
		level = "error"
	}
	if err := SetLevel(level); err != nil {
		log.SetLevel(log.ErrorLevel)
	}
}

// SetLevel parses level ("debug", "info", "warn", "error", "fatal") and
// applies it to the global logger.
func SetLevel(level string) error {
	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(l)
	return nil
}

// CustomHandler formats log entries as single lines and writes them to w.
type CustomHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler returns a CustomHandler writing to w.
func NewHandler(w io.Writer) *CustomHandler {
	return &CustomHandler{w: w}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	names := e.Fields.Names()
	sort.Strings(names)
	var fields strings.Builder
	for _, name := range names {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return err
}
