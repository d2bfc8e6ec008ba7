// Package audit appends a timestamped activity trail to a CSV log file.
// The log is a write-only sink: nothing in the system ever reads it back.
package audit

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// header is the canonical column set, written once when the file is new.
var header = []string{"Timestamp", "Username", "Role", "Action"}

// Logger appends audit entries to a single log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger writing to the given file path.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, errors.New("audit log path is not set")
	}
	return &Logger{path: path}, nil
}

// Record appends one entry with the current timestamp. The header row is
// written first when the file is new or empty.
func (l *Logger) Record(username, role, action string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{time.Now().Format(timestampLayout), username, role, action}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
