// Package runlog writes the append-only session log for a reset run.
//
// One log file is created per run, named with the run start timestamp.
// Every line is mirrored to a secondary writer (normally stdout) so the
// console shows the log in real time. The log is the only durable
// artifact of a run.
package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileName returns the session log filename for a run started at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("podcycle-%s.log", t.Format("20060102-150405"))
}

// Log is an append-only, single-writer session log.
type Log struct {
	file *os.File
	out  io.Writer
	path string
}

// New creates the session log file in dir and mirrors every line to
// mirror. The caller must Close the log when the run ends.
func New(dir string, startedAt time.Time, mirror io.Writer) (*Log, error) {
	path := filepath.Join(dir, FileName(startedAt))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create session log: %w", err)
	}

	out := io.Writer(file)
	if mirror != nil {
		out = io.MultiWriter(file, mirror)
	}

	return &Log{file: file, out: out, path: path}, nil
}

// NewWithWriter returns a log backed only by w. Tests use this to
// capture output without touching the filesystem.
func NewWithWriter(w io.Writer) *Log {
	return &Log{out: w}
}

// Path returns the log file path, or "" for writer-backed logs.
func (l *Log) Path() string {
	return l.path
}

// Printf appends one formatted line to the log.
func (l *Log) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Section appends a section heading for one member of the group.
func (l *Log) Section(title string) {
	fmt.Fprintf(l.out, "\n=== %s ===\n", title)
}

// Close closes the underlying file, if any.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
