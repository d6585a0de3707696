// Package runlog keeps a plain-text record of a run next to the figures it
// produced.
package runlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the name of the log written into a run directory.
const FileName = "log.txt"

// Dir returns root/<date>/<time>, with ": note" appended when note is set.
func Dir(
	root, note string,
	now time.Time,
) (
	string,
) {

	name := now.Format("15:04:05")
	if note != "" {
		name += ": " + note
	}
	return filepath.Join(root, now.Format("2006-Jan-02"), name)
}

type Log struct {
	lines []string
}

func (l *Log) Add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...)+"\n")
}

// Write stores the log as dir/log.txt, creating dir if it doesn't exist.
func (l *Log) Write(dir string) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}

	txt, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	defer func() {
		if cerr := txt.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("runlog: %w", cerr)
		}
	}()

	w := bufio.NewWriter(txt)
	for _, line := range l.lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("runlog: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}

	return nil
}
