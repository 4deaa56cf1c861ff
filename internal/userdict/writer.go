package userdict

import (
	"bufio"
	"fmt"
	"os"
)

const DefaultSectionLabel = "用户自定义词库"

// Append writes a section header followed by one line per entry at the end of the file at path.
// The file must already exist; it is never truncated.
// Everything written is synced to storage before Append returns.
func Append(path string, sectionLabel string, entries []Entry) (count int, err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return 0, &WriteError{Path: path, Err: fmt.Errorf("os.OpenFile > %w", err)}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: fmt.Errorf("file.Close > %w", closeErr)}
		}
	}()

	buf := bufio.NewWriter(file)
	if _, err := buf.WriteString("\n\n" + sectionLabel + "\n"); err != nil {
		return 0, &WriteError{Path: path, Err: fmt.Errorf("write section header > %w", err)}
	}
	for _, entry := range entries {
		if _, err := buf.WriteString(entry.String() + "\n"); err != nil {
			return 0, &WriteError{Path: path, Err: fmt.Errorf("write entry %s > %w", entry.Display, err)}
		}
	}
	if err := buf.Flush(); err != nil {
		return 0, &WriteError{Path: path, Err: fmt.Errorf("buf.Flush > %w", err)}
	}
	if err := file.Sync(); err != nil {
		return 0, &WriteError{Path: path, Err: fmt.Errorf("file.Sync > %w", err)}
	}
	return len(entries), nil
}
