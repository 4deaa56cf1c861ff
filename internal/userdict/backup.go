package userdict

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

var copyFile = func(src, dest string) error {
	return copy.Copy(src, dest, copy.Options{
		Sync: true,
	})
}

// EnsureBackup copies original to backup unless backup already exists.
// An existing backup is never touched, so it keeps the state from before the first import.
// The copy is written to a temporary sibling and renamed into place, so backup only ever
// appears complete.
func EnsureBackup(original, backup string) (bool, error) {
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, &BackupError{Path: backup, Err: fmt.Errorf("os.Stat > %w", err)}
	}

	info, err := os.Stat(original)
	if err != nil {
		return false, &BackupError{Path: original, Err: fmt.Errorf("os.Stat > %w", err)}
	}
	if info.IsDir() {
		return false, &BackupError{Path: original, Err: fmt.Errorf("%s is a directory", original)}
	}

	tmp, err := os.CreateTemp(filepath.Dir(backup), filepath.Base(backup)+".tmp-*")
	if err != nil {
		return false, &BackupError{Path: backup, Err: fmt.Errorf("os.CreateTemp > %w", err)}
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return false, &BackupError{Path: backup, Err: fmt.Errorf("tmp.Close > %w", err)}
	}

	if err := copyFile(original, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return false, &BackupError{Path: backup, Err: fmt.Errorf("copy.Copy > %w", err)}
	}
	if err := os.Rename(tmpPath, backup); err != nil {
		_ = os.Remove(tmpPath)
		return false, &BackupError{Path: backup, Err: fmt.Errorf("os.Rename > %w", err)}
	}
	return true, nil
}
