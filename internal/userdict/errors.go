package userdict

import (
	"errors"
	"fmt"
)

var (
	ErrBackupFailed = errors.New("backup failed")
	ErrWriteFailed  = errors.New("write failed")
)

// BackupError reports a failure to create the backup copy of the dictionary.
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("back up %s: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

func (e *BackupError) Is(target error) bool {
	return target == ErrBackupFailed
}

// WriteError reports a failure while appending entries to the dictionary.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("append to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}
