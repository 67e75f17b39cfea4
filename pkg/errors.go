package spectra

import "fmt"

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error {
	return e.Err
}

// ErrTreeNotFound represents a missing or unusable event tree in a ROOT file.
type ErrTreeNotFound struct {
	TreeName string
	Filename string
}

func (e *ErrTreeNotFound) Error() string {
	return fmt.Sprintf("tree %q not found in file %q", e.TreeName, e.Filename)
}

// ErrBadManifest represents a malformed line in a tab-delimited manifest.
type ErrBadManifest struct {
	Filename string
	Err      error
}

func (e *ErrBadManifest) Error() string {
	return fmt.Sprintf("error parsing manifest %q: %v", e.Filename, e.Err)
}

func (e *ErrBadManifest) Unwrap() error {
	return e.Err
}
