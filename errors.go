package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when a template name resolves to no file.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrEmptyBlockStack is returned by stop when no block is open in the
	// currently executing template.
	ErrEmptyBlockStack = errors.New("no open block to stop in the current template")
	// ErrUnclosedBlock is returned when a template finishes with blocks still open.
	ErrUnclosedBlock = errors.New("block not closed")
)

// NotFoundError describes a failed template resolution.
type NotFoundError struct {
	Name      string
	Candidate string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`template "%s" not found at "%s" or as a file path`, e.Name, e.Candidate)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
