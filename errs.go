package wbs

import "errors"

var (
	// ErrDuplicate is returned when attaching a node would violate the
	// duplicate name policy in effect.
	ErrDuplicate = errors.New("duplicate violation")
	// ErrUniformity is returned when attaching a node of another kind under a
	// uniform node, or when the value to attach is not a node at all.
	ErrUniformity = errors.New("uniformity violation")

	ErrNotFound           = errors.New("node not found")
	ErrFunctionEvaluation = errors.New("function evaluation error")
	ErrTreeNavigation     = errors.New("tree navigation error")
)
