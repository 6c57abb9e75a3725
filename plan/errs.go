package plan

import "errors"

var (
	ErrDecode = errors.New("plan decode error")
	ErrNoName = errors.New("plan item without name")
)
