package query

import "errors"

var ErrCompile = errors.New("query compile error")
