package grouping

import "errors"

var (
	ErrGroupNotFound   = errors.New("field group not found")
	ErrFieldAssigned   = errors.New("field is already assigned to a group")
	ErrIndexOutOfRange = errors.New("field index out of range")
	ErrGroupAtBoundary = errors.New("field group cannot move further")
	ErrUnknownAction   = errors.New("unknown action")
	ErrAmbiguousGroup  = errors.New("more than one field group matches")
)
