package ir

import "errors"

var (
	ErrType    = errors.New("type error")
	ErrNumber  = errors.New("invalid number")
	ErrFromAny = errors.New("cannot convert to node")
)
