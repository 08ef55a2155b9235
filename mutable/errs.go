package mutable

import "errors"

var (
	ErrIndex = errors.New("index out of range")
	ErrKey   = errors.New("no such key")
)
