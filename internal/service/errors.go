package service

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidScope    = errors.New("invalid scope")
	ErrInvalidDocument = errors.New("invalid document")
	ErrNotAnalyzed     = errors.New("session has not been analyzed")
)
