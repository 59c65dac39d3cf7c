package usecase

import "errors"

var (
	ErrInvalidConversationID = errors.New("invalid conversation id")
	ErrEmptySearchTerm       = errors.New("search term is required")
)
