package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrNoQuizResponses = errors.New("no quiz responses found")
	ErrCollegeNotFound = errors.New("college not found")
)
