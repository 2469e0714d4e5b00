package service

import "errors"

var (
	// ErrCharacterNotFound means the character id is unknown (to the
	// session in demo mode, to the database otherwise).
	ErrCharacterNotFound = errors.New("character not found")

	// ErrQuestionNotFound means the question id is unknown.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrNoQuestionsAvailable is the exhaustion signal: every question
	// matching the filter has been answered. It is an expected game state,
	// not a fault.
	ErrNoQuestionsAvailable = errors.New("no questions available")

	// ErrEmptyAnswer rejects whitespace-only answer text before any
	// mutation happens.
	ErrEmptyAnswer = errors.New("answer text is required")

	// ErrAlreadyAnswered means the (character, question) pair already has
	// a recorded answer.
	ErrAlreadyAnswered = errors.New("question already answered by this character")

	// ErrValidation covers malformed catalog input (empty name or text).
	ErrValidation = errors.New("validation failed")
)
