package model

import "time"

// Character is a persona players answer questions as. In the persistent
// game it lives in MongoDB and is admin-editable; demo sessions carry an
// immutable snapshot of the sample catalog instead.
type Character struct {
	ID          int       `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// CharacterStatus is the per-character progress row returned by the status
// endpoints: how many questions this character has answered out of the
// full catalog.
type CharacterStatus struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	AnsweredCount  int    `json:"answered_count"`
	TotalQuestions int    `json:"total_questions"`
}

// CharacterAnswers pairs a character with its ordered answer log.
type CharacterAnswers struct {
	Character Character `json:"character"`
	Answers   []Answer  `json:"answers"`
}
