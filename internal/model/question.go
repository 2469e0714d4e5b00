package model

import "time"

// Question is a catalog entry. Difficulty doubles as the "season" filter
// (observed domain 1-4) when assigning questions.
type Question struct {
	ID         int       `json:"id" bson:"_id"`
	Text       string    `json:"text" bson:"text"`
	Category   string    `json:"category,omitempty" bson:"category,omitempty"`
	Difficulty int       `json:"difficulty" bson:"difficulty"`
	CreatedAt  time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// GameQuestion is the assignment result: the resolved character together
// with the randomly picked question.
type GameQuestion struct {
	Character Character `json:"character"`
	Question  Question  `json:"question"`
}
