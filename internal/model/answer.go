package model

import "time"

// Answer records that a character answered a question with specific text.
// In demo sessions the ID is a per-session sequence; in the persistent game
// it comes from the Mongo counter collection.
type Answer struct {
	ID          int64     `json:"id" bson:"_id"`
	CharacterID int       `json:"character_id" bson:"characterId"`
	QuestionID  int       `json:"question_id" bson:"questionId"`
	AnswerText  string    `json:"answer_text" bson:"answerText"`
	AnsweredAt  time.Time `json:"answered_at" bson:"answeredAt"`

	// Question is the joined catalog entry, populated on reads that return
	// answer logs. Never persisted.
	Question *Question `json:"question,omitempty" bson:"-"`
}
