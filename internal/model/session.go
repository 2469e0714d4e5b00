package model

import "time"

// DemoSession is one ephemeral game instance, identified by an opaque
// token. It carries its own snapshot of the sample catalogs so no state is
// shared between sessions. The whole struct round-trips through JSON so a
// session store can live outside process memory.
type DemoSession struct {
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`

	Characters []Character `json:"characters"`
	Questions  []Question  `json:"questions"`

	// Answers is the flat log of everything recorded in this session;
	// CharacterAnswers indexes the same records by character id in
	// recording order.
	Answers          []Answer         `json:"answers"`
	CharacterAnswers map[int][]Answer `json:"characterAnswers"`

	// NextAnswerID is the per-session answer id sequence. Uniqueness only
	// matters within one session's log.
	NextAnswerID int64 `json:"nextAnswerId"`
}

// Touch refreshes the idle timer. LastActivity never moves backwards.
func (s *DemoSession) Touch(now time.Time) {
	if now.After(s.LastActivity) {
		s.LastActivity = now
	}
}

// CharacterByID resolves a character from this session's snapshot.
func (s *DemoSession) CharacterByID(id int) (Character, bool) {
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// QuestionByID resolves a question from this session's snapshot.
func (s *DemoSession) QuestionByID(id int) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// UnansweredQuestions returns the candidate set for an assignment: the
// session's questions matching the optional season filter, minus every
// question the character has already answered.
func (s *DemoSession) UnansweredQuestions(characterID int, season *int) []Question {
	answered := make(map[int]bool, len(s.CharacterAnswers[characterID]))
	for _, a := range s.CharacterAnswers[characterID] {
		answered[a.QuestionID] = true
	}

	var candidates []Question
	for _, q := range s.Questions {
		if season != nil && q.Difficulty != *season {
			continue
		}
		if answered[q.ID] {
			continue
		}
		candidates = append(candidates, q)
	}
	return candidates
}

// RecordAnswer appends an answer to the flat log and the per-character log,
// creating the character's log on first write.
func (s *DemoSession) RecordAnswer(characterID, questionID int, text string, now time.Time) Answer {
	s.NextAnswerID++
	answer := Answer{
		ID:          s.NextAnswerID,
		CharacterID: characterID,
		QuestionID:  questionID,
		AnswerText:  text,
		AnsweredAt:  now,
	}
	if q, ok := s.QuestionByID(questionID); ok {
		answer.Question = &q
	}

	s.Answers = append(s.Answers, answer)
	if s.CharacterAnswers == nil {
		s.CharacterAnswers = make(map[int][]Answer)
	}
	s.CharacterAnswers[characterID] = append(s.CharacterAnswers[characterID], answer)
	return answer
}

// ResetCharacter drops one character's answers from both logs.
func (s *DemoSession) ResetCharacter(characterID int) {
	delete(s.CharacterAnswers, characterID)

	kept := s.Answers[:0]
	for _, a := range s.Answers {
		if a.CharacterID != characterID {
			kept = append(kept, a)
		}
	}
	s.Answers = kept
}

// ResetAll clears every answer in the session.
func (s *DemoSession) ResetAll() {
	s.Answers = nil
	s.CharacterAnswers = make(map[int][]Answer)
}

// Statuses derives per-character progress against the full snapshot.
func (s *DemoSession) Statuses() []CharacterStatus {
	statuses := make([]CharacterStatus, 0, len(s.Characters))
	for _, c := range s.Characters {
		statuses = append(statuses, CharacterStatus{
			ID:             c.ID,
			Name:           c.Name,
			Description:    c.Description,
			AnsweredCount:  len(s.CharacterAnswers[c.ID]),
			TotalQuestions: len(s.Questions),
		})
	}
	return statuses
}
