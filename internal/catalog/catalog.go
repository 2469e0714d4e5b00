// Package catalog holds the built-in sample characters and questions used
// to seed demo sessions and to preload an empty database.
package catalog

import "fragenspiel/internal/model"

// SampleCharacters returns a fresh copy of the demo character catalog.
func SampleCharacters() []model.Character {
	return []model.Character{
		{ID: 1, Name: "Alice", Description: "Curious adventurer who loves exploring new places"},
		{ID: 2, Name: "Bob", Description: "Creative artist with a passion for music and painting"},
		{ID: 3, Name: "Charlie", Description: "Tech enthusiast who enjoys solving puzzles"},
		{ID: 4, Name: "Diana", Description: "Nature lover who finds peace in the outdoors"},
		{ID: 5, Name: "Eve", Description: "Bookworm with a love for fantasy and science fiction"},
	}
}

// SampleQuestions returns a fresh copy of the demo question catalog.
// Difficulty 1-4 doubles as the season filter.
func SampleQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Text: "What is your biggest dream?", Category: "Personal", Difficulty: 1},
		{ID: 2, Text: "If you could have any superpower, what would it be?", Category: "Fun", Difficulty: 1},
		{ID: 3, Text: "What is your favorite way to spend a weekend?", Category: "Personal", Difficulty: 1},
		{ID: 4, Text: "If you could travel anywhere in the world, where would you go?", Category: "Travel", Difficulty: 2},
		{ID: 5, Text: "What is something you've always wanted to learn?", Category: "Learning", Difficulty: 2},
		{ID: 6, Text: "Describe your ideal day from morning to night.", Category: "Personal", Difficulty: 2},
		{ID: 7, Text: "What is the most important lesson you've learned in life?", Category: "Philosophy", Difficulty: 3},
		{ID: 8, Text: "If you could have dinner with anyone, living or dead, who would it be?", Category: "Personal", Difficulty: 3},
		{ID: 9, Text: "What is something that always makes you smile?", Category: "Personal", Difficulty: 1},
		{ID: 10, Text: "If you could change one thing about the world, what would it be?", Category: "Philosophy", Difficulty: 4},
		{ID: 11, Text: "What is your favorite childhood memory?", Category: "Personal", Difficulty: 2},
		{ID: 12, Text: "If you could live in any time period, when would it be?", Category: "History", Difficulty: 3},
		{ID: 13, Text: "What is something you're grateful for today?", Category: "Personal", Difficulty: 1},
		{ID: 14, Text: "If you could be any animal, what would you be and why?", Category: "Fun", Difficulty: 2},
		{ID: 15, Text: "What is the best advice you've ever received?", Category: "Personal", Difficulty: 3},
		{ID: 16, Text: "If you could invent something, what would it be?", Category: "Creative", Difficulty: 3},
		{ID: 17, Text: "What is your favorite way to relax?", Category: "Personal", Difficulty: 1},
		{ID: 18, Text: "If you could master any skill instantly, what would it be?", Category: "Learning", Difficulty: 2},
		{ID: 19, Text: "What is something that inspires you?", Category: "Personal", Difficulty: 2},
		{ID: 20, Text: "If you could give your younger self one piece of advice, what would it be?", Category: "Personal", Difficulty: 4},
	}
}
