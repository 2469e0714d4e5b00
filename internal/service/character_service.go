package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"fragenspiel/internal/model"
	"fragenspiel/internal/repository"
)

// CharacterService handles character catalog CRUD
type CharacterService struct {
	characterRepo repository.CharacterRepo
}

// NewCharacterService creates a new character service
func NewCharacterService(characterRepo repository.CharacterRepo) *CharacterService {
	return &CharacterService{characterRepo: characterRepo}
}

// Create validates and stores a new character.
func (s *CharacterService) Create(ctx context.Context, character *model.Character) error {
	character.Name = strings.TrimSpace(character.Name)
	if character.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.characterRepo.Create(ctx, character)
}

// GetByID retrieves a character by id
func (s *CharacterService) GetByID(ctx context.Context, id int) (*model.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}
	return character, nil
}

// List retrieves all characters
func (s *CharacterService) List(ctx context.Context) ([]*model.Character, error) {
	return s.characterRepo.GetAll(ctx)
}

// Update validates and updates an existing character.
func (s *CharacterService) Update(ctx context.Context, character *model.Character) error {
	character.Name = strings.TrimSpace(character.Name)
	if character.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	err := s.characterRepo.Update(ctx, character)
	if err == mongo.ErrNoDocuments {
		return ErrCharacterNotFound
	}
	return err
}

// Delete removes a character.
func (s *CharacterService) Delete(ctx context.Context, id int) error {
	err := s.characterRepo.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return ErrCharacterNotFound
	}
	return err
}
