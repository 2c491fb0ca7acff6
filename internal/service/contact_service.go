package service

import (
	"context"
	"strings"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

type ContactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func validateContact(in ContactInput) error {
	switch {
	case !minLen(in.Name, 2):
		return invalidf("name must be at least 2 characters")
	case !validEmail(in.Email):
		return invalidf("invalid email address")
	case digitCount(in.Phone) < 10:
		return invalidf("phone number must be at least 10 digits")
	case !minLen(in.Message, 10):
		return invalidf("message must be at least 10 characters")
	}
	return nil
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if err := validateContact(in); err != nil {
		return nil, err
	}

	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   in.Email,
		Phone:   in.Phone,
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.contacts.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}
