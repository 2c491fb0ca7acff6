package service

import (
	"context"
	"strings"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

type TeamService struct {
	team repository.TeamRepository
}

func NewTeamService(team repository.TeamRepository) *TeamService {
	return &TeamService{team: team}
}

type TeamMemberInput struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func validateTeamMember(in TeamMemberInput) error {
	if !minLen(in.Name, 2) {
		return invalidf("name must be at least 2 characters")
	}
	if !minLen(in.Role, 2) {
		return invalidf("role must be at least 2 characters")
	}
	if !validURL(in.Avatar) {
		return invalidf("invalid avatar URL")
	}
	return nil
}

func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.List(ctx)
}

func (s *TeamService) Create(ctx context.Context, in TeamMemberInput) (*domain.TeamMember, error) {
	if err := validateTeamMember(in); err != nil {
		return nil, err
	}

	member := &domain.TeamMember{
		Name:   strings.TrimSpace(in.Name),
		Role:   strings.TrimSpace(in.Role),
		Avatar: in.Avatar,
	}
	if err := s.team.Insert(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *TeamService) Update(ctx context.Context, id string, in TeamMemberInput) (*domain.TeamMember, error) {
	if err := validateTeamMember(in); err != nil {
		return nil, err
	}

	member, err := s.team.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = strings.TrimSpace(in.Name)
	member.Role = strings.TrimSpace(in.Role)
	member.Avatar = in.Avatar

	if err := s.team.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.team.Delete(ctx, id)
}
