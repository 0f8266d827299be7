package services

import (
	"context"
	"errors"
	"strings"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/repositories"
)

type UpdateMemberInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
}

type RosterService interface {
	ListActiveMembers(ctx context.Context) ([]models.TeamMember, error)
	// AddMember fails with ErrMemberConflict while an active member with
	// the same name exists; after a soft remove the name is free again.
	AddMember(ctx context.Context, firstName, lastName string) (*models.TeamMember, error)
	// UpdateMember applies the non-nil fields of input. Unknown ids
	// return ErrMemberNotFound.
	UpdateMember(ctx context.Context, id int, input UpdateMemberInput) (*models.TeamMember, error)
	// RemoveMember soft-removes: the member drops off the active roster
	// while their attendance history stays intact. Unknown ids return
	// ErrMemberNotFound.
	RemoveMember(ctx context.Context, id int) error
	// FindActiveByName returns nil without error when no active member
	// matches. Check-ins do not require roster membership; this exists
	// for callers that want identity confirmation first.
	FindActiveByName(ctx context.Context, firstName, lastName string) (*models.TeamMember, error)
}

type rosterService struct {
	rosterRepo repositories.RosterRepository
}

func NewRosterService(rosterRepo repositories.RosterRepository) RosterService {
	return &rosterService{rosterRepo: rosterRepo}
}

func (s *rosterService) ListActiveMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.rosterRepo.ListActive(ctx)
}

func (s *rosterService) AddMember(ctx context.Context, firstName, lastName string) (*models.TeamMember, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, ErrLastNameRequired
	}

	member := &models.TeamMember{
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
	if err := s.rosterRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberConflict) {
			return nil, ErrMemberConflict
		}
		return nil, err
	}
	return member, nil
}

func (s *rosterService) UpdateMember(ctx context.Context, id int, input UpdateMemberInput) (*models.TeamMember, error) {
	member, err := s.rosterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		member.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		member.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if member.FirstName == "" {
		return nil, ErrFirstNameRequired
	}
	if member.LastName == "" {
		return nil, ErrLastNameRequired
	}

	if err := s.rosterRepo.Update(ctx, member); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMemberNotFound):
			return nil, ErrMemberNotFound
		case errors.Is(err, repositories.ErrMemberConflict):
			return nil, ErrMemberConflict
		}
		return nil, err
	}
	return member, nil
}

func (s *rosterService) RemoveMember(ctx context.Context, id int) error {
	err := s.rosterRepo.Deactivate(ctx, id)
	if errors.Is(err, repositories.ErrMemberNotFound) {
		return ErrMemberNotFound
	}
	return err
}

func (s *rosterService) FindActiveByName(ctx context.Context, firstName, lastName string) (*models.TeamMember, error) {
	member, err := s.rosterRepo.GetActiveByName(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}
