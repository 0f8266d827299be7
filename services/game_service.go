package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/repositories"
)

type CreateGameInput struct {
	Opponent string
	HomeAway models.HomeAway
	Field    string
	Date     time.Time
	Time     string
}

type GameService interface {
	// GetActiveGame returns nil without error when no game is active.
	GetActiveGame(ctx context.Context) (*models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	// CreateGame adds a schedule entry; new games are always inactive
	// until the rotation (or an explicit activate call) reaches them.
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	ActivateGame(ctx context.Context, gameID int) error
	// NextGame returns the game that follows the active one in
	// date-ascending schedule order, nil when the active game is last or
	// when nothing is active. It is position-based, not relative to the
	// current date.
	NextGame(ctx context.Context) (*models.Game, error)
	// EnsureSeasonSchedule seeds the default season when the schedule is
	// empty. It reports how many games were inserted.
	EnsureSeasonSchedule(ctx context.Context) (int, error)
}

type gameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) GetActiveGame(ctx context.Context) (*models.Game, error) {
	game, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoActiveGame) {
			return nil, nil
		}
		return nil, err
	}
	return game, nil
}

func (s *gameService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.gameRepo.List(ctx)
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	opponent := strings.TrimSpace(input.Opponent)
	field := strings.TrimSpace(input.Field)

	if opponent == "" {
		return nil, ErrOpponentRequired
	}
	if field == "" {
		return nil, ErrFieldRequired
	}
	if !input.HomeAway.Valid() {
		return nil, ErrInvalidHomeAway
	}
	if input.Date.IsZero() {
		return nil, ErrGameDateRequired
	}

	game := &models.Game{
		Opponent: opponent,
		HomeAway: input.HomeAway,
		Field:    field,
		Date:     input.Date,
		Time:     strings.TrimSpace(input.Time),
		IsActive: false,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) ActivateGame(ctx context.Context, gameID int) error {
	err := s.gameRepo.Activate(ctx, gameID)
	if errors.Is(err, repositories.ErrGameNotFound) {
		return ErrGameNotFound
	}
	return err
}

func (s *gameService) NextGame(ctx context.Context) (*models.Game, error) {
	active, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoActiveGame) {
			return nil, nil
		}
		return nil, err
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, g := range games {
		if g.ID == active.ID {
			if i+1 < len(games) {
				next := games[i+1]
				return &next, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (s *gameService) EnsureSeasonSchedule(ctx context.Context) (int, error) {
	count, err := s.gameRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := range defaultSeasonSchedule {
		game := defaultSeasonSchedule[i]
		if err := s.gameRepo.Create(ctx, &game); err != nil {
			return i, err
		}
	}
	return len(defaultSeasonSchedule), nil
}
