package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chico-slowpitch/attendance-system/models"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNoActiveGame = errors.New("no active game")
)

type GameRepository interface {
	// GetActive returns the single active game, or ErrNoActiveGame.
	GetActive(ctx context.Context) (*models.Game, error)
	// List returns the season schedule in date-ascending order.
	List(ctx context.Context) ([]models.Game, error)
	// Create inserts a new game; games are always created inactive.
	Create(ctx context.Context, game *models.Game) error
	// Activate flips the target game on and every other game off in one
	// transaction. Unknown ids roll back, leaving the previous active
	// game in place.
	Activate(ctx context.Context, gameID int) error
	Count(ctx context.Context) (int, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, opponent, home_away, field, date, time, is_active`

func (r *postgresGameRepository) GetActive(ctx context.Context) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE is_active`

	var g models.Game
	err := r.db.QueryRowContext(ctx, query).Scan(
		&g.ID, &g.Opponent, &g.HomeAway, &g.Field, &g.Date, &g.Time, &g.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveGame
		}
		return nil, err
	}
	return &g, nil
}

func (r *postgresGameRepository) List(ctx context.Context) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Opponent, &g.HomeAway, &g.Field, &g.Date, &g.Time, &g.IsActive); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (opponent, home_away, field, date, time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		game.Opponent,
		game.HomeAway,
		game.Field,
		game.Date,
		game.Time,
		game.IsActive,
	).Scan(&game.ID)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (r *postgresGameRepository) Activate(ctx context.Context, gameID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin activation transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE games SET is_active = FALSE WHERE is_active`); err != nil {
		return fmt.Errorf("failed to deactivate games: %w", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE games SET is_active = TRUE WHERE id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("failed to activate game %d: %w", gameID, err)
	}
	if err := checkAffectedRows(result, ErrGameNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}
	return nil
}

func (r *postgresGameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
