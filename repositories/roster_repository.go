package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/lib/pq"
)

var (
	ErrMemberNotFound = errors.New("team member not found")
	ErrMemberConflict = errors.New("active team member with this name already exists")
)

type RosterRepository interface {
	// ListActive returns active roster members ordered by name.
	ListActive(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id int) (*models.TeamMember, error)
	GetActiveByName(ctx context.Context, firstName, lastName string) (*models.TeamMember, error)
	// Create inserts an active member; a duplicate active name returns
	// ErrMemberConflict via the partial unique index.
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	// Deactivate soft-removes the member. Attendance rows are untouched.
	Deactivate(ctx context.Context, id int) error
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT id, first_name, last_name, is_active
		FROM team_roster
		WHERE is_active
		ORDER BY last_name ASC, first_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.TeamMember, 0)
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.IsActive); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *postgresRosterRepository) GetByID(ctx context.Context, id int) (*models.TeamMember, error) {
	query := `
		SELECT id, first_name, last_name, is_active
		FROM team_roster
		WHERE id = $1`
	return r.scanMember(ctx, query, id)
}

func (r *postgresRosterRepository) GetActiveByName(ctx context.Context, firstName, lastName string) (*models.TeamMember, error) {
	query := `
		SELECT id, first_name, last_name, is_active
		FROM team_roster
		WHERE first_name = $1 AND last_name = $2 AND is_active`
	return r.scanMember(ctx, query, firstName, lastName)
}

func (r *postgresRosterRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_roster (first_name, last_name, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING id, is_active`

	err := r.db.QueryRowContext(ctx, query, member.FirstName, member.LastName).
		Scan(&member.ID, &member.IsActive)
	if err != nil {
		if isUniqueViolation(err, "team_roster_active_name_key") {
			return ErrMemberConflict
		}
		return err
	}
	return nil
}

func (r *postgresRosterRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_roster SET
			first_name = $1,
			last_name = $2,
			is_active = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		member.FirstName,
		member.LastName,
		member.IsActive,
		member.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "team_roster_active_name_key") {
			return ErrMemberConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresRosterRepository) Deactivate(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE team_roster SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresRosterRepository) scanMember(ctx context.Context, query string, args ...interface{}) (*models.TeamMember, error) {
	member := &models.TeamMember{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&member.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}
