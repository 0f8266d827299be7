package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
)

// In-memory implementations of the repository interfaces. They are safe
// for concurrent use and back the service tests; the semantics mirror the
// Postgres implementations, including the uniqueness rules the schema
// enforces.

type InMemoryAttendeeRepository struct {
	mu     sync.RWMutex
	byID   map[int]models.Attendee
	nextID int

	// Now is the clock used for checked_in_at; tests override it.
	Now func() time.Time
}

func NewInMemoryAttendeeRepository() *InMemoryAttendeeRepository {
	return &InMemoryAttendeeRepository{
		byID:   make(map[int]models.Attendee),
		nextID: 1,
		Now:    time.Now,
	}
}

func (r *InMemoryAttendeeRepository) List(ctx context.Context) ([]models.Attendee, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Attendee, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckedInAt.Equal(out[j].CheckedInAt) {
			return out[i].CheckedInAt.After(out[j].CheckedInAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *InMemoryAttendeeRepository) GetByName(ctx context.Context, firstName, lastName string) (*models.Attendee, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.FirstName == firstName && a.LastName == lastName {
			found := a
			return &found, nil
		}
	}
	return nil, ErrAttendeeNotFound
}

func (r *InMemoryAttendeeRepository) Upsert(ctx context.Context, firstName, lastName string, status models.AttendanceStatus) (*models.Attendee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	for id, a := range r.byID {
		if a.FirstName == firstName && a.LastName == lastName {
			a.Status = status
			a.CheckedInAt = now
			r.byID[id] = a
			updated := a
			return &updated, nil
		}
	}

	a := models.Attendee{
		ID:          r.nextID,
		FirstName:   firstName,
		LastName:    lastName,
		Status:      status,
		CheckedInAt: now,
	}
	r.nextID++
	r.byID[a.ID] = a
	created := a
	return &created, nil
}

func (r *InMemoryAttendeeRepository) Delete(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrAttendeeNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *InMemoryAttendeeRepository) DeleteAll(ctx context.Context) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int]models.Attendee)
	return nil
}

func (r *InMemoryAttendeeRepository) CountByStatus(ctx context.Context) (int, int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var attending, notAttending int
	for _, a := range r.byID {
		switch a.Status {
		case models.StatusIn:
			attending++
		case models.StatusOut:
			notAttending++
		}
	}
	return attending, notAttending, nil
}

type InMemoryGameRepository struct {
	mu     sync.RWMutex
	byID   map[int]models.Game
	nextID int
}

func NewInMemoryGameRepository() *InMemoryGameRepository {
	return &InMemoryGameRepository{
		byID:   make(map[int]models.Game),
		nextID: 1,
	}
}

func (r *InMemoryGameRepository) GetActive(ctx context.Context) (*models.Game, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.byID {
		if g.IsActive {
			found := g
			return &found, nil
		}
	}
	return nil, ErrNoActiveGame
}

func (r *InMemoryGameRepository) List(ctx context.Context) ([]models.Game, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Game, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *InMemoryGameRepository) Create(ctx context.Context, game *models.Game) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	game.ID = r.nextID
	r.nextID++
	r.byID[game.ID] = *game
	return nil
}

func (r *InMemoryGameRepository) Activate(ctx context.Context, gameID int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	// Verify first so a bad id leaves the previous active game alone.
	if _, ok := r.byID[gameID]; !ok {
		return ErrGameNotFound
	}
	for id, g := range r.byID {
		g.IsActive = id == gameID
		r.byID[id] = g
	}
	return nil
}

func (r *InMemoryGameRepository) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

type InMemoryRosterRepository struct {
	mu     sync.RWMutex
	byID   map[int]models.TeamMember
	nextID int
}

func NewInMemoryRosterRepository() *InMemoryRosterRepository {
	return &InMemoryRosterRepository{
		byID:   make(map[int]models.TeamMember),
		nextID: 1,
	}
}

func (r *InMemoryRosterRepository) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TeamMember, 0, len(r.byID))
	for _, m := range r.byID {
		if m.IsActive {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *InMemoryRosterRepository) GetByID(ctx context.Context, id int) (*models.TeamMember, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	found := m
	return &found, nil
}

func (r *InMemoryRosterRepository) GetActiveByName(ctx context.Context, firstName, lastName string) (*models.TeamMember, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.activeByName(firstName, lastName); ok {
		return &m, nil
	}
	return nil, ErrMemberNotFound
}

func (r *InMemoryRosterRepository) Create(ctx context.Context, member *models.TeamMember) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activeByName(member.FirstName, member.LastName); ok {
		return ErrMemberConflict
	}

	member.ID = r.nextID
	member.IsActive = true
	r.nextID++
	r.byID[member.ID] = *member
	return nil
}

func (r *InMemoryRosterRepository) Update(ctx context.Context, member *models.TeamMember) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[member.ID]; !ok {
		return ErrMemberNotFound
	}
	if member.IsActive {
		if existing, ok := r.activeByName(member.FirstName, member.LastName); ok && existing.ID != member.ID {
			return ErrMemberConflict
		}
	}
	r.byID[member.ID] = *member
	return nil
}

func (r *InMemoryRosterRepository) Deactivate(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return ErrMemberNotFound
	}
	m.IsActive = false
	r.byID[id] = m
	return nil
}

// activeByName must be called with the mutex held.
func (r *InMemoryRosterRepository) activeByName(firstName, lastName string) (models.TeamMember, bool) {
	for _, m := range r.byID {
		if m.IsActive && m.FirstName == firstName && m.LastName == lastName {
			return m, true
		}
	}
	return models.TeamMember{}, false
}
