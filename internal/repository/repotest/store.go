// Package repotest provides in-memory repositories that mimic the Postgres
// constraints (unique email, foreign keys) for service and handler tests.
package repotest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/internhub/internship-service/internal/domain"
)

var (
	ErrUniqueViolation     = errors.New(`duplicate key value violates unique constraint "users_email_key"`)
	ErrForeignKeyViolation = errors.New("insert violates foreign key constraint")
)

// Store backs all three repositories. Set Err to make every call fail, or
// Block to make every call wait until its context is done.
type Store struct {
	mu          sync.Mutex
	Err         error
	Block       bool
	users       map[int64]domain.User
	internships map[int64]domain.Internship
	apps        map[int64]domain.Application
	seq         int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]domain.User),
		internships: make(map[int64]domain.Internship),
		apps:        make(map[int64]domain.Application),
	}
}

func (s *Store) wait(ctx context.Context) error {
	s.mu.Lock()
	block := s.Block
	s.mu.Unlock()
	if !block {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// Users returns the user repository view.
func (s *Store) Users() *Users { return &Users{s: s} }

// Internships returns the internship repository view.
func (s *Store) Internships() *Internships { return &Internships{s: s} }

// Applications returns the application repository view.
func (s *Store) Applications() *Applications { return &Applications{s: s} }

type Users struct{ s *Store }

func (r *Users) Create(ctx context.Context, user *domain.User) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return ErrUniqueViolation
		}
	}
	user.ID = r.s.nextID()
	r.s.users[user.ID] = *user
	return nil
}

func (r *Users) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	user, ok := r.s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type Internships struct{ s *Store }

func (r *Internships) Create(ctx context.Context, internship *domain.Internship) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[internship.CreatedBy]; !ok {
		return ErrForeignKeyViolation
	}
	internship.ID = r.s.nextID()
	r.s.internships[internship.ID] = *internship
	return nil
}

func (r *Internships) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	internship, ok := r.s.internships[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &internship, nil
}

func (r *Internships) List(ctx context.Context) ([]domain.Internship, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	items := make([]domain.Internship, 0, len(r.s.internships))
	for _, internship := range r.s.internships {
		items = append(items, internship)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

type Applications struct{ s *Store }

func (r *Applications) Create(ctx context.Context, app *domain.Application) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[app.UserID]; !ok {
		return ErrForeignKeyViolation
	}
	if _, ok := r.s.internships[app.InternshipID]; !ok {
		return ErrForeignKeyViolation
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	app.ID = r.s.nextID()
	r.s.apps[app.ID] = *app
	return nil
}

func (r *Applications) ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	items := make([]domain.UserApplication, 0)
	for _, app := range r.s.apps {
		if app.UserID != userID {
			continue
		}
		items = append(items, domain.UserApplication{
			Internship:    r.s.internships[app.InternshipID],
			ApplicationID: app.ID,
			Status:        app.Status,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ApplicationID < items[j].ApplicationID })
	return items, nil
}

func (r *Applications) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	app, ok := r.s.apps[id]
	if !ok {
		return pgx.ErrNoRows
	}
	app.Status = status
	r.s.apps[id] = app
	return nil
}
