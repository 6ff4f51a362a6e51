// Package testutil provides in-memory implementations of the repository
// interfaces for tests. They honor the storage contract: duplicate emails
// and missing rows come back as the repository sentinel errors, and listing
// preserves insertion order.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	repo "github.com/taskhub/go-task-manager/internal/domain/repository"
)

type MemUserRepo struct {
	mu    sync.Mutex
	seq   int
	order []string
	users map[string]*entity.User
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: map[string]*entity.User{}}
}

func (r *MemUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *MemUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (r *MemUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *MemUserRepo) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.users[id])
	}
	return out, nil
}

func (r *MemUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type MemTaskRepo struct {
	mu    sync.Mutex
	seq   int
	order []string
	tasks map[string]*entity.Task
	users *MemUserRepo // for owner enrichment
}

func NewMemTaskRepo(users *MemUserRepo) *MemTaskRepo {
	return &MemTaskRepo{tasks: map[string]*entity.Task{}, users: users}
}

func (r *MemTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("task-%d", r.seq)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	r.order = append(r.order, t.ID)
	return nil
}

func (r *MemTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (r *MemTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Task, 0)
	for _, id := range r.order {
		if t, ok := r.tasks[id]; ok && t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *MemTaskRepo) ListAllWithOwner(ctx context.Context) ([]entity.TaskWithOwner, error) {
	r.mu.Lock()
	ids := append([]string(nil), r.order...)
	r.mu.Unlock()

	out := make([]entity.TaskWithOwner, 0, len(ids))
	for _, id := range ids {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		u, err := r.users.GetByID(ctx, t.OwnerID)
		if err != nil {
			continue
		}
		out = append(out, entity.TaskWithOwner{Task: *t, OwnerName: u.Name, OwnerEmail: u.Email})
	}
	return out, nil
}

func (r *MemTaskRepo) Update(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return repo.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *MemTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.tasks, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemTaskRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.tasks)), nil
}

func (r *MemTaskRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tasks {
		if !t.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// Backdate rewrites a task's creation timestamp, standing in for rows that
// predate the current day.
func (r *MemTaskRepo) Backdate(id string, to time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		t.CreatedAt = to
	}
}

var (
	_ repo.UserRepository = (*MemUserRepo)(nil)
	_ repo.TaskRepository = (*MemTaskRepo)(nil)
)

// DiscardLogger returns a logger whose output is dropped.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
