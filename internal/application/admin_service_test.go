package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	"github.com/taskhub/go-task-manager/internal/testutil"
)

func newAdminFixture(t *testing.T) (*AdminService, *UserService, *TaskService, *testutil.MemTaskRepo) {
	t.Helper()
	users := testutil.NewMemUserRepo()
	tasks := testutil.NewMemTaskRepo(users)
	userSvc := NewUserService(users, nil, testutil.DiscardLogger(), 6)
	taskSvc := NewTaskService(tasks, testutil.DiscardLogger())
	return NewAdminService(users, tasks, testutil.DiscardLogger()), userSvc, taskSvc, tasks
}

func TestStats_ActiveTodayBoundary(t *testing.T) {
	admin, userSvc, taskSvc, taskRepo := newAdminFixture(t)
	ctx := context.Background()

	alice, err := userSvc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "alicepassword"})
	require.NoError(t, err)

	for _, title := range []string{"one", "two", "three"} {
		_, err := taskSvc.Create(ctx, alice.ID, CreateTaskInput{Title: title})
		require.NoError(t, err)
	}
	old, err := taskSvc.Create(ctx, alice.ID, CreateTaskInput{Title: "yesterday's task"})
	require.NoError(t, err)
	taskRepo.Backdate(old.ID, time.Now().AddDate(0, 0, -1))

	stats, err := admin.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 4, stats.TotalTasks)
	assert.EqualValues(t, 3, stats.ActiveToday)
}

func TestAdminListTasks_EnrichedWithOwner(t *testing.T) {
	admin, userSvc, taskSvc, _ := newAdminFixture(t)
	ctx := context.Background()

	alice, err := userSvc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "alicepassword"})
	require.NoError(t, err)
	bob, err := userSvc.Register(ctx, RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "bobpassword1"})
	require.NoError(t, err)

	_, err = taskSvc.Create(ctx, alice.ID, CreateTaskInput{Title: "Alice's task"})
	require.NoError(t, err)
	_, err = taskSvc.Create(ctx, bob.ID, CreateTaskInput{Title: "Bob's task"})
	require.NoError(t, err)

	all, err := admin.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].OwnerName)
	assert.Equal(t, "alice@example.com", all[0].OwnerEmail)
	assert.Equal(t, "Bob", all[1].OwnerName)
}

func TestAdminDeleteTask_BypassesOwnership(t *testing.T) {
	admin, userSvc, taskSvc, taskRepo := newAdminFixture(t)
	ctx := context.Background()

	alice, err := userSvc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "alicepassword"})
	require.NoError(t, err)
	task, err := taskSvc.Create(ctx, alice.ID, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	// No ownership check: the admin deletes someone else's task.
	require.NoError(t, admin.DeleteTask(ctx, task.ID))

	n, err := taskRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestAdminDeleteTask_Missing(t *testing.T) {
	admin, _, _, _ := newAdminFixture(t)
	err := admin.DeleteTask(context.Background(), "no-such-task")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminListUsers(t *testing.T) {
	admin, userSvc, _, _ := newAdminFixture(t)
	ctx := context.Background()

	_, err := userSvc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "alicepassword"})
	require.NoError(t, err)
	_, err = userSvc.Register(ctx, RegisterInput{Name: "Root", Email: "root@example.com", Password: "rootpassword", Role: entity.RoleAdmin})
	require.NoError(t, err)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, entity.RoleUser, users[0].Role)
	assert.Equal(t, entity.RoleAdmin, users[1].Role)
}
