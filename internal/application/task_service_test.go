package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	"github.com/taskhub/go-task-manager/internal/testutil"
)

func newTaskService(t *testing.T) (*TaskService, *testutil.MemTaskRepo) {
	t.Helper()
	repo := testutil.NewMemTaskRepo(testutil.NewMemUserRepo())
	return NewTaskService(repo, testutil.DiscardLogger()), repo
}

func mustCreateTask(t *testing.T, svc *TaskService, owner, title, desc string) *entity.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), owner, CreateTaskInput{Title: title, Description: desc})
	require.NoError(t, err)
	return task
}

func TestCreateTask_RequiresTitle(t *testing.T) {
	svc, _ := newTaskService(t)

	for _, title := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), "user-1", CreateTaskInput{Title: title})
		assert.ErrorIs(t, err, ErrValidation, "title %q", title)
	}
}

func TestListTasks_ScopedToOwner(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	mustCreateTask(t, svc, "alice", "Buy milk", "")
	mustCreateTask(t, svc, "alice", "Walk dog", "")
	mustCreateTask(t, svc, "bob", "Bob's task", "")

	tasks, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	// Insertion order preserved.
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "Walk dog", tasks[1].Title)
	for _, task := range tasks {
		assert.Equal(t, "alice", task.OwnerID)
	}
}

func TestGetTask_MasksForeignOwnership(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task := mustCreateTask(t, svc, "alice", "Buy milk", "")

	got, err := svc.Get(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	// Another user sees the same error as for a missing task.
	_, err = svc.Get(ctx, "bob", task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, "alice", "no-such-task")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTask_PartialFieldsFallBack(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task := mustCreateTask(t, svc, "alice", "Buy milk", "2 liters")

	// Empty title means "no change", not "clear".
	updated, err := svc.Update(ctx, "alice", task.ID, UpdateTaskInput{Description: "3 liters"})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "3 liters", updated.Description)

	// Empty description likewise keeps the prior value.
	updated, err = svc.Update(ctx, "alice", task.ID, UpdateTaskInput{Title: "Buy oat milk"})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "3 liters", updated.Description)
}

func TestUpdateTask_ForeignTaskIsNotFound(t *testing.T) {
	svc, repo := newTaskService(t)
	ctx := context.Background()

	task := mustCreateTask(t, svc, "alice", "Buy milk", "")

	_, err := svc.Update(ctx, "bob", task.ID, UpdateTaskInput{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", stored.Title)
}

func TestDeleteTask_Owner(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task := mustCreateTask(t, svc, "alice", "Buy milk", "")
	require.NoError(t, svc.Delete(ctx, "alice", task.ID))

	tasks, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteTask_NonOwnerForbidden(t *testing.T) {
	svc, repo := newTaskService(t)
	ctx := context.Background()

	task := mustCreateTask(t, svc, "alice", "Buy milk", "")

	err := svc.Delete(ctx, "bob", task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Storage unchanged.
	_, err = repo.GetByID(ctx, task.ID)
	assert.NoError(t, err)
}

func TestDeleteTask_Missing(t *testing.T) {
	svc, _ := newTaskService(t)
	err := svc.Delete(context.Background(), "alice", "no-such-task")
	assert.ErrorIs(t, err, ErrNotFound)
}
