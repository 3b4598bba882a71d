package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/repository"
	"github.com/work-suite-api/internal/testfixtures"
)

func TestAssignmentRepository_ReplaceAndList(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	repo := repository.NewAssignmentRepository(db)

	project := testfixtures.SeedProject(t, db, "Apollo")
	task := testfixtures.SeedTask(t, db, project.ID, domain.TaskPending, testfixtures.ReferenceTime())
	ann := testfixtures.SeedEmployee(t, db, "Ann")
	bob := testfixtures.SeedEmployee(t, db, "Bob")

	if err := repo.Replace(ctx, task.ID, []int64{bob.ID, ann.ID}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, err := repo.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].EmployeeID != ann.ID || rows[0].EmployeeName != "Ann" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if err := repo.Replace(ctx, task.ID, nil); err != nil {
		t.Fatalf("replace with empty set: %v", err)
	}
	rows, _ = repo.ListByTask(ctx, task.ID)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestAssignmentRepository_ListByTasksEmptyInput(t *testing.T) {
	db := testfixtures.NewDB(t)
	repo := repository.NewAssignmentRepository(db)

	rows, err := repo.ListByTasks(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestTaskRepository_ListFilters(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	repo := repository.NewTaskRepository(db)

	p1 := testfixtures.SeedProject(t, db, "One")
	p2 := testfixtures.SeedProject(t, db, "Two")
	base := testfixtures.ReferenceTime()

	late := testfixtures.SeedTask(t, db, p1.ID, domain.TaskPending, base.Add(48*time.Hour))
	early := testfixtures.SeedTask(t, db, p2.ID, domain.TaskInProgress, base.Add(time.Hour))
	testfixtures.SeedTask(t, db, p1.ID, domain.TaskCompleted, base)

	all, err := repo.List(ctx, repository.TaskFilter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 tasks, got %d (%v)", len(all), err)
	}
	if all[0].ProjectTitle != "One" {
		t.Errorf("expected project title One, got %q", all[0].ProjectTitle)
	}

	byProject, _ := repo.List(ctx, repository.TaskFilter{ProjectID: &p1.ID})
	if len(byProject) != 2 {
		t.Errorf("expected 2 tasks for project, got %d", len(byProject))
	}

	ongoing, _ := repo.List(ctx, repository.TaskFilter{OngoingOnly: true})
	if len(ongoing) != 2 || ongoing[0].ID != early.ID || ongoing[1].ID != late.ID {
		t.Errorf("expected ongoing tasks ordered by deadline, got %+v", ongoing)
	}
}

func TestTaskRepository_GetAndDelete(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	repo := repository.NewTaskRepository(db)

	project := testfixtures.SeedProject(t, db, "Apollo")
	task := testfixtures.SeedTask(t, db, project.ID, domain.TaskPending, testfixtures.ReferenceTime())

	got, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProjectTitle != "Apollo" || got.Status != domain.TaskPending {
		t.Errorf("unexpected task %+v", got)
	}
	if !got.Deadline.Equal(testfixtures.ReferenceTime()) {
		t.Errorf("expected deadline %s, got %s", testfixtures.ReferenceTime(), got.Deadline)
	}

	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestTaskRepository_ListByEmployee(t *testing.T) {
	db := testfixtures.NewDB(t)
	repo := repository.NewTaskRepository(db)

	project := testfixtures.SeedProject(t, db, "Apollo")
	ann := testfixtures.SeedEmployee(t, db, "Ann")
	mine := testfixtures.SeedTask(t, db, project.ID, domain.TaskPending, testfixtures.ReferenceTime())
	testfixtures.SeedTask(t, db, project.ID, domain.TaskPending, testfixtures.ReferenceTime())
	testfixtures.Assign(t, db, mine.ID, ann.ID)

	tasks, err := repo.ListByEmployee(context.Background(), ann.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != mine.ID || tasks[0].ProjectTitle != "Apollo" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestTransactor_RollbackOnError(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	tx := repository.NewTransactor(db)
	clients := repository.NewClientRepository(db)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := clients.Create(ctx, &domain.Client{Name: "Acme", Email: "a@acme.test"}); err != nil {
			return err
		}
		// вложенный вызов присоединяется к той же транзакции
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	list, _ := clients.List(ctx)
	if len(list) != 0 {
		t.Errorf("expected rollback, found %d clients", len(list))
	}
}

func TestProjectRepository_ClearClientAndRecent(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	repo := repository.NewProjectRepository(db)

	client := testfixtures.SeedClient(t, db, "Acme")
	p := &domain.Project{Title: "Site", Status: domain.ProjectNotStarted, Priority: domain.PriorityHigh, ClientID: &client.ID}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.ClearClient(ctx, client.ID); err != nil {
		t.Fatalf("clear client: %v", err)
	}
	got, _ := repo.GetByID(ctx, p.ID)
	if got.ClientID != nil {
		t.Errorf("expected client to be cleared, got %d", *got.ClientID)
	}

	recent, _ := repo.ListCreatedSince(ctx, time.Now().UTC().Add(-7*24*time.Hour))
	if len(recent) != 1 {
		t.Errorf("expected 1 recent project, got %d", len(recent))
	}
	future, _ := repo.ListCreatedSince(ctx, time.Now().UTC().Add(time.Hour))
	if len(future) != 0 {
		t.Errorf("expected no projects created in the future, got %d", len(future))
	}
}

func TestAttendanceRepository_CountPresentDistinct(t *testing.T) {
	db := testfixtures.NewDB(t)
	ctx := context.Background()
	repo := repository.NewAttendanceRepository(db)

	ann := testfixtures.SeedEmployee(t, db, "Ann")
	bob := testfixtures.SeedEmployee(t, db, "Bob")
	day := testfixtures.ReferenceTime().Truncate(24 * time.Hour)

	for _, r := range []domain.ClockRecord{
		{EmployeeID: ann.ID, ClockIn: day.Add(8 * time.Hour)},
		{EmployeeID: ann.ID, ClockIn: day.Add(13 * time.Hour)},
		{EmployeeID: bob.ID, ClockIn: day.Add(-2 * time.Hour)},
	} {
		if err := repo.Create(ctx, &r); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	count, err := repo.CountPresentBetween(ctx, day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 present employee, got %d", count)
	}

	open, err := repo.GetOpenByEmployee(ctx, ann.ID)
	if err != nil || open == nil {
		t.Fatalf("expected open record, got %v (%v)", open, err)
	}
}
