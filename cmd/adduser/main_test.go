package main

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"spenttribe/internal/common"
	"spenttribe/internal/server/expenses"
	"spenttribe/internal/server/shared/db"
	"spenttribe/internal/server/users"
)

type fakeUsersRepo struct {
	createErr error
	created   *users.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *users.User) (*users.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return nil, common.ErrorNotFound
}

type fakeManager struct {
	usersRepo users.Repository
}

func (m *fakeManager) RunMigrations(ctx context.Context) error { return nil }
func (m *fakeManager) Conn() *sql.DB                           { return nil }
func (m *fakeManager) Users() users.Repository                 { return m.usersRepo }
func (m *fakeManager) Expenses() expenses.Repository           { return nil }
func (m *fakeManager) Close() error                            { return nil }

func fakeOpen(repo *fakeUsersRepo) func(dsn string) (db.RepositoryManager, error) {
	return func(dsn string) (db.RepositoryManager, error) {
		return &fakeManager{usersRepo: repo}, nil
	}
}

func TestRun_CreatesUser(t *testing.T) {
	repo := &fakeUsersRepo{}
	stdout := &bytes.Buffer{}

	err := run([]string{"-user", "alice", "-password", "hunter2"},
		strings.NewReader(""), stdout, &bytes.Buffer{}, fakeOpen(repo))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if repo.created == nil || repo.created.Username != "alice" {
		t.Fatalf("user not created: %+v", repo.created)
	}
	if repo.created.PasswordHash == "hunter2" {
		t.Fatalf("password stored in plaintext")
	}
	if !strings.Contains(stdout.String(), "created successfully") {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestRun_PromptsForPassword(t *testing.T) {
	repo := &fakeUsersRepo{}
	stdout := &bytes.Buffer{}

	err := run([]string{"-user", "alice"},
		strings.NewReader("hunter2\n"), stdout, &bytes.Buffer{}, fakeOpen(repo))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Password: ") {
		t.Fatalf("expected password prompt, got %q", stdout.String())
	}
}

func TestRun_MissingUsername(t *testing.T) {
	err := run(nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, fakeOpen(&fakeUsersRepo{}))
	if err == nil || !strings.Contains(err.Error(), "missing required flags") {
		t.Fatalf("expected missing-flags error, got %v", err)
	}
}

func TestRun_EmptyPassword(t *testing.T) {
	err := run([]string{"-user", "alice"},
		strings.NewReader("   \n"), &bytes.Buffer{}, &bytes.Buffer{}, fakeOpen(&fakeUsersRepo{}))
	if err == nil || !strings.Contains(err.Error(), "password cannot be empty") {
		t.Fatalf("expected empty-password error, got %v", err)
	}
}

func TestRun_DuplicateUser(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorAlreadyExists}

	err := run([]string{"-user", "alice", "-password", "hunter2"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, fakeOpen(repo))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already-exists error, got %v", err)
	}
}
