package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
)

func gormOver(t *testing.T, sqlDB *sql.DB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return db
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormOver(t, sqlDB), mock
}

func assertExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepository_CountAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "roles" WHERE "roles"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountAll(context.Background())
	if err != nil {
		t.Fatalf("CountAll() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountAll() = %d, want 3", count)
	}
	assertExpectations(t, mock)
}

func TestRepository_FindByID(t *testing.T) {
	id := "6f1d8c1e-3f3a-4d4e-9a43-2b9b0f1c7a10"

	t.Run("not found returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventTypeRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "event_types" WHERE id = \$1 AND "event_types"\."deleted_at" IS NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		got, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got != nil {
			t.Errorf("FindByID() = %+v, want nil", got)
		}
		assertExpectations(t, mock)
	})

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventTypeRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "event_types" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, "Concert"))

		got, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got == nil || got.Name != "Concert" || got.ID.String() != id {
			t.Errorf("FindByID() = %+v", got)
		}
		assertExpectations(t, mock)
	})

	t.Run("malformed id skips the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventTypeRepository(db)

		got, err := repo.FindByID(context.Background(), "not-a-uuid")
		if err != nil || got != nil {
			t.Errorf("FindByID() = %+v, %v; want nil, nil", got, err)
		}
		assertExpectations(t, mock)
	})

	t.Run("driver error is returned", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventTypeRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "event_types"`).WillReturnError(errors.New("connection reset"))

		if _, err := repo.FindByID(context.Background(), id); err == nil {
			t.Error("FindByID() expected an error")
		}
		assertExpectations(t, mock)
	})
}

func TestRepository_FindPage(t *testing.T) {
	tests := []struct {
		name       string
		pagination request_models.PaginationRequest
		query      string
	}{
		{
			name:       "bounded page newest first",
			pagination: request_models.PaginationRequest{Page: 2, Size: 10, Sort: "DESC"},
			query:      `SELECT \* FROM "event_types" WHERE "event_types"\."deleted_at" IS NULL ORDER BY "created_at" DESC LIMIT .+ OFFSET`,
		},
		{
			name:       "all items oldest first",
			pagination: request_models.PaginationRequest{Page: 1, Size: request_models.AllItems, Sort: "asc"},
			query:      `SELECT \* FROM "event_types" WHERE "event_types"\."deleted_at" IS NULL ORDER BY "created_at"$`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewEventTypeRepository(db)

			mock.ExpectQuery(test.query).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow("6f1d8c1e-3f3a-4d4e-9a43-2b9b0f1c7a10", "Concert").
				AddRow("7a2e9d2f-4a4b-4e5f-8b54-3c0c1a2d8b21", "Festival"))

			got, err := repo.FindPage(context.Background(), test.pagination)
			if err != nil {
				t.Fatalf("FindPage() error = %v", err)
			}
			if len(got) != 2 {
				t.Errorf("len(FindPage()) = %d, want 2", len(got))
			}
			assertExpectations(t, mock)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	id := "6f1d8c1e-3f3a-4d4e-9a43-2b9b0f1c7a10"

	for _, affected := range []int64{0, 1} {
		t.Run(fmt.Sprintf("%d rows affected", affected), func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewEventTypeRepository(db)

			mock.ExpectExec(`UPDATE "event_types" SET "deleted_at"=\$1 WHERE id = \$2`).
				WillReturnResult(sqlmock.NewResult(0, affected))

			deleted, err := repo.Delete(context.Background(), id)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if deleted != (affected == 1) {
				t.Errorf("Delete() = %v, want %v", deleted, affected == 1)
			}
			assertExpectations(t, mock)
		})
	}
}

func TestAccountRepository_FindByFieldOmitsPassword(t *testing.T) {
	var queries []string
	matcher := sqlmock.QueryMatcherFunc(func(_, actual string) error {
		queries = append(queries, actual)
		if !strings.Contains(actual, `FROM "admins"`) {
			return fmt.Errorf("unexpected query %q", actual)
		}
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	repo := NewAdminRepository(gormOver(t, sqlDB))

	mock.ExpectQuery("uniqueness").WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectQuery("authentication").WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}))

	if _, err := repo.FindByField(context.Background(), FieldEmail, "a@x.com", false); err != nil {
		t.Fatalf("FindByField() error = %v", err)
	}
	if _, err := repo.FindByField(context.Background(), FieldEmail, "a@x.com", true); err != nil {
		t.Fatalf("FindByField() error = %v", err)
	}

	if len(queries) != 2 {
		t.Fatalf("got %d queries, want 2", len(queries))
	}
	if strings.Contains(queries[0], "password_hash") {
		t.Errorf("uniqueness lookup selected the password hash: %s", queries[0])
	}
	if !strings.Contains(queries[1], "SELECT *") {
		t.Errorf("authentication lookup should load every column: %s", queries[1])
	}
	for _, q := range queries {
		if !strings.Contains(q, `"email" = $1`) {
			t.Errorf("query does not filter on email: %s", q)
		}
	}
	assertExpectations(t, mock)
}

func TestTransactionManager(t *testing.T) {
	roleID := "6f1d8c1e-3f3a-4d4e-9a43-2b9b0f1c7a10"

	t.Run("commits and joins nested calls", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)
		repo := NewRoleRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "roles" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
			return tm.WithinTransaction(ctx, func(ctx context.Context) error {
				_, err := repo.Delete(ctx, roleID)
				return err
			})
		})
		if err != nil {
			t.Fatalf("WithinTransaction() error = %v", err)
		}
		assertExpectations(t, mock)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)
		repo := NewRoleRepository(db)
		boom := errors.New("membership update failed")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "roles" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
			if _, err := repo.Delete(ctx, roleID); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("WithinTransaction() error = %v, want %v", err, boom)
		}
		assertExpectations(t, mock)
	})
}

func TestRoleRepository_HasPermission(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)
	roleID := "6f1d8c1e-3f3a-4d4e-9a43-2b9b0f1c7a10"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "role_permissions" ` +
		`JOIN roles ON roles\.id = role_permissions\.role_id AND roles\.deleted_at IS NULL ` +
		`JOIN permissions ON permissions\.id = role_permissions\.permission_id AND permissions\.deleted_at IS NULL ` +
		`WHERE role_permissions\.role_id = \$1 AND permissions\.name = \$2`).
		WithArgs(roleID, "events:write").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.HasPermission(context.Background(), roleID, "events:write")
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !ok {
		t.Error("HasPermission() = false, want true")
	}
	assertExpectations(t, mock)
}

var _ AccountRepository[db_models.Organizer] = NewOrganizerRepository(nil)
