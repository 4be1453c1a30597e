package postgres

import (
	"context"
	"testing"
	"time"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStatementPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatementPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	exp := &model.StatementExport{
		ID:          "exp-1",
		AccountID:   "acc-1",
		StoragePath: "statements/acc-1/exp-1.txt",
		Size:        123,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows([]string{"id", "account_id", "storage_path", "size", "created_at"}).
		AddRow(exp.ID, exp.AccountID, exp.StoragePath, exp.Size, exp.CreatedAt)

	mock.ExpectQuery("INSERT INTO statement_exports").
		WithArgs(exp.ID, exp.AccountID, exp.StoragePath, exp.Size, exp.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, exp)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, exp.StoragePath, result.StoragePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementPostgres_ListByAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatementPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM statement_exports").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{"id", "account_id", "storage_path", "size", "created_at"}).
		AddRow("exp-1", "acc-1", "statements/acc-1/exp-1.txt", 123, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM statement_exports").
		WithArgs("acc-1", 10, 0).
		WillReturnRows(rows)

	res, err := repo.ListByAccount(ctx, "acc-1", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
}
