package template

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestTemplateRepository_ListTemplates_ScopedToAccount(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTemplateRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `saved_templates` WHERE account_id = \\? ORDER BY created_at DESC").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"template_id", "account_id"}))

	templates, err := repo.ListTemplates(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, templates, "another account's templates are never visible")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_DeleteTemplate_OwnershipPredicate(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTemplateRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `saved_templates` WHERE template_id = \\? AND account_id = \\?").
		WithArgs("t1", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteTemplate(context.Background(), "t1", 99))
	require.NoError(t, mock.ExpectationsWereMet())
}
