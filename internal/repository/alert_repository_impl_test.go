package repository

import (
	"context"
	"testing"
	"time"

	"lifelink-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestAlertFindByID_NotFoundReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository()

	mock.ExpectQuery(`SELECT \* FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	alert, err := repo.FindByID(context.Background(), db, uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, alert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertFindActive_AnnotatesAcceptanceCounts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository()

	alertID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "title", "status", "expires_at", "accepted_donors_count"}).
		AddRow(alertID, "O- needed", "ACTIVE", time.Now().Add(time.Hour), int64(3))

	mock.ExpectQuery(`LEFT JOIN alert_acceptances`).
		WillReturnRows(rows)

	alerts, err := repo.FindActive(context.Background(), db)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, alertID, alerts[0].ID)
	assert.Equal(t, int64(3), alerts[0].AcceptedDonorsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertUpdateStatus_RowsAffected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "alerts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatus(context.Background(), db, uuid.New(), entity.AlertStatusResolved)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertUpdateStatus_MissingAlert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "alerts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatus(context.Background(), db, uuid.New(), entity.AlertStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
