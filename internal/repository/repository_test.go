package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

// newTestDB opens a fresh in-memory database with the schema synchronized,
// one per test. Foreign keys are switched on so constraint violations
// surface like they do on the real backend; the connection count is pinned
// to one so the in-memory database is not split across pool connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Consultation{},
		&models.Role{},
		&models.User{},
	))
	return db
}

func savePatient(t *testing.T, repo PatientRepository, patient *models.Patient) *models.Patient {
	t.Helper()
	saved, err := repo.Save(context.Background(), patient)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	return saved
}
