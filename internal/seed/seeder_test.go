package seed

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"hospital-records-server/internal/models"
	"hospital-records-server/internal/repository"
	"hospital-records-server/internal/service"
)

type fixture struct {
	seeder        *Seeder
	patients      repository.PatientRepository
	doctors       repository.DoctorRepository
	appointments  repository.AppointmentRepository
	consultations repository.ConsultationRepository
	users         repository.UserRepository
	roles         repository.RoleRepository
}

func newFixture(t *testing.T) *fixture {
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

	logger := zaptest.NewLogger(t)
	f := &fixture{
		patients:      repository.NewPatientRepository(db),
		doctors:       repository.NewDoctorRepository(db),
		appointments:  repository.NewAppointmentRepository(db),
		consultations: repository.NewConsultationRepository(db),
		users:         repository.NewUserRepository(db),
		roles:         repository.NewRoleRepository(db),
	}
	records := service.NewRecordService(f.patients, f.doctors, f.appointments, f.consultations, logger)
	f.seeder = New(records, f.patients, f.users, f.roles, logger)
	return f
}

func TestSeeder_Scenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx))

	// Two patients survive the sequence: "hafid" was inserted second and
	// then deleted by id.
	patients, err := f.patients.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)

	messi, err := f.patients.FindByName(ctx, "messi")
	require.NoError(t, err)
	require.NotNil(t, messi)
	assert.Equal(t, 99, messi.Score)

	karim, err := f.patients.FindByName(ctx, "Karim")
	require.NoError(t, err)
	require.NotNil(t, karim)
	assert.Equal(t, 5, karim.Score)

	hafid, err := f.patients.FindByName(ctx, "hafid")
	require.NoError(t, err)
	assert.Nil(t, hafid)

	doctors, err := f.doctors.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Salma", doctors[0].Name)
	assert.Equal(t, "Cardiologie", doctors[0].Specialty)

	appointments, err := f.appointments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, models.StatusPending, appointments[0].Status)
	assert.Equal(t, messi.ID, appointments[0].PatientID)
	assert.Equal(t, doctors[0].ID, appointments[0].DoctorID)

	consultations, err := f.consultations.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, consultations, 1)
	assert.Equal(t, "Consultation initiale : état stable.", consultations[0].Report)
	assert.Equal(t, appointments[0].ID, consultations[0].AppointmentID)

	consultation, err := f.consultations.FindByAppointment(ctx, appointments[0].ID)
	require.NoError(t, err)
	require.NotNil(t, consultation)
	assert.Equal(t, consultations[0].ID, consultation.ID)
}

func TestSeeder_Accounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx))

	admin, err := f.users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.Len(t, admin.Roles, 2)

	names := []string{admin.Roles[0].RoleName, admin.Roles[1].RoleName}
	assert.ElementsMatch(t, []string{"ADMIN", "USER"}, names)
}

func TestSeeder_AccountsRepeatable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx))

	// A restart against a persistent backend runs the account step again;
	// the existing rows must be reused, not re-inserted.
	require.NoError(t, f.seeder.seedAccounts(ctx))

	roles, err := f.roles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	users, err := f.users.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSeeder_DerivedDoctorAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx))

	doctor, err := f.doctors.FindByName(ctx, "Dr. Salma")
	require.NoError(t, err)
	require.NotNil(t, doctor)

	appointments, err := f.appointments.FindByDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}
