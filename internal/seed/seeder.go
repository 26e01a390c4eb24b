// Package seed populates the demonstration dataset at startup.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hospital-records-server/internal/models"
	"hospital-records-server/internal/repository"
	"hospital-records-server/internal/service"
)

// Seeder runs the one-shot startup sequence that writes the demonstration
// rows and exercises the save, find, update and delete paths.
type Seeder struct {
	records  *service.RecordService
	patients repository.PatientRepository
	users    repository.UserRepository
	roles    repository.RoleRepository
	logger   *zap.Logger
}

// New creates a Seeder.
func New(
	records *service.RecordService,
	patients repository.PatientRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		records:  records,
		patients: patients,
		users:    users,
		roles:    roles,
		logger:   logger,
	}
}

// Run executes the seeding sequence once. Any error aborts immediately; the
// caller decides what to do with the partially seeded state (in practice:
// exit).
func (s *Seeder) Run(ctx context.Context) error {
	for _, patient := range []*models.Patient{
		{Name: "messi", DateOfBirth: time.Now(), Sick: false, Score: 10},
		{Name: "hafid", DateOfBirth: time.Now(), Sick: true, Score: 20},
		{Name: "Karim", DateOfBirth: time.Now(), Sick: false, Score: 5},
	} {
		if _, err := s.records.SavePatient(ctx, patient); err != nil {
			return fmt.Errorf("seed patients: %w", err)
		}
	}

	patients, err := s.patients.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("read back patients: %w", err)
	}
	for _, patient := range patients {
		s.logger.Info("patient", zap.String("name", patient.Name))
	}

	// The list was read before the mutations below on purpose: the demo
	// dataset updates the first returned patient and deletes the second.
	first := patients[0]
	first.Score = 99
	if _, err := s.records.SavePatient(ctx, first); err != nil {
		return fmt.Errorf("update first patient: %w", err)
	}

	if err := s.patients.DeleteByID(ctx, patients[1].ID); err != nil {
		return fmt.Errorf("delete second patient: %w", err)
	}

	doctor, err := s.records.SaveDoctor(ctx, &models.Doctor{
		Name:      "Dr. Salma",
		Email:     "salma@hospital.test",
		Specialty: "Cardiologie",
	})
	if err != nil {
		return fmt.Errorf("seed doctor: %w", err)
	}

	appointment, err := s.records.SaveAppointment(ctx, &models.Appointment{
		DateTime:  time.Now(),
		Status:    models.StatusPending,
		PatientID: first.ID,
		DoctorID:  doctor.ID,
	})
	if err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}
	s.logger.Info("appointment saved", zap.Uint("id", appointment.ID))

	if _, err := s.records.SaveConsultation(ctx, &models.Consultation{
		ConsultationDate: time.Now(),
		Report:           "Consultation initiale : état stable.",
		AppointmentID:    appointment.ID,
	}); err != nil {
		return fmt.Errorf("seed consultation: %w", err)
	}

	return s.seedAccounts(ctx)
}

// seedAccounts writes the inert user/role rows after the main sequence.
// These rows are find-or-create: a restart against a persistent backend
// must not die on the role_name/username unique indexes.
func (s *Seeder) seedAccounts(ctx context.Context) error {
	admin, err := s.ensureRole(ctx, "ADMIN")
	if err != nil {
		return err
	}
	user, err := s.ensureRole(ctx, "USER")
	if err != nil {
		return err
	}

	existing, err := s.users.FindByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("look up admin user: %w", err)
	}
	if existing != nil {
		return nil
	}
	if _, err := s.users.Save(ctx, &models.User{
		Username: "admin",
		Password: "1234",
		Roles:    []models.Role{*admin, *user},
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

func (s *Seeder) ensureRole(ctx context.Context, name string) (*models.Role, error) {
	role, err := s.roles.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("look up role %s: %w", name, err)
	}
	if role != nil {
		return role, nil
	}
	role, err = s.roles.Save(ctx, &models.Role{RoleName: name})
	if err != nil {
		return nil, fmt.Errorf("seed role %s: %w", name, err)
	}
	return role, nil
}
