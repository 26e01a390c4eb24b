// Package service holds the write façade in front of the repositories.
package service

import (
	"context"

	"go.uber.org/zap"

	"hospital-records-server/internal/models"
	"hospital-records-server/internal/repository"
)

// RecordService delegates every write to the matching repository. It carries
// no logic today; future business rules land here without touching call
// sites.
type RecordService struct {
	patients      repository.PatientRepository
	doctors       repository.DoctorRepository
	appointments  repository.AppointmentRepository
	consultations repository.ConsultationRepository
	logger        *zap.Logger
}

// NewRecordService creates a RecordService over the given repositories.
func NewRecordService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
	consultations repository.ConsultationRepository,
	logger *zap.Logger,
) *RecordService {
	return &RecordService{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		consultations: consultations,
		logger:        logger,
	}
}

// SavePatient persists the patient.
func (s *RecordService) SavePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	s.logger.Debug("saving patient", zap.String("name", patient.Name))
	return s.patients.Save(ctx, patient)
}

// SaveDoctor persists the doctor.
func (s *RecordService) SaveDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	s.logger.Debug("saving doctor", zap.String("name", doctor.Name))
	return s.doctors.Save(ctx, doctor)
}

// SaveAppointment persists the appointment.
func (s *RecordService) SaveAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	s.logger.Debug("saving appointment",
		zap.Uint("patientId", appointment.PatientID),
		zap.Uint("doctorId", appointment.DoctorID))
	return s.appointments.Save(ctx, appointment)
}

// SaveConsultation persists the consultation.
func (s *RecordService) SaveConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	s.logger.Debug("saving consultation", zap.Uint("appointmentId", consultation.AppointmentID))
	return s.consultations.Save(ctx, consultation)
}
