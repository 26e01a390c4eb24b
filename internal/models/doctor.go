package models

// Doctor represents a practitioner. A doctor's appointments are not stored on
// the struct; fetch them with AppointmentRepository.FindByDoctor.
type Doctor struct {
	BaseModel
	Name      string `gorm:"size:255;index" json:"name"`
	Email     string `gorm:"size:255" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`
}
