package config

import (
	"fmt"
	"log"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders. Master lookups run in every mode; demo
// students and the default admin only in dev.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAcademicYears(); err != nil {
		return err
	}
	if err := s.seedSemesters(); err != nil {
		return err
	}
	if err := s.seedSupervisors(); err != nil {
		return err
	}

	if s.cfg.IsDev() {
		if err := s.seedAdminUser(); err != nil {
			log.Printf("⚠️ Admin seeder skipped: %v", err)
		}
		if err := s.seedDemoStudents(); err != nil {
			log.Printf("⚠️ Student seeder skipped: %v", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// academicYearLabel formats a year label ("2025-2026"), the same shape
// the portal client carries in its local lookup fallbacks
func academicYearLabel(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}

func (s *Seeder) seedAcademicYears() error {
	start := time.Now().Year() - 4
	for i := 0; i < 5; i++ {
		label := academicYearLabel(start + i)
		var existing models.AcademicYear
		if err := s.db.Where("label = ?", label).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&models.AcademicYear{Label: label, IsActive: true}).Error; err != nil {
					return err
				}
				log.Printf("   Created academic_year: %s", label)
			}
		}
	}
	return nil
}

func (s *Seeder) seedSemesters() error {
	semesters := []models.Semester{
		{Label: "S1", Ordering: 1},
		{Label: "S2", Ordering: 2},
		{Label: "S3", Ordering: 3},
		{Label: "S4", Ordering: 4},
		{Label: "S5", Ordering: 5},
		{Label: "S6", Ordering: 6},
	}
	for _, sem := range semesters {
		var existing models.Semester
		if err := s.db.Where("label = ?", sem.Label).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&sem).Error; err != nil {
					return err
				}
				log.Printf("   Created semester: %s", sem.Label)
			}
		}
	}
	return nil
}

func (s *Seeder) seedSupervisors() error {
	supervisors := []string{
		"Pr. Amina Benali",
		"Pr. Karim El Fassi",
		"Pr. Laila Ouazzani",
		"Pr. Hassan Berrada",
	}
	for _, name := range supervisors {
		var existing models.Supervisor
		if err := s.db.Where("full_name = ?", name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&models.Supervisor{FullName: name, IsActive: true}).Error; err != nil {
					return err
				}
				log.Printf("   Created supervisor: %s", name)
			}
		}
	}
	return nil
}

// seedAdminUser seeds the default admin account.
// Development only; production admins are created through a secure process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Email:       "admin@studesk.local",
		Username:    "admin",
		DisplayName: "Service Scolarité",
		Password:    hashed,
		IsActive:    true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}
	log.Println("   Created default admin user (admin / admin123456)")
	return nil
}

// seedDemoStudents seeds a handful of students with enrollment history
// so identity validation can be exercised locally
func (s *Seeder) seedDemoStudents() error {
	var count int64
	s.db.Model(&models.Student{}).Count(&count)
	if count > 0 {
		return nil
	}

	students := []models.Student{
		{Email: "y.alaoui@univ.ma", Apogee: "20231234", CIN: "AB123456", FirstName: "Youssef", LastName: "Alaoui"},
		{Email: "s.idrissi@univ.ma", Apogee: "20235678", CIN: "CD789012", FirstName: "Salma", LastName: "Idrissi"},
		{Email: "m.tazi@univ.ma", Apogee: "20219876", CIN: "EF345678", FirstName: "Mehdi", LastName: "Tazi"},
	}
	for i := range students {
		if err := s.db.Create(&students[i]).Error; err != nil {
			return err
		}

		year := time.Now().Year() - 1
		enrollments := []models.Enrollment{
			{StudentID: students[i].ID, AcademicYear: academicYearLabel(year - 1), Semester: "S1"},
			{StudentID: students[i].ID, AcademicYear: academicYearLabel(year - 1), Semester: "S2"},
			{StudentID: students[i].ID, AcademicYear: academicYearLabel(year), Semester: "S3"},
		}
		for _, e := range enrollments {
			if err := s.db.Create(&e).Error; err != nil {
				return err
			}
		}
		log.Printf("   Created student: %s (%s)", students[i].Email, students[i].Apogee)
	}
	return nil
}
