package database

import (
	"fmt"
	"log"

	config "github.com/mahfuzr/coaching_center/configs"
	"github.com/mahfuzr/coaching_center/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Batch{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Attendance{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.McqAttempt{},
		&models.AttemptAnswer{},
		&models.CqQuestion{},
		&models.ChapterSchedule{},
		&models.Notice{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.Student{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin account: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin account already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	admin := models.Student{
		StudentSerial: "ADMIN-0001",
		FullName:      config.Config("ADMIN_FULL_NAME"),
		Email:         adminEmail,
		Phone:         config.ConfigOr("ADMIN_PHONE", "N/A"),
		Gender:        "other",
		Password:      string(hashedPassword),
		Role:          "admin",
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin account: %v", err)
		return
	}

	log.Println("✅ Admin account seeded successfully")
}
