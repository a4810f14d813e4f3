package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/notifications"
)

func SendClassReminders() {
	log.Println("Running job: SendClassReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingClasses []models.ChapterSchedule

	err := database.DB.
		Preload("Batch").
		Where("class_at BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&upcomingClasses).Error

	if err != nil {
		log.Printf("Error checking for upcoming classes: %v", err)
		return
	}

	if len(upcomingClasses) == 0 {
		return
	}

	for _, class := range upcomingClasses {
		var enrollments []models.Enrollment
		err := database.DB.
			Preload("Student").
			Where("batch_id = ? AND status = ?", class.BatchID, "active").
			Find(&enrollments).Error
		if err != nil {
			log.Printf("Error loading enrollments for batch %s: %v", class.BatchID, err)
			continue
		}

		log.Printf("Sending reminders for class %s (%s), %d student(s)", class.Chapter, class.ID, len(enrollments))

		emailSubject := "Reminder: Your Class Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Class Reminder</h1><p>Hi there,</p><p>Your <b>%s</b> class on <b>%s</b> starts in one hour at %s.</p>",
			class.Batch.Name,
			class.Chapter,
			class.ClassAt.Format(time.Kitchen),
		)

		for _, enrollment := range enrollments {
			if !enrollment.Student.IsActive {
				continue
			}
			go notifications.SendEmail(enrollment.Student.FullName, enrollment.Student.Email, emailSubject, emailBody)
		}
	}
}
