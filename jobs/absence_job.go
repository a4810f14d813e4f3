package jobs

import (
	"log"
	"time"

	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

// MarkAbsentees sweeps classes that ended recently and records an "absent"
// row for every active student in the batch who was not marked present.
func MarkAbsentees() {
	log.Println("Running job: MarkAbsentees...")

	now := time.Now()
	upperBound := now.Add(-5 * time.Minute)
	lowerBound := now.Add(-20 * time.Minute)

	var endedClasses []models.ChapterSchedule

	err := database.DB.
		Where("class_at + (duration * interval '1 minute') BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&endedClasses).Error

	if err != nil {
		log.Printf("Error checking for ended classes: %v", err)
		return
	}

	if len(endedClasses) == 0 {
		log.Println("No recently ended classes found.")
		return
	}

	marked := 0
	for _, class := range endedClasses {
		classDate := class.ClassAt.Truncate(24 * time.Hour)

		var enrollments []models.Enrollment
		err := database.DB.
			Where("batch_id = ? AND status = ?", class.BatchID, "active").
			Find(&enrollments).Error
		if err != nil {
			log.Printf("Error loading enrollments for batch %s: %v", class.BatchID, err)
			continue
		}

		for _, enrollment := range enrollments {
			var count int64
			database.DB.Model(&models.Attendance{}).
				Where("student_id = ? AND batch_id = ? AND date = ?", enrollment.StudentID, class.BatchID, classDate).
				Count(&count)
			if count > 0 {
				continue
			}

			record := models.Attendance{
				StudentID: enrollment.StudentID,
				BatchID:   class.BatchID,
				Date:      classDate,
				Status:    "absent",
			}
			if err := database.DB.Create(&record).Error; err != nil {
				log.Printf("Error marking absence for student %s: %v", enrollment.StudentID, err)
				continue
			}
			marked++
		}
	}

	log.Printf("Marked %d student(s) as absent.", marked)
}
