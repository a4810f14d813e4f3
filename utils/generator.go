package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mahfuzr/coaching_center/models"
	"gorm.io/gorm"
)

const (
	serialDigits = 4
	serialSpace  = 10000
	// serialTries bounds the random probing; hitting it means the
	// year's serial space is effectively exhausted.
	serialTries = 3 * serialSpace
)

// FormatStudentSerial builds a serial like CC-2026-0482.
func FormatStudentSerial(year int, number int) string {
	return fmt.Sprintf("CC-%d-%0*d", year, serialDigits, number)
}

// GenerateStudentSerial produces a serial that does not collide with
// any stored student.
func GenerateStudentSerial(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	return generateSerial(time.Now().Year(), seededRand, func(serial string) (bool, error) {
		var student models.Student
		err := tx.Where("student_serial = ?", serial).First(&student).Error
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
}

// generateSerial probes random serials until a free one is found,
// giving up after serialTries so an exhausted year cannot spin the
// caller's transaction forever.
func generateSerial(year int, rng *rand.Rand, taken func(string) (bool, error)) (string, error) {
	for i := 0; i < serialTries; i++ {
		serial := FormatStudentSerial(year, rng.Intn(serialSpace))

		exists, err := taken(serial)
		if err != nil {
			return "", err
		}
		if !exists {
			return serial, nil
		}
	}
	return "", fmt.Errorf("no free student serial left for %d", year)
}
