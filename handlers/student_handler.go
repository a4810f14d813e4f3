package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

type StudentUpdateRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=3"`
	Phone           *string `json:"phone" validate:"omitempty,min=11"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=male female other"`
	InstitutionCode *string `json:"institution_code"`
	Address         *string `json:"address"`
	PhotoURL        *string `json:"photo_url" validate:"omitempty,url"`
}

func ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	database.DB.Where("role = ?", "student").Order("created_at desc").Find(&students)
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	var student models.Student
	if err := database.DB.First(&student, "id = ? AND role = ?", studentID, "student").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

// UpdateStudent applies a partial update. Serial, email, password and
// role are immutable through this endpoint.
func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	var student models.Student
	if err := database.DB.First(&student, "id = ? AND role = ?", studentID, "student").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.InstitutionCode != nil {
		student.InstitutionCode = *req.InstitutionCode
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.PhotoURL != nil {
		student.PhotoURL = req.PhotoURL
	}
	database.DB.Save(&student)

	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	result := database.DB.Delete(&models.Student{}, "id = ? AND role = ?", studentID, "student")

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ToggleStudentStatus(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	var student models.Student
	if err := database.DB.First(&student, "id = ? AND role = ?", studentID, "student").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	student.IsActive = !student.IsActive
	database.DB.Save(&student)

	return c.JSON(fiber.Map{"id": student.ID, "is_active": student.IsActive})
}

func GetMyProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

func UpdateMyProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.PhotoURL != nil {
		student.PhotoURL = req.PhotoURL
	}
	database.DB.Save(&student)

	return c.JSON(student)
}
