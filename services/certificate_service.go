package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mahfuzr/coaching_center/configs"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

// GenerateCompletionCertificate renders a certificate PDF for a
// completed enrollment, uploads it and stores the URL on the
// enrollment. Runs on a goroutine; failures are logged.
func GenerateCompletionCertificate(enrollmentID uuid.UUID) {
	var enrollment models.Enrollment
	if err := database.DB.Preload("Student").Preload("Batch.Course").First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		log.Printf("🔥 Certificate: enrollment %s not found: %v", enrollmentID, err)
		return
	}

	htmlData, err := renderCertificateHTML(enrollment)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
		return
	}

	pdfBytes, err := renderPDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to render certificate PDF: %v", err)
		return
	}

	certificateURL, err := uploadCertificatePDF(pdfBytes, enrollment.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate: %v", err)
		return
	}

	enrollment.CertificateURL = &certificateURL
	if err := database.DB.Save(&enrollment).Error; err != nil {
		log.Printf("🔥 Failed to store certificate URL for enrollment %s: %v", enrollment.ID, err)
		return
	}
	log.Printf("✅ Certificate generated for enrollment %s", enrollment.ID)
}

func renderCertificateHTML(enrollment models.Enrollment) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		CertificateNo string
		StudentName   string
		Serial        string
		CourseTitle   string
		BatchName     string
		IssuedAt      string
	}{
		CertificateNo: enrollment.ID.String(),
		StudentName:   enrollment.Student.FullName,
		Serial:        enrollment.Student.StudentSerial,
		CourseTitle:   enrollment.Batch.Course.Title,
		BatchName:     enrollment.Batch.Name,
		IssuedAt:      time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func uploadCertificatePDF(fileBytes []byte, enrollmentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s", enrollmentID),
		Folder:       "coaching_center_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
