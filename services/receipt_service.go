package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mahfuzr/coaching_center/configs"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

// GeneratePaymentReceipt renders a receipt PDF for a successful
// payment, uploads it and stores the URL on the payment record. Runs
// on a goroutine; failures are logged and the payment stays usable
// without a receipt.
func GeneratePaymentReceipt(paymentID uuid.UUID) {
	var payment models.Payment
	if err := database.DB.Preload("Student").Preload("Batch.Course").First(&payment, "id = ?", paymentID).Error; err != nil {
		log.Printf("🔥 Receipt: payment %s not found: %v", paymentID, err)
		return
	}

	htmlData, err := renderReceiptHTML(payment)
	if err != nil {
		log.Printf("🔥 Failed to render receipt HTML: %v", err)
		return
	}

	pdfBytes, err := renderPDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to render receipt PDF: %v", err)
		return
	}

	receiptURL, err := uploadReceiptPDF(pdfBytes, payment.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload receipt: %v", err)
		return
	}

	payment.ReceiptURL = &receiptURL
	if err := database.DB.Save(&payment).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for payment %s: %v", payment.ID, err)
		return
	}
	log.Printf("✅ Receipt generated for payment %s", payment.ID)
}

func renderReceiptHTML(payment models.Payment) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		ReceiptNo   string
		StudentName string
		Serial      string
		CourseTitle string
		BatchName   string
		Amount      string
		Method      string
		PaidAt      string
	}{
		ReceiptNo:   payment.ID.String(),
		StudentName: payment.Student.FullName,
		Serial:      payment.Student.StudentSerial,
		CourseTitle: payment.Batch.Course.Title,
		BatchName:   payment.Batch.Name,
		Amount:      fmt.Sprintf("%.2f BDT", payment.Amount),
		Method:      payment.Method,
		PaidAt:      payment.PaidAt.Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptPDF(fileBytes []byte, paymentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s", paymentID),
		Folder:       "coaching_center_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
