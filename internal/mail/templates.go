package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/genassess/genesis-assessment-hub/internal/markup"
	"github.com/genassess/genesis-assessment-hub/internal/models"
)

const (
	// CustomerSubject is the subject line of the confirmation sent to the customer.
	CustomerSubject = "Order Confirmation - Genesis Examinations"

	operationsSubjectPrefix = "New Exam Order - "
)

// OperationsSubject returns the subject line of the internal notification.
func OperationsSubject(institutionName string) string {
	return operationsSubjectPrefix + institutionName
}

const (
	cellLabel = `<td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>`
	cellValue = `</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">`
	rowEnd    = "</td></tr>\n"
)

// htmlWriter adds the email table helpers to markup.Writer.
type htmlWriter struct {
	*markup.Writer
}

func (hw htmlWriter) row(label, value string) {
	hw.Raw("<tr>" + cellLabel)
	hw.Text(label)
	hw.Raw(cellValue)
	hw.Text(value)
	hw.Raw(rowEnd)
}

func (hw htmlWriter) notes(notes string) {
	if notes == "" {
		return
	}
	hw.Raw(`<p><strong>Additional Notes:</strong> `)
	hw.Text(notes)
	hw.Raw("</p>\n")
}

func copies(quantity int) string {
	return strconv.Itoa(quantity) + " copies"
}

// CustomerConfirmation renders the confirmation addressed to the ordering institution.
func CustomerConfirmation(order models.OrderRequest) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := htmlWriter{markup.NewWriter(w)}
		hw.Raw(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">` + "\n")
		hw.Raw(`<h1 style="color: #1e3a5f;">Thank You for Your Order!</h1>` + "\n")
		hw.Raw("<p>Dear ")
		hw.Text(order.ContactName)
		hw.Raw(",</p>\n<p>We have received your examination order from <strong>")
		hw.Text(order.InstitutionName)
		hw.Raw("</strong>. Our team will review your request and contact you within 24-48 hours to confirm details and provide a quote.</p>\n")

		hw.Raw(`<h2 style="color: #2d5a3d;">Order Summary</h2>` + "\n")
		hw.Raw(`<table style="width: 100%; border-collapse: collapse;">` + "\n")
		hw.row("Institution:", order.InstitutionName)
		hw.row("Exam Type:", string(order.ExamType))
		hw.row("Quantity:", copies(order.Quantity))
		hw.row("Exam Date:", order.ExamDate)
		hw.row("Delivery Date:", order.DeliveryDate)
		hw.Raw("</table>\n")
		hw.notes(order.AdditionalNotes)

		hw.Raw(`<p style="margin-top: 20px;">If you have any questions, please don't hesitate to contact us.</p>` + "\n")
		hw.Raw("<p>Best regards,<br>Genesis Examinations Team</p>\n</div>\n")
		return hw.Err()
	})
}

// OperationsNotification renders the internal notice for the operations
// mailbox. It carries the contact details needed for follow-up.
func OperationsNotification(order models.OrderRequest, reference string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := htmlWriter{markup.NewWriter(w)}
		hw.Raw(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">` + "\n")
		hw.Raw(`<h1 style="color: #1e3a5f;">New Examination Order Received</h1>` + "\n")

		hw.Raw(`<h2 style="color: #2d5a3d;">Contact Information</h2>` + "\n")
		hw.Raw(`<table style="width: 100%; border-collapse: collapse;">` + "\n")
		hw.row("Contact Name:", order.ContactName)
		hw.row("Institution:", order.InstitutionName)
		hw.row("Email:", order.Email)
		hw.row("Phone:", order.Phone)
		hw.Raw("</table>\n")

		hw.Raw(`<h2 style="color: #2d5a3d;">Order Details</h2>` + "\n")
		hw.Raw(`<table style="width: 100%; border-collapse: collapse;">` + "\n")
		hw.row("Exam Type:", string(order.ExamType))
		hw.row("Quantity:", copies(order.Quantity))
		hw.row("Exam Date:", order.ExamDate)
		hw.row("Delivery Date:", order.DeliveryDate)
		if reference != "" {
			hw.row("Reference:", reference)
		}
		hw.Raw("</table>\n")
		hw.notes(order.AdditionalNotes)

		hw.Raw(`<p style="margin-top: 20px; color: #666;">Please follow up with this order within 24-48 hours.</p>` + "\n</div>\n")
		return hw.Err()
	})
}

// Render renders a component into an HTML string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
