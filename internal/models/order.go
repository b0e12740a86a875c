package models

// ExamType identifies the category of examination materials being ordered.
type ExamType string

const (
	ExamTypePrimary     ExamType = "primary"
	ExamTypeSecondary   ExamType = "secondary"
	ExamTypeCertificate ExamType = "certificate"
	ExamTypeCustom      ExamType = "custom"
)

// ExamTypes lists the accepted exam types in display order.
var ExamTypes = []ExamType{ExamTypePrimary, ExamTypeSecondary, ExamTypeCertificate, ExamTypeCustom}

// Valid reports whether t is one of the known exam types.
func (t ExamType) Valid() bool {
	switch t {
	case ExamTypePrimary, ExamTypeSecondary, ExamTypeCertificate, ExamTypeCustom:
		return true
	}
	return false
}

// LabelKey is the dictionary key of the exam type's display label.
func (t ExamType) LabelKey() string {
	return "order.examType." + string(t)
}

// OrderRequest is one examination-materials order as exchanged between the
// order form and the mail relay. Dates use the YYYY-MM-DD layout.
type OrderRequest struct {
	InstitutionName string   `json:"institutionName" validate:"notblank"`
	ContactName     string   `json:"contactName" validate:"notblank"`
	Email           string   `json:"email" validate:"notblank,simpleemail"`
	Phone           string   `json:"phone" validate:"notblank,phone"`
	ExamType        ExamType `json:"examType" validate:"examtype"`
	Quantity        int      `json:"quantity" validate:"gte=1"`
	ExamDate        string   `json:"examDate" validate:"notblank,isodate"`
	DeliveryDate    string   `json:"deliveryDate" validate:"notblank,isodate"`
	AdditionalNotes string   `json:"additionalNotes"`
}

// RelayResponse is the success body returned by the mail relay.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
