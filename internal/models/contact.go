package models

// ContactInquiry is a message submitted through the contact page.
type ContactInquiry struct {
	Name        string `json:"name" validate:"notblank"`
	Institution string `json:"institution" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,simpleemail"`
	Phone       string `json:"phone" validate:"notblank,phone"`
	Message     string `json:"message" validate:"notblank"`
}
