package contact

import "strings"

// Submission is the contact form payload.
type Submission struct {
	CompanyName string `json:"companyName" validate:"required"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email" validate:"required,contactemail"`
}

func (s Submission) Normalize() Submission {
	return Submission{
		CompanyName: strings.TrimSpace(s.CompanyName),
		Name:        strings.TrimSpace(s.Name),
		PhoneNumber: strings.TrimSpace(s.PhoneNumber),
		Email:       strings.TrimSpace(s.Email),
	}
}

type Message struct {
	Subject string
	Body    string
}
