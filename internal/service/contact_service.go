package service

import (
	"context"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

// ContactInput is the raw contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in ContactInput) fields() validation.Fields {
	return validation.Fields{
		"name": in.Name, "email": in.Email, "phone": in.Phone,
		"subject": in.Subject, "message": in.Message,
	}
}

const MaxContactMessageLength = 5000

var contactRules = []validation.Rule{
	validation.Required("name", "Name is required"),
	validation.Email("email", "Valid email is required"),
	validation.Required("message", "Message is required"),
	validation.MaxLength("message", MaxContactMessageLength, "Message must be at most 5000 characters"),
	validation.Optional(validation.MaxLength("subject", 200, "Subject must be at most 200 characters")),
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message, then notifies the
	// operator and the sender. Returns validation.Errors on bad input.
	Submit(ctx context.Context, in ContactInput) (*model.Contact, error)

	// List returns one page of messages and the total match count.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error)

	// UpdateStatus changes the workflow status of a message.
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)
}
