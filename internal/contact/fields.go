package contact

import (
	"time"

	"github.com/google/uuid"
)

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldMessage Field = "message"
)

// FieldOrder is the order the form presents its inputs in.
var FieldOrder = []Field{FieldName, FieldEmail, FieldPhone, FieldService, FieldMessage}

// Fields holds the raw text of every form input.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// Get returns the value of f.
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldName:
		return fs.Name
	case FieldEmail:
		return fs.Email
	case FieldPhone:
		return fs.Phone
	case FieldService:
		return fs.Service
	case FieldMessage:
		return fs.Message
	}
	return ""
}

// With returns a copy of fs with f set to value. Unknown fields are ignored.
func (fs Fields) With(f Field, value string) Fields {
	switch f {
	case FieldName:
		fs.Name = value
	case FieldEmail:
		fs.Email = value
	case FieldPhone:
		fs.Phone = value
	case FieldService:
		fs.Service = value
	case FieldMessage:
		fs.Message = value
	}
	return fs
}

// IsZero reports whether every field is empty.
func (fs Fields) IsZero() bool {
	return fs == Fields{}
}

// Submission is the value handed to a Submitter. It is never stored.
type Submission struct {
	ID        string    `json:"id"`
	Fields    Fields    `json:"fields"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSubmission stamps fields with a fresh id.
func NewSubmission(fields Fields) Submission {
	return Submission{
		ID:        uuid.NewString(),
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}
