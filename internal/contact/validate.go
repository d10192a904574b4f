package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MsgNameRequired    = "Name is required"
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters"

	minNameLen    = 2
	minMessageLen = 10
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Errors maps a field to its validation message. A field without an entry is valid.
type Errors map[Field]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Get returns the message for f, or "".
func (e Errors) Get(f Field) string {
	if e == nil {
		return ""
	}
	return e[f]
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate checks the required fields. Phone and service are optional and
// never produce errors. The result depends only on fields.
func Validate(fields Fields) Errors {
	errs := Errors{}

	name := strings.TrimSpace(fields.Name)
	switch {
	case name == "":
		errs[FieldName] = MsgNameRequired
	case utf8.RuneCountInString(name) < minNameLen:
		errs[FieldName] = MsgNameTooShort
	}

	email := strings.TrimSpace(fields.Email)
	switch {
	case email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	message := strings.TrimSpace(fields.Message)
	switch {
	case message == "":
		errs[FieldMessage] = MsgMessageRequired
	case utf8.RuneCountInString(message) < minMessageLen:
		errs[FieldMessage] = MsgMessageTooShort
	}

	return errs
}
