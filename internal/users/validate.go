package users

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Input carries the four business fields as submitted by a client. The same
// rule set is enforced authoritatively at the persistence boundary and
// advisorily by the console form; both go through ValidateInput so the rules
// cannot drift apart.
type Input struct {
	Name        string `json:"name" validate:"required,max=50"`
	Address     string `json:"address" validate:"required,max=200"`
	PhoneNumber string `json:"phoneNumber" validate:"required,number,len=10"`
	CompanyName string `json:"companyName" validate:"required,max=100"`
}

// Trimmed returns a copy of the input with surrounding whitespace removed
// from every field. Records are validated and persisted in trimmed form.
func (in Input) Trimmed() Input {
	return Input{
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		CompanyName: strings.TrimSpace(in.CompanyName),
	}
}

var validate = validator.New()

// field/tag specific messages, matching the API's documented wording
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"max":      "Name cannot exceed 50 characters",
	},
	"Address": {
		"required": "Address is required",
		"max":      "Address cannot exceed 200 characters",
	},
	"PhoneNumber": {
		"required": "Phone number is required",
		"number":   "Phone number must be exactly 10 digits",
		"len":      "Phone number must be exactly 10 digits",
	},
	"CompanyName": {
		"required": "Company name is required",
		"max":      "Company name cannot exceed 100 characters",
	},
}

var jsonNames = map[string]string{
	"Name":        "name",
	"Address":     "address",
	"PhoneNumber": "phoneNumber",
	"CompanyName": "companyName",
}

// ValidateInput checks the trimmed input against the record rules and returns
// nil or a ValidationError listing every violated field. Failures are
// collected per field, not short-circuited.
func ValidateInput(in Input) *ValidationError {
	err := validate.Struct(in.Trimmed())
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "input", Message: err.Error()}}}
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		msg := fieldMessages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = fe.Field() + " is invalid"
		}
		ve.Fields = append(ve.Fields, FieldError{Field: jsonNames[fe.Field()], Message: msg})
	}
	return ve
}
