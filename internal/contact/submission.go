package contact

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

// Submission is one contact form post.
type Submission struct {
	FirstName string `form:"firstName" json:"firstName" validate:"required,max=50"`
	LastName  string `form:"lastName" json:"lastName" validate:"required,max=50"`
	Email     string `form:"email" json:"email" validate:"required,email,max=254"`
	Subject   string `form:"subject" json:"subject" validate:"required,max=120"`
	Message   string `form:"message" json:"message" validate:"required,max=5000"`
}

// FullName joins first and last name.
func (s Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FieldErrors maps snake_case field names to a readable message.
type FieldErrors map[string]string

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}
	return fmt.Sprintf("validation error: %d invalid field(s)", len(fe))
}

// ErrTranslatorNotFound indicates the English translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Validator checks Submission fields with go-playground/validator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator constructs a Validator with English messages.
func NewValidator() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, translator: enTrans}, nil
}

// Validate returns FieldErrors when any field rule fails.
func (v *Validator) Validate(sub Submission) error {
	err := v.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	fields := make(FieldErrors, len(validateErrs))
	for _, fe := range validateErrs {
		fields[lo.SnakeCase(fe.Field())] = fe.Translate(v.translator)
	}
	return fields
}
