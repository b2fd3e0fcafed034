package core

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

// validatorInstance lazily builds the shared validator with English
// translations registered. validator.Validate is safe for concurrent use.
func validatorInstance() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		uni := ut.New(english, english)
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	})

	return validate, trans
}

// ValidationError carries one translated message per failing field.
// errors.Is(err, ErrInvalid) holds for every ValidationError.
type ValidationError struct {
	Messages []string
}

// Error joins the field messages.
func (e *ValidationError) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Unwrap exposes ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks v against its `validate` struct tags.
//
// Field failures come back as *ValidationError; anything else the validator
// reports (for example a non-struct argument) is returned wrapped in
// ErrInvalid.
func Validate(v any) error {
	val, tr := validatorInstance()
	err := val.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(tr))
	}

	return &ValidationError{Messages: msgs}
}
