package validator

import (
	"strings"
	"time"
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

/* Only the first message per key is kept */
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) CheckField(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func NotBlank(value string) bool {
	/* Return true if value is not empty string */
	return strings.TrimSpace(value) != ""
}

/* Return true unless t lies strictly after the current moment */
func NotFuture(t time.Time) bool {
	return !t.After(time.Now())
}
