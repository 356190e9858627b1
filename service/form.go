package service

import (
	"github.com/dilshat/lead-store/service/dto"
	"github.com/dilshat/lead-store/util"
)

// ValidateForm checks that every required field was filled in.
func ValidateForm(form dto.Form) error {
	switch {
	case util.IsBlank(form.Name):
		return NewValidationError("name is required")
	case util.IsBlank(form.Email):
		return NewValidationError("email is required")
	case util.IsBlank(form.Phone):
		return NewValidationError("phone is required")
	}
	return nil
}
