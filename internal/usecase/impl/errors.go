package impl

import domainerrors "storefront/internal/domain/errors"

// invalidField builds a single-field validation error.
func invalidField(field, message string) error {
	return domainerrors.NewValidationError([]domainerrors.FieldError{
		{Field: field, Message: message},
	})
}
