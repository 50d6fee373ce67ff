package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrIdentityNotFound   = errors.New("identity_not_found")
	ErrEmailExists        = errors.New("email_exists")
	ErrMissingIDToken     = errors.New("missing_id_token")
	ErrValidation         = errors.New("validation_failed")

	ErrProductNotFound  = errors.New("product_not_found")
	ErrCartItemNotFound = errors.New("cart_item_not_found")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrFavoriteExists   = errors.New("favorite_exists")
	ErrFavoriteNotFound = errors.New("favorite_not_found")
	ErrNoOrderItems     = errors.New("no_order_items")
	ErrMissingFields    = errors.New("missing_fields")
)

// ValidationError lists the offending fields of a request, keyed by their
// JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// First returns one field message, preferring the order given.
func (e *ValidationError) First(order ...string) string {
	for _, k := range order {
		if msg, ok := e.Fields[k]; ok {
			return msg
		}
	}
	if keys := slices.Sorted(maps.Keys(e.Fields)); len(keys) > 0 {
		return e.Fields[keys[0]]
	}
	return ""
}

// checkFields runs an ozzo rule set and converts its result. Internal rule
// errors (misconfigured rules) are returned as is.
func checkFields(errs validation.Errors) error {
	err := errs.Filter()
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(ve))}
	for field, fe := range ve {
		var internal validation.InternalError
		if errors.As(fe, &internal) {
			return fmt.Errorf("validate %s: %w", field, internal.InternalError())
		}
		out.Fields[field] = fe.Error()
	}
	return out
}

// ProductMissingError reports an order line naming an unknown product.
type ProductMissingError struct {
	ProductID int64
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("Product with ID %d not found", e.ProductID)
}

func (e *ProductMissingError) Unwrap() error { return ErrProductNotFound }
