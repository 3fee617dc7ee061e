package logview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"logview/internal/app/criteria"
	"logview/internal/app/errors"
)

// field identifies the filter being edited
type field int

const (
	fieldNone field = iota
	fieldSearch
	fieldMinTime
	fieldMaxTime
	fieldOffset
	fieldLimit
)

var validate = validator.New()

// pagination is the typed form of the offset and limit inputs
type pagination struct {
	Offset int `validate:"min=0"`
	Limit  int `validate:"gt=0"`
}

// label returns the prompt of the field
func (f field) label() string {
	switch f {
	case fieldSearch:
		return "search"
	case fieldMinTime:
		return "min time"
	case fieldMaxTime:
		return "max time"
	case fieldOffset:
		return "offset"
	case fieldLimit:
		return "limit"
	default:
		return ""
	}
}

// placeholder returns the hint shown for an empty input
func (f field) placeholder() string {
	switch f {
	case fieldMinTime, fieldMaxTime:
		return "2024-01-02T15:04:05Z"
	case fieldSearch:
		return "substring of the message"
	default:
		return ""
	}
}

// current returns the field value of c as text
func (f field) current(c criteria.Criteria) string {
	switch f {
	case fieldSearch:
		return c.Search
	case fieldMinTime:
		return c.MinTime
	case fieldMaxTime:
		return c.MaxTime
	case fieldOffset:
		return strconv.Itoa(c.Offset)
	case fieldLimit:
		return strconv.Itoa(c.Limit)
	default:
		return ""
	}
}

// apply validates value and writes it to the store; invalid numbers leave the store untouched
func (f field) apply(store *criteria.Store, value string) error {
	value = strings.TrimSpace(value)

	switch f {
	case fieldSearch:
		store.SetSearch(value)
	case fieldMinTime:
		store.SetMinTime(value)
	case fieldMaxTime:
		store.SetMaxTime(value)
	case fieldOffset:
		n, err := parsePagination(f, value)
		if err != nil {
			return err
		}

		store.SetOffset(n)
	case fieldLimit:
		n, err := parsePagination(f, value)
		if err != nil {
			return err
		}

		store.SetLimit(n)
	}

	return nil
}

// parsePagination parses value as the offset or limit and validates its range
func parsePagination(f field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", errors.ErrInvalidInput, f.label())
	}

	input := pagination{Offset: 0, Limit: 1}
	if f == fieldOffset {
		input.Offset = n
	} else {
		input.Limit = n
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return 0, fmt.Errorf("%w: %s", errors.ErrInvalidInput, describe(verrs[0]))
		}

		return 0, fmt.Errorf("%w: %s", errors.ErrInvalidInput, err)
	}

	return n, nil
}

// describe renders a validation failure for the status line
func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
