package trail

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

// DispatchInput holds the parameters for sending a creature on a trail.
// Title may be a display title ("Wet Trail") or a slug ("wettrail").
type DispatchInput struct {
	Title      string
	CreatureID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DispatchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.CreatureID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pokemonId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateCreatureID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("pokemonId", "required")
	}
	return nil
}

// MinTrailLength is the shortest base duration a trail may have. Log
// instants have second precision, so shorter trails could not hold one.
const MinTrailLength = time.Second

const minLengthMessage = "must be at least 1000 ms"

// CreateTrailInput holds the parameters for creating a trail definition.
type CreateTrailInput struct {
	Title        string
	BuffedTypes  []string
	BaseDuration time.Duration
}

// Validate checks all fields and collects all errors.
func (i CreateTrailInput) Validate() error {
	var errs []domain.FieldError

	title := domain.ResolveTrailTitle(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case !domain.IsKnownTrailTitle(title):
		errs = append(errs, domain.FieldError{Field: "title", Message: "unknown trail"})
	}
	if i.BaseDuration < MinTrailLength {
		errs = append(errs, domain.FieldError{Field: "length", Message: minLengthMessage})
	}
	errs = append(errs, validateTypes(i.BuffedTypes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditTrailInput holds the parameters for editing a trail definition. Nil
// fields are left unchanged.
type EditTrailInput struct {
	Slug         string
	BuffedTypes  *[]string
	BaseDuration *time.Duration
}

// Validate checks all fields and collects all errors.
func (i EditTrailInput) Validate() error {
	var errs []domain.FieldError

	if i.BuffedTypes == nil && i.BaseDuration == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.BaseDuration != nil && *i.BaseDuration < MinTrailLength {
		errs = append(errs, domain.FieldError{Field: "length", Message: minLengthMessage})
	}
	if i.BuffedTypes != nil {
		errs = append(errs, validateTypes(*i.BuffedTypes)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTypes(types []string) []domain.FieldError {
	var errs []domain.FieldError
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		if !domain.CreatureType(t).IsValid() {
			errs = append(errs, domain.FieldError{Field: "buffedTypes", Message: "unknown type " + t})
			continue
		}
		if seen[t] {
			errs = append(errs, domain.FieldError{Field: "buffedTypes", Message: "duplicate type " + t})
		}
		seen[t] = true
	}
	return errs
}

func toCreatureTypes(types []string) []domain.CreatureType {
	out := make([]domain.CreatureType, 0, len(types))
	for _, t := range types {
		out = append(out, domain.CreatureType(t))
	}
	return out
}
