package job

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/etapa/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateCreateJob checks the request's struct tags and maps each failure to its sentinel
func validateCreateJob(req CreateJobRequest) error {
	if types.IsBlank(req.OrgID) {
		return ErrInvalidOrgID
	}
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid job request: %w", err)
	}
	fe := verrs[0]
	switch {
	case fe.StructField() == "Title" && fe.Tag() == "required":
		return ErrEmptyTitle
	case fe.StructField() == "Title" && fe.Tag() == "max":
		return ErrTitleTooLong
	default:
		return fmt.Errorf("invalid job request: %s failed %s", fe.Field(), fe.Tag())
	}
}
