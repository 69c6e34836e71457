package validation

import (
	"strings"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

func ValidateCreateLabel(kind string, req request.CreateLabelRequest) error {
	errors := make(map[string]string)

	if !model.ValidLabelKind(kind) {
		errors["kind"] = "kind must be one of: category, sector, custody"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
