package validation

import (
	"fmt"
	"strings"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
)

func ValidateRegisterSnapshot(req request.RegisterSnapshotRequest) error {
	errors := make(map[string]string)

	if len(req.Items) == 0 {
		errors["items"] = "at least one item is required"
	}

	for i, item := range req.Items {
		if strings.TrimSpace(item.AssetName) == "" {
			errors[fmt.Sprintf("items[%d].assetName", i)] = "asset name is required"
		}
		if item.AssetID != nil {
			if err := ValidateUUID(*item.AssetID); err != nil {
				errors[fmt.Sprintf("items[%d].assetId", i)] = err.Error()
			}
		}
		if err := ValidateAmount(fmt.Sprintf("items[%d].totalValueBrl", i), item.TotalValueBRL); err != nil {
			errors[fmt.Sprintf("items[%d].totalValueBrl", i)] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateSnapshotItem checks a value correction. Negative values are
// allowed here (manual corrections may record liabilities); only
// non-finite input is rejected.
func ValidateUpdateSnapshotItem(req request.UpdateSnapshotItemRequest) error {
	if err := ValidateFinite("totalValueBrl", req.TotalValueBRL); err != nil {
		return &Error{Fields: map[string]string{"totalValueBrl": err.Error()}}
	}
	return nil
}
