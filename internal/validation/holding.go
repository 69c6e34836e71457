package validation

import (
	"strings"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
)

func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(req.Ticker) > 20 {
		errors["ticker"] = "ticker must be 20 characters or less"
	}

	if err := ValidateAmount("price", req.Price); err != nil {
		errors["price"] = err.Error()
	}
	if err := ValidateAmount("quantity", req.Quantity); err != nil {
		errors["quantity"] = err.Error()
	}

	// Returns may be negative, only non-finite input is rejected.
	if err := ValidateFinite("return", req.Return); err != nil {
		errors["return"] = err.Error()
	}
	if err := ValidateFinite("returnPercentage", req.ReturnPercentage); err != nil {
		errors["returnPercentage"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Ticker != nil && len(*req.Ticker) > 20 {
		errors["ticker"] = "ticker must be 20 characters or less"
	}

	if req.Price != nil {
		if err := ValidateAmount("price", *req.Price); err != nil {
			errors["price"] = err.Error()
		}
	}
	if req.Quantity != nil {
		if err := ValidateAmount("quantity", *req.Quantity); err != nil {
			errors["quantity"] = err.Error()
		}
	}

	if req.Return != nil {
		if err := ValidateFinite("return", *req.Return); err != nil {
			errors["return"] = err.Error()
		}
	}
	if req.ReturnPercentage != nil {
		if err := ValidateFinite("returnPercentage", *req.ReturnPercentage); err != nil {
			errors["returnPercentage"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateCryptoHolding(req request.CreateCryptoHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(req.Ticker) > 20 {
		errors["ticker"] = "ticker must be 20 characters or less"
	}

	if err := ValidateAmount("priceUsd", req.PriceUSD); err != nil {
		errors["priceUsd"] = err.Error()
	}
	if err := ValidateAmount("quantity", req.Quantity); err != nil {
		errors["quantity"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateCryptoHolding(req request.UpdateCryptoHoldingRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Ticker != nil && len(*req.Ticker) > 20 {
		errors["ticker"] = "ticker must be 20 characters or less"
	}

	if req.PriceUSD != nil {
		if err := ValidateAmount("priceUsd", *req.PriceUSD); err != nil {
			errors["priceUsd"] = err.Error()
		}
	}
	if req.Quantity != nil {
		if err := ValidateAmount("quantity", *req.Quantity); err != nil {
			errors["quantity"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
