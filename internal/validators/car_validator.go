package validators

import "github.com/coolleighton/InventoryApp/internal/models"

const maxTextLength = models.MaxTextLength

// EconomyCarRules validates economy car create and update forms.
// seats is capped at one character rather than range-checked.
var EconomyCarRules = Chain{
	{Field: "model", Label: "Model", Tag: "min=3", Message: "economy car model must contain at least 3 characters", Kind: TextField},
	{Field: "manufacturer", Label: "Manufacturer", Tag: "min=3", Message: "economy car manufacturer must contain at least 3 characters", Kind: TextField},
	{Field: "type", Label: "Type", Tag: "min=3", Message: "economy car type must contain at least 3 characters", Kind: TextField},
	{Field: "seats", Label: "Seats", Tag: "max=1", Message: "economy car seats must contain only 1 character", Kind: IntegerField},
	{Field: "luggageVolume", Label: "Luggage Volume", Tag: "min=2", Message: "economy car luggage volume must contain at least 2 characters", Kind: IntegerField},
	{Field: "price", Label: "Price", Tag: "min=4", Message: "economy car price must contain at least 4 characters", Kind: DecimalField},
	{Field: "stock", Label: "Stock", Tag: "min=1", Message: "economy car stock must contain at least 1 character", Kind: IntegerField},
}

// LuxuryCarRules validates luxury car create and update forms.
var LuxuryCarRules = Chain{
	{Field: "model", Label: "Model", Tag: "min=3", Message: "luxury car model must contain at least 3 characters", Kind: TextField},
	{Field: "manufacturer", Label: "Manufacturer", Tag: "min=3", Message: "luxury car manufacturer must contain at least 3 characters", Kind: TextField},
	{Field: "type", Label: "Type", Tag: "min=3", Message: "luxury car type must contain at least 3 characters", Kind: TextField},
	{Field: "power", Label: "Power", Tag: "max=4", Message: "luxury car power must contain at most 4 characters", Kind: IntegerField},
	{Field: "engine", Label: "Engine", Tag: "min=2", Message: "luxury car engine must contain at least 2 characters", Kind: TextField},
	{Field: "price", Label: "Price", Tag: "min=4", Message: "luxury car price must contain at least 4 characters", Kind: DecimalField},
	{Field: "stock", Label: "Stock", Tag: "min=1", Message: "luxury car stock must contain at least 1 character", Kind: IntegerField},
}
