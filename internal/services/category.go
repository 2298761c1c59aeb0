package services

import (
	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/validators"
)

// Category describes one car category: its route slug, display title,
// form rules and record constructor.
type Category[T models.Car] struct {
	Slug   string
	Title  string
	Plural string
	Rules  validators.Chain
	NewCar func() T
}

// IDField is the form field carrying the id on delete submissions.
func (c *Category[T]) IDField() string {
	return c.Slug + "id"
}

func (c *Category[T]) ListPath() string {
	return models.CatalogPath + "/" + c.Slug
}

var EconomyCars = &Category[*models.EconomyCar]{
	Slug:   models.EconomyCarCategory,
	Title:  "Economy Car",
	Plural: "Economy Cars",
	Rules:  validators.EconomyCarRules,
	NewCar: models.NewEconomyCar,
}

var LuxuryCars = &Category[*models.LuxuryCar]{
	Slug:   models.LuxuryCarCategory,
	Title:  "Luxury Car",
	Plural: "Luxury Cars",
	Rules:  validators.LuxuryCarRules,
	NewCar: models.NewLuxuryCar,
}
