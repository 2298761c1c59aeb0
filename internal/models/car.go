package models

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogPath is the mount point of the HTML catalog.
const CatalogPath = "/catalog"

// MaxTextLength caps every free-text field of a car.
const MaxTextLength = 100

// Car is implemented by every stored car category.
type Car interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	GetModel() string
	GetPrice() float64
	GetStock() int
	Category() string
	// DisplayName is "<manufacturer> <model>".
	DisplayName() string
	URL() string
	Attributes() []Attribute
	FormValues() map[string]string
	// Assign replaces every field from sanitised form values.
	Assign(values map[string]string) error
}

// Attribute is one labelled value shown on detail pages.
type Attribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func carURL(category string, id primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s/%s", CatalogPath, category, id.Hex())
}

func parseInt(values map[string]string, field string) (int, error) {
	v, err := strconv.Atoi(values[field])
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number: %w", field, err)
	}
	return v, nil
}

func parseFloat(values map[string]string, field string) (float64, error) {
	v, err := strconv.ParseFloat(values[field], 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", field, err)
	}
	return v, nil
}

func requireText(values map[string]string, field string) (string, error) {
	v := values[field]
	if v == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if len([]rune(v)) > MaxTextLength {
		return "", fmt.Errorf("%s must be at most %d characters", field, MaxTextLength)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
