package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EconomyCarCategory = "economyCar"

type EconomyCar struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Model         string             `json:"model" bson:"model"`
	Manufacturer  string             `json:"manufacturer" bson:"manufacturer"`
	Type          string             `json:"type" bson:"type"`
	Price         float64            `json:"price" bson:"price"`
	Seats         int                `json:"seats" bson:"seats"`
	LuggageVolume int                `json:"luggageVolume" bson:"luggageVolume"`
	Stock         int                `json:"stock" bson:"stock"`
}

func NewEconomyCar() *EconomyCar {
	return &EconomyCar{}
}

func (c *EconomyCar) GetID() primitive.ObjectID { return c.ID }
func (c *EconomyCar) SetID(id primitive.ObjectID) { c.ID = id }
func (c *EconomyCar) GetModel() string { return c.Model }
func (c *EconomyCar) GetPrice() float64 { return c.Price }
func (c *EconomyCar) GetStock() int { return c.Stock }
func (c *EconomyCar) Category() string { return EconomyCarCategory }

func (c *EconomyCar) DisplayName() string {
	return c.Manufacturer + " " + c.Model
}

func (c *EconomyCar) URL() string {
	return carURL(EconomyCarCategory, c.ID)
}

func (c *EconomyCar) Attributes() []Attribute {
	return []Attribute{
		{Label: "Model", Value: c.Model},
		{Label: "Manufacturer", Value: c.Manufacturer},
		{Label: "Type", Value: c.Type},
		{Label: "Seats", Value: strconv.Itoa(c.Seats)},
		{Label: "Luggage Volume", Value: strconv.Itoa(c.LuggageVolume)},
		{Label: "Price", Value: formatNumber(c.Price)},
		{Label: "Stock", Value: strconv.Itoa(c.Stock)},
	}
}

func (c *EconomyCar) FormValues() map[string]string {
	return map[string]string{
		"model":         c.Model,
		"manufacturer":  c.Manufacturer,
		"type":          c.Type,
		"seats":         strconv.Itoa(c.Seats),
		"luggageVolume": strconv.Itoa(c.LuggageVolume),
		"price":         formatNumber(c.Price),
		"stock":         strconv.Itoa(c.Stock),
	}
}

func (c *EconomyCar) Assign(values map[string]string) error {
	var next EconomyCar
	var err error

	if next.Model, err = requireText(values, "model"); err != nil {
		return err
	}
	if next.Manufacturer, err = requireText(values, "manufacturer"); err != nil {
		return err
	}
	if next.Type, err = requireText(values, "type"); err != nil {
		return err
	}
	if next.Price, err = parseFloat(values, "price"); err != nil {
		return err
	}
	if next.Seats, err = parseInt(values, "seats"); err != nil {
		return err
	}
	if next.LuggageVolume, err = parseInt(values, "luggageVolume"); err != nil {
		return err
	}
	if next.Stock, err = parseInt(values, "stock"); err != nil {
		return err
	}

	next.ID = c.ID
	*c = next
	return nil
}
