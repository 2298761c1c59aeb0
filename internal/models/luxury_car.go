package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LuxuryCarCategory = "luxuryCar"

type LuxuryCar struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Model        string             `json:"model" bson:"model"`
	Manufacturer string             `json:"manufacturer" bson:"manufacturer"`
	Type         string             `json:"type" bson:"type"`
	Price        float64            `json:"price" bson:"price"`
	Power        int                `json:"power" bson:"power"`
	Engine       string             `json:"engine" bson:"engine"`
	Stock        int                `json:"stock" bson:"stock"`
}

func NewLuxuryCar() *LuxuryCar {
	return &LuxuryCar{}
}

func (c *LuxuryCar) GetID() primitive.ObjectID { return c.ID }
func (c *LuxuryCar) SetID(id primitive.ObjectID) { c.ID = id }
func (c *LuxuryCar) GetModel() string { return c.Model }
func (c *LuxuryCar) GetPrice() float64 { return c.Price }
func (c *LuxuryCar) GetStock() int { return c.Stock }
func (c *LuxuryCar) Category() string { return LuxuryCarCategory }

func (c *LuxuryCar) DisplayName() string {
	return c.Manufacturer + " " + c.Model
}

func (c *LuxuryCar) URL() string {
	return carURL(LuxuryCarCategory, c.ID)
}

func (c *LuxuryCar) Attributes() []Attribute {
	return []Attribute{
		{Label: "Model", Value: c.Model},
		{Label: "Manufacturer", Value: c.Manufacturer},
		{Label: "Type", Value: c.Type},
		{Label: "Power", Value: strconv.Itoa(c.Power)},
		{Label: "Engine", Value: c.Engine},
		{Label: "Price", Value: formatNumber(c.Price)},
		{Label: "Stock", Value: strconv.Itoa(c.Stock)},
	}
}

func (c *LuxuryCar) FormValues() map[string]string {
	return map[string]string{
		"model":        c.Model,
		"manufacturer": c.Manufacturer,
		"type":         c.Type,
		"power":        strconv.Itoa(c.Power),
		"engine":       c.Engine,
		"price":        formatNumber(c.Price),
		"stock":        strconv.Itoa(c.Stock),
	}
}

func (c *LuxuryCar) Assign(values map[string]string) error {
	var next LuxuryCar
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
	if next.Power, err = parseInt(values, "power"); err != nil {
		return err
	}
	if next.Engine, err = requireText(values, "engine"); err != nil {
		return err
	}
	if next.Stock, err = parseInt(values, "stock"); err != nil {
		return err
	}

	next.ID = c.ID
	*c = next
	return nil
}
