package interfaces

import (
	"context"
	"errors"

	"github.com/coolleighton/InventoryApp/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no car matches the lookup.
var ErrNotFound = errors.New("car not found")

type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

type SortSpec struct {
	Field string
	Order SortOrder
}

// ByPriceAscending is the order used by catalog list pages.
var ByPriceAscending = SortSpec{Field: "price", Order: Ascending}

// CarRepository is the record store of one car category.
type CarRepository[T models.Car] interface {
	// List returns summary records (model, manufacturer, stock, price) in sort order.
	List(ctx context.Context, sort SortSpec) ([]T, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (T, error)
	FindByModel(ctx context.Context, model string) (T, error)
	ExistsByModel(ctx context.Context, model string) (bool, error)
	// Insert assigns a new id to car and stores it.
	Insert(ctx context.Context, car T) error
	// UpdateByID replaces every field of the stored car, keeping its id.
	UpdateByID(ctx context.Context, id primitive.ObjectID, car T) (T, error)
	// DeleteByID succeeds whether or not the car exists.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// SortableFields lists the fields a car list may be ordered by.
var SortableFields = []string{"price", "model", "manufacturer", "stock"}
