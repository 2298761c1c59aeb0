// Package memory keeps car records in process memory. Records are stored as
// BSON documents so reads behave like the MongoDB store: callers never share
// memory with the store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type carRepository[T models.Car] struct {
	mu     sync.RWMutex
	docs   map[primitive.ObjectID]bson.Raw
	order  []primitive.ObjectID
	newCar func() T
}

func NewCarRepository[T models.Car](newCar func() T) interfaces.CarRepository[T] {
	return &carRepository[T]{
		docs:   make(map[primitive.ObjectID]bson.Raw),
		newCar: newCar,
	}
}

func NewEconomyCarRepository() interfaces.CarRepository[*models.EconomyCar] {
	return NewCarRepository(models.NewEconomyCar)
}

func NewLuxuryCarRepository() interfaces.CarRepository[*models.LuxuryCar] {
	return NewCarRepository(models.NewLuxuryCar)
}

func (r *carRepository[T]) List(ctx context.Context, spec interfaces.SortSpec) ([]T, error) {
	r.mu.RLock()
	docs := make([]bson.Raw, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, r.docs[id])
	}
	r.mu.RUnlock()

	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i].Lookup(spec.Field), docs[j].Lookup(spec.Field))
		if spec.Order == interfaces.Descending {
			return c > 0
		}
		return c < 0
	})

	cars := make([]T, 0, len(docs))
	for _, doc := range docs {
		car, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, nil
}

func (r *carRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, interfaces.ErrNotFound
	}
	return r.decode(doc)
}

func (r *carRepository[T]) FindByModel(ctx context.Context, model string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		doc := r.docs[id]
		if v, ok := doc.Lookup("model").StringValueOK(); ok && v == model {
			return r.decode(doc)
		}
	}

	var zero T
	return zero, interfaces.ErrNotFound
}

func (r *carRepository[T]) ExistsByModel(ctx context.Context, model string) (bool, error) {
	_, err := r.FindByModel(ctx, model)
	if errors.Is(err, interfaces.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *carRepository[T]) Insert(ctx context.Context, car T) error {
	car.SetID(primitive.NewObjectID())

	doc, err := bson.Marshal(car)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	r.mu.Lock()
	r.docs[car.GetID()] = doc
	r.order = append(r.order, car.GetID())
	r.mu.Unlock()

	return nil
}

func (r *carRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, car T) (T, error) {
	car.SetID(id)

	doc, err := bson.Marshal(car)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to update car: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		var zero T
		return zero, interfaces.ErrNotFound
	}
	r.docs[id] = doc

	return car, nil
}

func (r *carRepository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return nil
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *carRepository[T]) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func (r *carRepository[T]) decode(doc bson.Raw) (T, error) {
	car := r.newCar()
	if err := bson.Unmarshal(doc, car); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode car: %w", err)
	}
	return car, nil
}

// compareValues orders numbers numerically and everything else as strings.
func compareValues(a, b bson.RawValue) int {
	af, aNum := numeric(a)
	bf, bNum := numeric(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	as, aStr := a.StringValueOK()
	bs, bStr := b.StringValueOK()
	if aStr && bStr {
		return strings.Compare(as, bs)
	}
	return strings.Compare(a.String(), b.String())
}

func numeric(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bsontype.Double:
		return v.Double(), true
	case bsontype.Int32:
		return float64(v.Int32()), true
	case bsontype.Int64:
		return float64(v.Int64()), true
	}
	return 0, false
}
