package services

import (
	"context"
	"time"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/validators"
	"github.com/coolleighton/InventoryApp/pkg/events"
	"github.com/coolleighton/InventoryApp/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmitResult is the outcome of a create or update form submission.
type SubmitResult[T models.Car] struct {
	// Values are the sanitised submitted values, kept for re-rendering.
	Values validators.Values
	Errors validators.ValidationErrors
	Car    T
	// Existing is set when a create matched a car with the same model.
	Existing bool
}

func (r *SubmitResult[T]) Valid() bool {
	return len(r.Errors) == 0
}

type CarService[T models.Car] struct {
	category  *Category[T]
	repo      interfaces.CarRepository[T]
	publisher events.Publisher
	logger    *logger.Logger
}

func NewCarService[T models.Car](category *Category[T], repo interfaces.CarRepository[T], publisher events.Publisher, log *logger.Logger) *CarService[T] {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &CarService[T]{
		category:  category,
		repo:      repo,
		publisher: publisher,
		logger:    log.WithCategory(category.Slug),
	}
}

func (s *CarService[T]) Category() *Category[T] {
	return s.category
}

func (s *CarService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx, interfaces.ByPriceAscending)
}

func (s *CarService[T]) ListSorted(ctx context.Context, sort interfaces.SortSpec) ([]T, error) {
	return s.repo.List(ctx, sort)
}

func (s *CarService[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService[T]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Create validates the form and stores a new car unless one with the same
// model already exists, in which case that car is returned instead.
// The model lookup and the insert are not atomic.
func (s *CarService[T]) Create(ctx context.Context, form func(string) string) (*SubmitResult[T], error) {
	result := s.validate(form)
	if !result.Valid() {
		return result, nil
	}

	existing, err := s.repo.FindByModel(ctx, result.Car.GetModel())
	switch {
	case err == nil:
		result.Car = existing
		result.Existing = true
		s.logger.WithCarID(existing.GetID()).Debug("Car model already stocked")
		return result, nil
	case !isNotFound(err):
		return nil, err
	}

	if err := s.repo.Insert(ctx, result.Car); err != nil {
		return nil, err
	}

	s.logger.LogInventoryEvent(s.category.Slug, result.Car.GetID(), string(events.CarCreated), map[string]interface{}{
		"model": result.Car.GetModel(),
	})
	s.publish(ctx, events.CarCreated, result.Car)

	return result, nil
}

// Update validates the form and replaces every field of the car with id.
// No model uniqueness check is made.
func (s *CarService[T]) Update(ctx context.Context, id primitive.ObjectID, form func(string) string) (*SubmitResult[T], error) {
	result := s.validate(form)
	result.Car.SetID(id)
	if !result.Valid() {
		return result, nil
	}

	updated, err := s.repo.UpdateByID(ctx, id, result.Car)
	if err != nil {
		return nil, err
	}
	result.Car = updated

	s.logger.LogInventoryEvent(s.category.Slug, id, string(events.CarUpdated), map[string]interface{}{
		"model": updated.GetModel(),
	})
	s.publish(ctx, events.CarUpdated, updated)

	return result, nil
}

func (s *CarService[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.LogInventoryEvent(s.category.Slug, id, string(events.CarDeleted), nil)

	car := s.category.NewCar()
	car.SetID(id)
	s.publish(ctx, events.CarDeleted, car)

	return nil
}

// validate runs the category rules and builds the typed record. The record is
// populated from the sanitised values only when every rule passed.
func (s *CarService[T]) validate(form func(string) string) *SubmitResult[T] {
	values, errs := s.category.Rules.Run(form)
	result := &SubmitResult[T]{
		Values: values,
		Errors: errs,
		Car:    s.category.NewCar(),
	}

	if len(errs) == 0 {
		if err := result.Car.Assign(values); err != nil {
			result.Errors = append(result.Errors, validators.ValidationError{
				Tag:     "assign",
				Message: err.Error(),
			})
		}
	}

	return result
}

func (s *CarService[T]) publish(ctx context.Context, eventType events.EventType, car T) {
	event := &events.InventoryEvent{
		Type:       eventType,
		Category:   s.category.Slug,
		ID:         car.GetID().Hex(),
		Model:      car.GetModel(),
		OccurredAt: time.Now().UTC(),
	}
	if eventType != events.CarDeleted {
		stock := car.GetStock()
		event.Stock = &stock
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to publish inventory event")
	}
}
