package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names follow the documents written by the original catalog.
const (
	EconomyCarCollection = "economycars"
	LuxuryCarCollection  = "luxurycars"
)

// CacheService is the subset of the cache the repositories rely on.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type carRepository[T models.Car] struct {
	collection *mongo.Collection
	newCar     func() T
	cache      CacheService
	cacheTTL   time.Duration
}

func NewCarRepository[T models.Car](db *mongo.Database, collectionName string, newCar func() T, cache CacheService, cacheTTL time.Duration) interfaces.CarRepository[T] {
	return &carRepository[T]{
		collection: db.Collection(collectionName),
		newCar:     newCar,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func NewEconomyCarRepository(db *mongo.Database, cache CacheService, cacheTTL time.Duration) interfaces.CarRepository[*models.EconomyCar] {
	return NewCarRepository(db, EconomyCarCollection, models.NewEconomyCar, cache, cacheTTL)
}

func NewLuxuryCarRepository(db *mongo.Database, cache CacheService, cacheTTL time.Duration) interfaces.CarRepository[*models.LuxuryCar] {
	return NewCarRepository(db, LuxuryCarCollection, models.NewLuxuryCar, cache, cacheTTL)
}

func (r *carRepository[T]) List(ctx context.Context, sort interfaces.SortSpec) ([]T, error) {
	opts := options.Find().
		SetProjection(bson.M{"model": 1, "manufacturer": 1, "stock": 1, "price": 1}).
		SetSort(bson.D{{Key: sort.Field, Value: int(sort.Order)}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := make([]T, 0)
	for cursor.Next(ctx) {
		car := r.newCar()
		if err := cursor.Decode(car); err != nil {
			return nil, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, car)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	return cars, nil
}

func (r *carRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	if car, ok := r.getCarFromCache(ctx, id); ok {
		return car, nil
	}

	car, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return car, err
	}

	r.cacheCar(ctx, car)
	return car, nil
}

func (r *carRepository[T]) FindByModel(ctx context.Context, model string) (T, error) {
	return r.findOne(ctx, bson.M{"model": model})
}

func (r *carRepository[T]) ExistsByModel(ctx context.Context, model string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"model": model}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check car model: %w", err)
	}
	return count > 0, nil
}

func (r *carRepository[T]) Insert(ctx context.Context, car T) error {
	car.SetID(primitive.NewObjectID())

	if _, err := r.collection.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	return nil
}

func (r *carRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, car T) (T, error) {
	car.SetID(id)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, car)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to update car: %w", err)
	}

	r.invalidateCarCache(ctx, id)

	if result.MatchedCount == 0 {
		var zero T
		return zero, interfaces.ErrNotFound
	}

	return car, nil
}

func (r *carRepository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}

	r.invalidateCarCache(ctx, id)
	return nil
}

func (r *carRepository[T]) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return count, nil
}

// Helper methods
func (r *carRepository[T]) findOne(ctx context.Context, filter bson.M) (T, error) {
	car := r.newCar()
	err := r.collection.FindOne(ctx, filter).Decode(car)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, interfaces.ErrNotFound
		}
		return zero, fmt.Errorf("failed to get car: %w", err)
	}
	return car, nil
}

// Cache operations
func (r *carRepository[T]) cacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("%s:%s", r.collection.Name(), id.Hex())
}

func (r *carRepository[T]) cacheCar(ctx context.Context, car T) {
	if r.cache != nil {
		_ = r.cache.Set(ctx, r.cacheKey(car.GetID()), car, r.cacheTTL)
	}
}

func (r *carRepository[T]) getCarFromCache(ctx context.Context, id primitive.ObjectID) (T, bool) {
	var zero T
	if r.cache == nil {
		return zero, false
	}

	car := r.newCar()
	if err := r.cache.Get(ctx, r.cacheKey(id), car); err != nil {
		return zero, false
	}
	return car, true
}

func (r *carRepository[T]) invalidateCarCache(ctx context.Context, id primitive.ObjectID) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, r.cacheKey(id))
	}
}
