package main

import (
	"context"
	"fmt"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/pkg/logger"
)

func economyCars() []*models.EconomyCar {
	car := func(model, manufacturer, carType string, price float64, seats, luggageVolume, stock int) *models.EconomyCar {
		return &models.EconomyCar{
			Model:         model,
			Manufacturer:  manufacturer,
			Type:          carType,
			Price:         price,
			Seats:         seats,
			LuggageVolume: luggageVolume,
			Stock:         stock,
		}
	}

	return []*models.EconomyCar{
		car("Corsa", "Vauxhall", "Hatchback", 15000, 5, 285, 15),
		car("Astra", "Vauxhall", "Sedan", 20000, 5, 420, 10),
		car("Polo", "Volkswagen", "Hatchback", 18000, 5, 350, 18),
		car("Golf", "Volkswagen", "Hatchback", 22000, 5, 380, 20),
		car("Clio", "Renault", "Hatchback", 17000, 5, 300, 18),
		car("Megane", "Renault", "Sedan", 21000, 5, 370, 14),
		car("Cooper", "Mini", "Hatchback", 22000, 4, 211, 12),
		car("Countryman", "Mini", "SUV", 28000, 5, 450, 8),
		car("Fiesta", "Ford", "Hatchback", 16000, 5, 292, 22),
		car("Focus", "Ford", "Sedan", 20000, 5, 375, 17),
		car("Civic", "Honda", "Sedan", 22000, 5, 428, 13),
		car("Fit", "Honda", "Hatchback", 18000, 5, 470, 16),
	}
}

func luxuryCars() []*models.LuxuryCar {
	car := func(model, manufacturer, carType string, price float64, power int, engine string, stock int) *models.LuxuryCar {
		return &models.LuxuryCar{
			Model:        model,
			Manufacturer: manufacturer,
			Type:         carType,
			Price:        price,
			Power:        power,
			Engine:       engine,
			Stock:        stock,
		}
	}

	return []*models.LuxuryCar{
		car("Regera", "Koenigsegg", "Coupe", 2000000, 1500, "5.0 L V8", 5),
		car("Jesko", "Koenigsegg", "Coupe", 3000000, 1600, "5.0 L V8", 3),
		car("Huayra", "Pagani", "Coupe", 2500000, 730, "6.0 L twin-turbo V12", 3),
		car("Chiron", "Bugatti", "Coupe", 3000000, 1479, "8.0 L quad-turbocharged W16", 2),
		car("Aventador SVJ", "Lamborghini", "Coupe", 550000, 770, "6.5 L V12", 10),
		car("720S", "McLaren", "Coupe", 300000, 710, "4.0 L twin-turbo V8", 8),
	}
}

func seed(ctx context.Context, economy interfaces.CarRepository[*models.EconomyCar], luxury interfaces.CarRepository[*models.LuxuryCar], log *logger.Logger) error {
	if err := insertAll(ctx, economy, economyCars(), log); err != nil {
		return fmt.Errorf("failed to seed economy cars: %w", err)
	}
	if err := insertAll(ctx, luxury, luxuryCars(), log); err != nil {
		return fmt.Errorf("failed to seed luxury cars: %w", err)
	}
	return nil
}

func insertAll[T models.Car](ctx context.Context, repo interfaces.CarRepository[T], cars []T, log *logger.Logger) error {
	for _, car := range cars {
		if err := repo.Insert(ctx, car); err != nil {
			return err
		}
		log.WithCategory(car.Category()).WithCarID(car.GetID()).Infof("Added %s", car.DisplayName())
	}
	return nil
}
