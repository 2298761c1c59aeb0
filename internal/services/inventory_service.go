package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

type InventoryCounts struct {
	EconomyCars int64 `json:"economy_cars"`
	LuxuryCars  int64 `json:"luxury_cars"`
	TotalCars   int64 `json:"total_cars"`
}

// InventoryService reads figures spanning both categories.
type InventoryService struct {
	economy counter
	luxury  counter
}

func NewInventoryService(economy, luxury counter) *InventoryService {
	return &InventoryService{economy: economy, luxury: luxury}
}

// Counts queries both categories concurrently. Any failure fails the whole call.
func (s *InventoryService) Counts(ctx context.Context) (*InventoryCounts, error) {
	var counts InventoryCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.economy.Count(gctx)
		counts.EconomyCars = n
		return err
	})
	g.Go(func() error {
		n, err := s.luxury.Count(gctx)
		counts.LuxuryCars = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts.TotalCars = counts.EconomyCars + counts.LuxuryCars
	return &counts, nil
}
