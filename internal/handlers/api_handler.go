package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/services"
	"github.com/coolleighton/InventoryApp/internal/utils"
	"github.com/coolleighton/InventoryApp/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogAPIHandler is the read-only JSON API of one car category.
type CatalogAPIHandler interface {
	Slug() string
	List(c *gin.Context)
	Get(c *gin.Context)
}

type CarAPIHandler[T models.Car] struct {
	service *services.CarService[T]
	logger  *logger.Logger
}

func NewCarAPIHandler[T models.Car](service *services.CarService[T], log *logger.Logger) *CarAPIHandler[T] {
	return &CarAPIHandler[T]{
		service: service,
		logger:  log.WithCategory(service.Category().Slug),
	}
}

func (h *CarAPIHandler[T]) Slug() string {
	return h.service.Category().Slug
}

// List returns the category's cars ordered by the sort and order query parameters.
func (h *CarAPIHandler[T]) List(c *gin.Context) {
	params := utils.GetSortParams(c, interfaces.SortableFields)
	spec := interfaces.SortSpec{Field: params.Sort, Order: interfaces.Ascending}
	if params.IsDescending() {
		spec.Order = interfaces.Descending
	}

	cars, err := h.service.ListSorted(c.Request.Context(), spec)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list cars")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, h.service.Category().Plural+" retrieved successfully", summaries(cars), &utils.Meta{
		Sort:  params,
		Count: len(cars),
	})
}

func (h *CarAPIHandler[T]) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Car")
		return
	}

	car, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Car")
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load car")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Car retrieved successfully", carResponse{
		carSummary: summarize(car),
		Attributes: car.Attributes(),
	})
}

type carSummary struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Model       string  `json:"model"`
	DisplayName string  `json:"display_name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	URL         string  `json:"url"`
}

type carResponse struct {
	carSummary
	Attributes []models.Attribute `json:"attributes"`
}

func summarize(car models.Car) carSummary {
	return carSummary{
		ID:          car.GetID().Hex(),
		Category:    car.Category(),
		Model:       car.GetModel(),
		DisplayName: car.DisplayName(),
		Price:       car.GetPrice(),
		Stock:       car.GetStock(),
		URL:         car.URL(),
	}
}

func summaries[T models.Car](cars []T) []carSummary {
	out := make([]carSummary, len(cars))
	for i, car := range cars {
		out[i] = summarize(car)
	}
	return out
}

type InventoryAPIHandler struct {
	inventory *services.InventoryService
	logger    *logger.Logger
}

func NewInventoryAPIHandler(inventory *services.InventoryService, log *logger.Logger) *InventoryAPIHandler {
	return &InventoryAPIHandler{inventory: inventory, logger: log}
}

func (h *InventoryAPIHandler) Counts(c *gin.Context) {
	counts, err := h.inventory.Counts(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to count cars")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Inventory counts retrieved successfully", counts)
}

// HealthHandler reports whether the record store answers.
type HealthHandler struct {
	ping    func(ctx context.Context) error
	version string
}

func NewHealthHandler(version string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping, version: version}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"version": h.version,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}
