package handlers

import (
	"errors"
	"html"
	"net/http"

	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/services"
	"github.com/coolleighton/InventoryApp/internal/utils"
	"github.com/coolleighton/InventoryApp/internal/validators"
	"github.com/coolleighton/InventoryApp/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler is the set of HTML endpoints served for one car category.
type CatalogHandler interface {
	Slug() string
	List(c *gin.Context)
	Detail(c *gin.Context)
	CreateForm(c *gin.Context)
	Create(c *gin.Context)
	DeleteForm(c *gin.Context)
	Delete(c *gin.Context)
	UpdateForm(c *gin.Context)
	Update(c *gin.Context)
}

type categoryView struct {
	Slug        string
	Title       string
	Plural      string
	ListPath    string
	CreatePath  string
	CreateTitle string
	IDField     string
}

type formField struct {
	Name      string
	Label     string
	InputType string
	Value     string
}

// CarHandler serves the catalog pages of one category.
type CarHandler[T models.Car] struct {
	service  *services.CarService[T]
	category categoryView
	logger   *logger.Logger
}

func NewCarHandler[T models.Car](service *services.CarService[T], log *logger.Logger) *CarHandler[T] {
	category := service.Category()
	return &CarHandler[T]{
		service: service,
		category: categoryView{
			Slug:        category.Slug,
			Title:       category.Title,
			Plural:      category.Plural,
			ListPath:    category.ListPath(),
			CreatePath:  category.ListPath() + "/create",
			CreateTitle: "Add " + category.Title,
			IDField:     category.IDField(),
		},
		logger: log.WithCategory(category.Slug),
	}
}

func (h *CarHandler[T]) Slug() string {
	return h.category.Slug
}

// List renders every car of the category, cheapest first.
func (h *CarHandler[T]) List(c *gin.Context) {
	cars, err := h.service.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to list cars")
		return
	}

	c.HTML(http.StatusOK, "car_list", gin.H{
		"title":    h.category.Title + " List",
		"category": h.category,
		"cars":     cars,
	})
}

func (h *CarHandler[T]) Detail(c *gin.Context) {
	car, ok := h.lookup(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "car_detail", gin.H{
		"title":    car.DisplayName(),
		"category": h.category,
		"car":      car,
	})
}

func (h *CarHandler[T]) CreateForm(c *gin.Context) {
	h.renderForm(c, h.category.CreateTitle, nil, nil)
}

// Create stores a new car, or redirects to the stored car with the same model.
func (h *CarHandler[T]) Create(c *gin.Context) {
	result, err := h.service.Create(c.Request.Context(), c.PostForm)
	if err != nil {
		h.serverError(c, err, "Failed to create car")
		return
	}

	if !result.Valid() {
		h.renderForm(c, h.category.CreateTitle, result.Values, result.Errors)
		return
	}

	c.Redirect(http.StatusFound, result.Car.URL())
}

// DeleteForm asks for confirmation. A missing car sends the user back to the list.
func (h *CarHandler[T]) DeleteForm(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, h.category.ListPath)
		return
	}

	car, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			c.Redirect(http.StatusFound, h.category.ListPath)
			return
		}
		h.serverError(c, err, "Failed to load car")
		return
	}

	c.HTML(http.StatusOK, "car_delete", gin.H{
		"title":    "Delete " + h.category.Title,
		"category": h.category,
		"car":      car,
	})
}

// Delete removes the car named by the {slug}id body field and returns to the
// list whether or not the car existed.
func (h *CarHandler[T]) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.PostForm(h.category.IDField))
	if err != nil {
		h.logger.WithField("id", c.PostForm(h.category.IDField)).Debug("Ignoring delete of malformed id")
		c.Redirect(http.StatusFound, h.category.ListPath)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err, "Failed to delete car")
		return
	}

	c.Redirect(http.StatusFound, h.category.ListPath)
}

func (h *CarHandler[T]) UpdateForm(c *gin.Context) {
	car, ok := h.lookup(c)
	if !ok {
		return
	}

	h.renderForm(c, "Update "+h.category.Title, car.FormValues(), nil)
}

// Update replaces every field of the car. Model collisions with other cars are allowed.
func (h *CarHandler[T]) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, c.PostForm)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err, "Failed to update car")
		return
	}

	if !result.Valid() {
		h.renderForm(c, "Update "+h.category.Title, result.Values, result.Errors)
		return
	}

	c.Redirect(http.StatusFound, result.Car.URL())
}

// lookup loads the car named by the :id path parameter, rendering the
// not found page for malformed or unknown ids.
func (h *CarHandler[T]) lookup(c *gin.Context) (T, bool) {
	var zero T

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return zero, false
	}

	car, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.notFound(c)
		} else {
			h.serverError(c, err, "Failed to load car")
		}
		return zero, false
	}

	return car, true
}

// renderForm fills inputs with the unescaped text so a resubmitted form
// stores the same value again.
func (h *CarHandler[T]) renderForm(c *gin.Context, title string, values map[string]string, errs validators.ValidationErrors) {
	rules := h.service.Category().Rules
	fields := make([]formField, len(rules))
	for i, rule := range rules {
		inputType := "text"
		if rule.Kind != validators.TextField {
			inputType = "number"
		}
		fields[i] = formField{
			Name:      rule.Field,
			Label:     rule.Label,
			InputType: inputType,
			Value:     html.UnescapeString(values[rule.Field]),
		}
	}

	c.HTML(http.StatusOK, "car_form", gin.H{
		"title":    title,
		"category": h.category,
		"fields":   fields,
		"errors":   errs,
	})
}

func (h *CarHandler[T]) notFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, utils.ErrCarNotFound)
}

func (h *CarHandler[T]) serverError(c *gin.Context, err error, msg string) {
	h.logger.WithContext(c.Request.Context()).WithError(err).Error(msg)
	_ = c.Error(err)
	renderError(c, http.StatusInternalServerError, utils.ErrInternalServer)
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error", gin.H{
		"title":   utils.TitleError,
		"message": message,
		"status":  status,
	})
}
