package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/coolleighton/InventoryApp/internal/handlers"
	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/repositories/memory"
	"github.com/coolleighton/InventoryApp/internal/services"
	"github.com/coolleighton/InventoryApp/pkg/logger"
	"github.com/coolleighton/InventoryApp/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router  *gin.Engine
	economy interfaces.CarRepository[*models.EconomyCar]
	luxury  interfaces.CarRepository[*models.LuxuryCar]
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWith(t, memory.NewEconomyCarRepository(), memory.NewLuxuryCarRepository())
}

func newTestAppWith(t *testing.T, economy interfaces.CarRepository[*models.EconomyCar], luxury interfaces.CarRepository[*models.LuxuryCar]) *testApp {
	t.Helper()
	log := logger.NewNop()

	economyService := services.NewCarService(services.EconomyCars, economy, nil, log)
	luxuryService := services.NewCarService(services.LuxuryCars, luxury, nil, log)
	inventory := services.NewInventoryService(economy, luxury)

	router, err := routes.NewRouter(routes.RouterConfig{CORSOrigins: []string{"*"}, Logger: log}, routes.Handlers{
		Index: handlers.NewIndexHandler(inventory, log),
		Cars: []handlers.CatalogHandler{
			handlers.NewCarHandler(economyService, log),
			handlers.NewCarHandler(luxuryService, log),
		},
		InventoryAPI: handlers.NewInventoryAPIHandler(inventory, log),
		CarsAPI: []handlers.CatalogAPIHandler{
			handlers.NewCarAPIHandler(economyService, log),
			handlers.NewCarAPIHandler(luxuryService, log),
		},
		Health: handlers.NewHealthHandler("test", nil),
	})
	require.NoError(t, err)

	return &testApp{router: router, economy: economy, luxury: luxury}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func corsaForm() url.Values {
	return url.Values{
		"model":         {"Corsa"},
		"manufacturer":  {"Vauxhall"},
		"type":          {"Hatchback"},
		"seats":         {"5"},
		"luggageVolume": {"285"},
		"price":         {"15000"},
		"stock":         {"15"},
	}
}

func jeskoForm() url.Values {
	return url.Values{
		"model":        {"Jesko"},
		"manufacturer": {"Koenigsegg"},
		"type":         {"Coupe"},
		"price":        {"3000000"},
		"power":        {"1600"},
		"engine":       {"5.0 L V8"},
		"stock":        {"3"},
	}
}

func seedEconomyCar(t *testing.T, repo interfaces.CarRepository[*models.EconomyCar], model string, price float64) *models.EconomyCar {
	t.Helper()
	car := &models.EconomyCar{
		Model:         model,
		Manufacturer:  "Vauxhall",
		Type:          "Hatchback",
		Price:         price,
		Seats:         5,
		LuggageVolume: 300,
		Stock:         4,
	}
	require.NoError(t, repo.Insert(context.Background(), car))
	return car
}

var errStoreDown = errors.New("store unavailable")

// brokenRepo fails every call.
type brokenRepo struct{}

func (brokenRepo) List(ctx context.Context, sort interfaces.SortSpec) ([]*models.EconomyCar, error) {
	return nil, errStoreDown
}

func (brokenRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.EconomyCar, error) {
	return nil, errStoreDown
}

func (brokenRepo) FindByModel(ctx context.Context, model string) (*models.EconomyCar, error) {
	return nil, errStoreDown
}

func (brokenRepo) ExistsByModel(ctx context.Context, model string) (bool, error) {
	return false, errStoreDown
}

func (brokenRepo) Insert(ctx context.Context, car *models.EconomyCar) error {
	return errStoreDown
}

func (brokenRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, car *models.EconomyCar) (*models.EconomyCar, error) {
	return nil, errStoreDown
}

func (brokenRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return errStoreDown
}

func (brokenRepo) Count(ctx context.Context) (int64, error) {
	return 0, errStoreDown
}
