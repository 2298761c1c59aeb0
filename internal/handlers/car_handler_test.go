package handlers_test

import (
	"context"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateEconomyCarEndToEnd(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	rec := app.postForm("/catalog/economyCar/create", corsaForm())
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/catalog/economyCar/"), location)

	id, err := primitive.ObjectIDFromHex(strings.TrimPrefix(location, "/catalog/economyCar/"))
	require.NoError(t, err)

	stored, err := app.economy.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Corsa", stored.Model)
	assert.Equal(t, "Vauxhall", stored.Manufacturer)
	assert.Equal(t, "Hatchback", stored.Type)
	assert.Equal(t, 5, stored.Seats)
	assert.Equal(t, 285, stored.LuggageVolume)
	assert.Equal(t, 15000.0, stored.Price)
	assert.Equal(t, 15, stored.Stock)

	again := app.postForm("/catalog/economyCar/create", corsaForm())
	require.Equal(t, http.StatusFound, again.Code)
	assert.Equal(t, location, again.Header().Get("Location"))

	count, err := app.economy.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateStoresEscapedTrimmedValues(t *testing.T) {
	app := newTestApp(t)

	form := jeskoForm()
	form.Set("manufacturer", "  Koenigsegg <AB>  ")
	rec := app.postForm("/catalog/luxuryCar/create", form)
	require.Equal(t, http.StatusFound, rec.Code)

	id, err := primitive.ObjectIDFromHex(strings.TrimPrefix(rec.Header().Get("Location"), "/catalog/luxuryCar/"))
	require.NoError(t, err)

	stored, err := app.luxury.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Koenigsegg &lt;AB&gt;", stored.Manufacturer)
	assert.Equal(t, "5.0 L V8", stored.Engine)
	assert.Equal(t, 1600, stored.Power)
}

func TestCreateInvalidRendersErrorsWithoutWriting(t *testing.T) {
	app := newTestApp(t)

	form := corsaForm()
	form.Set("model", "Ka")
	form.Set("price", "99")
	rec := app.postForm("/catalog/economyCar/create", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "economy car model must contain at least 3 characters")
	assert.Contains(t, body, "economy car price must contain at least 4 characters")
	assert.NotContains(t, body, "economy car stock")
	assert.Contains(t, body, `value="Vauxhall"`, "submitted values are echoed back")

	count, err := app.economy.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateRejectsNonNumericStock(t *testing.T) {
	app := newTestApp(t)

	form := jeskoForm()
	form.Set("stock", "lots")
	rec := app.postForm("/catalog/luxuryCar/create", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stock must be a whole number")

	count, err := app.luxury.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateRejectsOverflowingNumber(t *testing.T) {
	app := newTestApp(t)

	form := corsaForm()
	form.Set("luggageVolume", "99999999999999999999")
	rec := app.postForm("/catalog/economyCar/create", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<li>Luggage Volume must be a whole number</li>")
	assert.NotContains(t, body, "strconv")

	count, err := app.economy.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateForm(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/catalog/luxuryCar/create")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Add Luxury Car</title>")
	assert.Contains(t, body, `name="engine"`)
	assert.NotContains(t, body, `name="seats"`)
}

func TestDetail(t *testing.T) {
	app := newTestApp(t)
	car := seedEconomyCar(t, app.economy, "Astra", 20000)

	rec := app.get(car.URL())
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Vauxhall Astra</title>")
	assert.Contains(t, body, "20000")
	assert.Contains(t, body, car.URL()+"/update")
}

func TestDetailNotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/catalog/economyCar/" + primitive.NewObjectID().Hex(),
		"/catalog/economyCar/not-an-id",
		"/catalog/luxuryCar/" + primitive.NewObjectID().Hex(),
	} {
		rec := app.get(path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Car not found", path)
	}
}

func TestListSortedByPrice(t *testing.T) {
	app := newTestApp(t)
	seedEconomyCar(t, app.economy, "Golf", 22000)
	seedEconomyCar(t, app.economy, "Corsa", 15000)
	seedEconomyCar(t, app.economy, "Polo", 18000)

	rec := app.get("/catalog/economyCar")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	corsa := strings.Index(body, "Vauxhall Corsa")
	polo := strings.Index(body, "Vauxhall Polo")
	golf := strings.Index(body, "Vauxhall Golf")
	require.True(t, corsa > 0 && polo > 0 && golf > 0)
	assert.Less(t, corsa, polo)
	assert.Less(t, polo, golf)
}

func TestListEmpty(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/catalog/luxuryCar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "There are no Luxury Cars in stock.")
}

func TestDeleteForm(t *testing.T) {
	app := newTestApp(t)
	car := seedEconomyCar(t, app.economy, "Clio", 17000)

	rec := app.get(car.URL() + "/delete")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="economyCarid"`)
	assert.Contains(t, body, `value="`+car.ID.Hex()+`"`)
}

func TestDeleteFormMissingCarRedirectsToList(t *testing.T) {
	app := newTestApp(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "bogus"} {
		rec := app.get("/catalog/economyCar/" + id + "/delete")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/catalog/economyCar", rec.Header().Get("Location"))
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	car := seedEconomyCar(t, app.economy, "Clio", 17000)

	rec := app.postForm(car.URL()+"/delete", url.Values{"economyCarid": {car.ID.Hex()}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog/economyCar", rec.Header().Get("Location"))

	_, err := app.economy.GetByID(ctx, car.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	for _, id := range []string{car.ID.Hex(), primitive.NewObjectID().Hex(), "", "garbage"} {
		rec := app.postForm(car.URL()+"/delete", url.Values{"economyCarid": {id}})
		assert.Equal(t, http.StatusFound, rec.Code, id)
		assert.Equal(t, "/catalog/economyCar", rec.Header().Get("Location"), id)
	}
}

func TestDeleteUsesBodyID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	keep := seedEconomyCar(t, app.economy, "Megane", 21000)
	remove := seedEconomyCar(t, app.economy, "Fiesta", 16000)

	rec := app.postForm(keep.URL()+"/delete", url.Values{"economyCarid": {remove.ID.Hex()}})
	require.Equal(t, http.StatusFound, rec.Code)

	_, err := app.economy.GetByID(ctx, keep.ID)
	assert.NoError(t, err)
	_, err = app.economy.GetByID(ctx, remove.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestUpdateForm(t *testing.T) {
	app := newTestApp(t)
	car := seedEconomyCar(t, app.economy, "Focus", 20000)

	rec := app.get(car.URL() + "/update")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Update Economy Car</title>")
	assert.Contains(t, body, `value="Focus"`)
	assert.Contains(t, body, `value="20000"`)

	missing := app.get("/catalog/economyCar/" + primitive.NewObjectID().Hex() + "/update")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestUpdateReplacesRecord(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	car := seedEconomyCar(t, app.economy, "Focus", 20000)

	form := corsaForm()
	form.Set("model", "Focus")
	form.Set("manufacturer", "Ford")
	form.Set("type", "Sedan")
	form.Set("price", "19500")
	rec := app.postForm(car.URL()+"/update", form)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, car.URL(), rec.Header().Get("Location"))

	stored, err := app.economy.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ford", stored.Manufacturer)
	assert.Equal(t, "Sedan", stored.Type)
	assert.Equal(t, 19500.0, stored.Price)
	assert.Equal(t, 15, stored.Stock)
}

var formInput = regexp.MustCompile(`name="(\w+)" type="\w+" value="([^"]*)"`)

// renderedForm reads the input values back the way a browser submits them.
func renderedForm(body string) url.Values {
	form := url.Values{}
	for _, m := range formInput.FindAllStringSubmatch(body, -1) {
		form.Set(m[1], html.UnescapeString(m[2]))
	}
	return form
}

func TestUpdateFormResubmitKeepsStoredText(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	form := corsaForm()
	form.Set("manufacturer", "Ford & Sons")
	rec := app.postForm("/catalog/economyCar/create", form)
	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")

	id, err := primitive.ObjectIDFromHex(strings.TrimPrefix(location, "/catalog/economyCar/"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		page := app.get(location + "/update")
		require.Equal(t, http.StatusOK, page.Code)
		values := renderedForm(page.Body.String())
		require.Equal(t, "Ford & Sons", values.Get("manufacturer"))

		saved := app.postForm(location+"/update", values)
		require.Equal(t, http.StatusFound, saved.Code)

		stored, err := app.economy.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Ford &amp; Sons", stored.Manufacturer)
		assert.Equal(t, 285, stored.LuggageVolume)
	}
}

func TestCreateInvalidRefillsUnescapedText(t *testing.T) {
	app := newTestApp(t)

	form := corsaForm()
	form.Set("manufacturer", "Ford & Sons")
	form.Set("price", "99")
	rec := app.postForm("/catalog/economyCar/create", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ford & Sons", renderedForm(rec.Body.String()).Get("manufacturer"))
	assert.NotContains(t, rec.Body.String(), "&amp;amp;")
}

func TestUpdateInvalidDoesNotWrite(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	car := seedEconomyCar(t, app.economy, "Focus", 20000)

	form := corsaForm()
	form.Set("seats", "12")
	rec := app.postForm(car.URL()+"/update", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "economy car seats must contain only 1 character")

	stored, err := app.economy.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Focus", stored.Model)
}

func TestUpdateMissingCar(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/catalog/economyCar/"+primitive.NewObjectID().Hex()+"/update", corsaForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.postForm("/catalog/economyCar/nope/update", corsaForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndexCounts(t *testing.T) {
	app := newTestApp(t)
	seedEconomyCar(t, app.economy, "Corsa", 15000)
	seedEconomyCar(t, app.economy, "Astra", 20000)
	require.Equal(t, http.StatusFound, app.postForm("/catalog/luxuryCar/create", jeskoForm()).Code)

	rec := app.get("/catalog")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Showroom Inventory Home</title>")
	assert.Contains(t, body, "<strong>Economy Cars:</strong> 2")
	assert.Contains(t, body, "<strong>Luxury Cars:</strong> 1")
	assert.Contains(t, body, "<strong>Total Cars:</strong> 3")
}

func TestRootRedirectsToCatalog(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestStoreFailuresRenderServerError(t *testing.T) {
	app := newTestAppWith(t, brokenRepo{}, memory.NewLuxuryCarRepository())
	id := primitive.NewObjectID().Hex()

	assert.Equal(t, http.StatusInternalServerError, app.get("/catalog").Code)
	assert.Equal(t, http.StatusInternalServerError, app.get("/catalog/economyCar").Code)
	assert.Equal(t, http.StatusInternalServerError, app.get("/catalog/economyCar/"+id).Code)
	assert.Equal(t, http.StatusInternalServerError, app.postForm("/catalog/economyCar/create", corsaForm()).Code)
	assert.Equal(t, http.StatusInternalServerError, app.postForm("/catalog/economyCar/"+id+"/delete", url.Values{"economyCarid": {id}}).Code)
}
