package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"train-ticket-booking/internal/notification"
	"train-ticket-booking/internal/queue"
	"train-ticket-booking/internal/repository"
	"train-ticket-booking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// full stack on in-memory stores, no mocks
func setupBookingFlowRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	trainRepo := repository.NewMemoryTrainRepository()
	bookingRepo := repository.NewMemoryBookingRepository()
	notificationQueue := queue.NewNotificationQueue(16)
	dispatcher := notification.NewReminderDispatcher(notificationQueue, 30*time.Minute)

	NewTrainHandler(service.NewTrainService(trainRepo)).RegisterRoutes(router)
	NewBookingHandler(service.NewBookingService(trainRepo, bookingRepo, dispatcher)).RegisterRoutes(router)

	return router
}

func TestBookingFlow(t *testing.T) {
	router := setupBookingFlowRouter()

	do := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// add train Express with 2 seats
	w := do(createJSONHTTPRequest("POST", "/trains", map[string]interface{}{
		"name":           "Express",
		"seats":          2,
		"departure_time": "2030-01-01T10:00:00",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	train := decodeBody(t, w.Body)["train"].(map[string]interface{})
	assert.Equal(t, float64(1), train["train_id"])
	assert.Equal(t, float64(2), train["available_seats"])

	// Alice books one seat
	w = do(createJSONHTTPRequest("POST", "/book", map[string]interface{}{
		"train_id":       1,
		"passenger_name": "Alice",
		"email":          "a@x.com",
		"seats":          1,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	booking := decodeBody(t, w.Body)["booking"].(map[string]interface{})
	assert.Equal(t, float64(1), booking["booking_id"])
	assert.Equal(t, float64(1), booking["seat_number"])
	assert.Equal(t, "Express", booking["train_name"])

	// availability is down to 1
	w = do(httptest.NewRequest("GET", "/trains", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var trains []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trains))
	assert.Equal(t, float64(1), trains[0]["available_seats"])

	// two seats no longer fit
	w = do(createJSONHTTPRequest("POST", "/book", map[string]interface{}{
		"train_id":       1,
		"passenger_name": "Bob",
		"email":          "b@x.com",
		"seats":          2,
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Not enough seats available", decodeBody(t, w.Body)["error"])

	// rejection left availability untouched
	w = do(httptest.NewRequest("GET", "/trains", nil))
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trains))
	assert.Equal(t, float64(1), trains[0]["available_seats"])

	// the last seat still books
	w = do(createJSONHTTPRequest("POST", "/book", map[string]interface{}{
		"train_id":       1,
		"passenger_name": "Bob",
		"email":          "b@x.com",
		"seats":          1,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	booking = decodeBody(t, w.Body)["booking"].(map[string]interface{})
	assert.Equal(t, float64(2), booking["booking_id"])
	assert.Equal(t, float64(2), booking["seat_number"])

	w = do(httptest.NewRequest("GET", "/trains", nil))
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trains))
	assert.Equal(t, float64(0), trains[0]["available_seats"])

	// booking on an unknown train
	w = do(createJSONHTTPRequest("POST", "/book", map[string]interface{}{
		"train_id":       42,
		"passenger_name": "Eve",
		"email":          "e@x.com",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Train not found", decodeBody(t, w.Body)["error"])

	// ledger holds both bookings in order
	w = do(httptest.NewRequest("GET", "/bookings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var bookings []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 2)
	assert.Equal(t, "Alice", bookings[0]["passenger_name"])

	// lookup by id
	w = do(httptest.NewRequest("GET", "/booking/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decodeBody(t, w.Body)["passenger_name"])

	w = do(httptest.NewRequest("GET", "/booking/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w.Body)["error"])
}
