package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupReservationRouter() *gin.Engine {
	r := gin.Default()
	handler := NewHandler(nil, nil, nil)
	r.POST("/api/reservations", handler.CreateReservation)
	r.GET("/api/reservations/upcoming", handler.ListUpcomingReservations)
	return r
}

func TestCreateReservationRequiresCaller(t *testing.T) {
	router := setupReservationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/reservations", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"missing caller identity"}`, w.Body.String())
}

func TestCreateReservationRejectsBadBody(t *testing.T) {
	router := setupReservationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/reservations", strings.NewReader(`{"resource_id":"room-1"}`))
	req.Header.Set(CallerHeader, "user-a")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUpcomingRequiresCaller(t *testing.T) {
	router := setupReservationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reservations/upcoming", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
