package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gateway/models"
	"hotel-gateway/services"
)

func newEventRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	ctrl := NewEventController(services.NewEventService(services.NewClient(srv.URL)))
	r := gin.New()
	r.POST("/api/admin/eventos", ctrl.CreateEvent)
	return r
}

func TestCreateEvent(t *testing.T) {
	t.Run("missing starred field surfaces the specific message", func(t *testing.T) {
		r := newEventRouter(t, func(w http.ResponseWriter, req *http.Request) {
			t.Errorf("unexpected upstream call: %s", req.URL.Path)
		})

		rec, env := postJSON(t, r, "/api/admin/eventos", gin.H{
			"fechaEvento":      "2026-06-20",
			"horaInicio":       "16:00",
			"horaFin":          "23:00",
			"usoEspecifico":    "XV años",
			"limiteAsistentes": 80,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Todos los campos marcados con * son obligatorios.", env.Error)
	})

	t.Run("missing status defaults to pendiente", func(t *testing.T) {
		var posted models.EventForm
		r := newEventRouter(t, func(w http.ResponseWriter, req *http.Request) {
			switch req.Method {
			case http.MethodPost:
				require.NoError(t, json.NewDecoder(req.Body).Decode(&posted))
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{}`))
			case http.MethodGet:
				w.Write([]byte(`[]`))
			}
		})

		rec, _ := postJSON(t, r, "/api/admin/eventos", gin.H{
			"nombreCliente":    "Familia Torres",
			"fechaEvento":      "2026-06-20",
			"horaInicio":       "16:00",
			"horaFin":          "23:00",
			"usoEspecifico":    "XV años",
			"limiteAsistentes": 80,
			"monto":            15000,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, models.EventPending, posted.Estado)
	})
}
