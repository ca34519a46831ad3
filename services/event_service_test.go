package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gateway/models"
)

func validEventForm() models.EventForm {
	return models.EventForm{
		NombreCliente:    "Familia Torres",
		FechaEvento:      "2026-06-20",
		HoraInicio:       "16:00",
		HoraFin:          "23:00",
		UsoEspecifico:    "XV años",
		LimiteAsistentes: 80,
		AreaRentada:      "Salón principal",
		Monto:            15000,
		Estado:           models.EventPending,
	}
}

func TestEventServiceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/eventos", r.URL.Path)
		w.Write([]byte(`[
			{"_id":"b","nombreCliente":"B","fechaEvento":"2026-07-10T00:00:00.000Z","estado":"confirmado"},
			{"_id":"a","nombreCliente":"A","fechaEvento":"2026-06-01T00:00:00.000Z","estado":"pendiente"}
		]`))
	}))
	defer srv.Close()

	events, err := NewEventService(NewClient(srv.URL)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "2026-06-01", events[0].FechaEvento)
}

func TestEventServiceValidation(t *testing.T) {
	svc := NewEventService(NewClient("http://localhost:0"))

	t.Run("missing required fields", func(t *testing.T) {
		form := validEventForm()
		form.NombreCliente = ""
		err := svc.Create(context.Background(), form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Todos los campos marcados con * son obligatorios.", verr.Message)
	})

	t.Run("negative amount", func(t *testing.T) {
		form := validEventForm()
		form.Monto = -500
		err := svc.Create(context.Background(), form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "El monto no puede ser negativo.", verr.Message)
	})

	t.Run("non positive attendee limit", func(t *testing.T) {
		form := validEventForm()
		form.LimiteAsistentes = -2
		err := svc.Update(context.Background(), "e1", form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "El límite de asistentes debe ser un número positivo.", verr.Message)
	})
}

func TestEventServiceCreateDefaultsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form models.EventForm
		require.NoError(t, jsonDecode(r, &form))
		assert.Equal(t, models.EventPending, form.Estado)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	form := validEventForm()
	form.Estado = ""
	require.NoError(t, NewEventService(NewClient(srv.URL)).Create(context.Background(), form))
}
