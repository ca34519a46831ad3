package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gateway/models"
)

func TestReservationServiceList(t *testing.T) {
	t.Run("formats and sorts by arrival", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "mes", r.URL.Query().Get("periodo"))
			w.Write([]byte(`[
				{"_id":"late","fechaInicio":"2026-04-20T00:00:00.000Z","fechaFin":"2026-04-22T00:00:00.000Z","estado":"pendiente"},
				{"_id":"early","fechaInicio":"2026-04-01T00:00:00.000Z","fechaFin":"2026-04-03T00:00:00.000Z","estado":"confirmada"}
			]`))
		}))
		defer srv.Close()

		svc := NewReservationService(NewClient(srv.URL), nil, nil)
		reservations, err := svc.List(context.Background(), "mes")
		require.NoError(t, err)
		require.Len(t, reservations, 2)
		assert.Equal(t, "early", reservations[0].ID)
		assert.Equal(t, "2026-04-01", reservations[0].FechaInicio)
		assert.Equal(t, "2026-04-22", reservations[1].FechaFin)
	})

	t.Run("empty period defaults to todas", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "todas", r.URL.Query().Get("periodo"))
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := NewReservationService(NewClient(srv.URL), nil, nil).List(context.Background(), "")
		require.NoError(t, err)
	})

	t.Run("unknown period is rejected locally", func(t *testing.T) {
		svc := NewReservationService(NewClient("http://localhost:0"), nil, nil)
		_, err := svc.List(context.Background(), "década")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func validForm() models.ReservationForm {
	return models.ReservationForm{
		HabitacionID: "r1",
		UsuarioID:    "u1",
		FechaInicio:  "2026-05-01",
		FechaFin:     "2026-05-03",
		TipoPago:     models.PaymentCash,
		Estado:       models.ReservationPending,
	}
}

func TestReservationPayloadGuestIdentity(t *testing.T) {
	t.Run("registered user omits guest fields", func(t *testing.T) {
		form := validForm()
		form.NombreHuesped = "debería ignorarse"
		body := reservationPayload(form)
		assert.Equal(t, "u1", body["usuarioId"])
		_, hasGuest := body["nombreHuesped"]
		assert.False(t, hasGuest)
	})

	t.Run("public guest omits user id", func(t *testing.T) {
		form := validForm()
		form.UsuarioID = ""
		form.NombreHuesped = "Ana"
		form.EmailHuesped = "ana@example.com"
		body := reservationPayload(form)
		_, hasUser := body["usuarioId"]
		assert.False(t, hasUser)
		assert.Equal(t, "Ana", body["nombreHuesped"])
		assert.Equal(t, "ana@example.com", body["emailHuesped"])
	})
}

func TestReservationServiceCreateValidation(t *testing.T) {
	svc := NewReservationService(NewClient("http://localhost:0"), nil, nil)

	t.Run("checkout before arrival", func(t *testing.T) {
		form := validForm()
		form.FechaInicio = "2026-05-03"
		form.FechaFin = "2026-05-01"
		err := svc.Create(context.Background(), form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "La fecha de salida debe ser posterior a la de llegada.", verr.Message)
	})

	t.Run("no guest identity at all", func(t *testing.T) {
		form := validForm()
		form.UsuarioID = ""
		err := svc.Create(context.Background(), form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestReservationServiceUpdateStatus(t *testing.T) {
	statusServer := func(t *testing.T, list string) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				assert.Equal(t, "/api/reservas", r.URL.Path)
				w.Write([]byte(list))
			case http.MethodPut:
				assert.Equal(t, "/api/reservas/abc", r.URL.Path)
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Len(t, body, 1)
				w.Write([]byte(`{}`))
			}
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("confirms a pending reservation", func(t *testing.T) {
		srv := statusServer(t, `[{"_id":"abc","fechaInicio":"2026-05-01","fechaFin":"2026-05-03","estado":"pendiente"}]`)
		svc := NewReservationService(NewClient(srv.URL), nil, nil)
		require.NoError(t, svc.UpdateStatus(context.Background(), "abc", models.ReservationConfirmed))
	})

	t.Run("will not confirm a cancelled reservation", func(t *testing.T) {
		srv := statusServer(t, `[{"_id":"abc","fechaInicio":"2026-05-01","fechaFin":"2026-05-03","estado":"cancelada"}]`)
		svc := NewReservationService(NewClient(srv.URL), nil, nil)
		err := svc.UpdateStatus(context.Background(), "abc", models.ReservationConfirmed)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Solo una reserva pendiente puede confirmarse.", verr.Message)
	})

	t.Run("cancels from any state without a lookup", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"estado": "cancelada"}, body)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		svc := NewReservationService(NewClient(srv.URL), nil, nil)
		require.NoError(t, svc.UpdateStatus(context.Background(), "abc", models.ReservationCancelled))
	})

	t.Run("unknown reservation is rejected", func(t *testing.T) {
		srv := statusServer(t, `[]`)
		svc := NewReservationService(NewClient(srv.URL), nil, nil)
		err := svc.UpdateStatus(context.Background(), "abc", models.ReservationConfirmed)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Reserva no encontrada.", verr.Message)
	})

	t.Run("rejects transitions back to pending", func(t *testing.T) {
		svc := NewReservationService(NewClient("http://localhost:0"), nil, nil)
		err := svc.UpdateStatus(context.Background(), "abc", models.ReservationPending)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestReservationModalOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users-list":
			w.Write([]byte(`[{"_id":"u1","username":"admin","role":"admin"}]`))
		case "/api/habitaciones":
			w.Write([]byte(`[{"_id":"r1","numero":101,"tipo":"doble","precio":1200}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := NewClient(srv.URL)
	svc := NewReservationService(api, NewUserService(api), NewRoomService(api))
	opts, err := svc.ModalOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts.Users, 1)
	assert.Len(t, opts.Rooms, 1)
}
