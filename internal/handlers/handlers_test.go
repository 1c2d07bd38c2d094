package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	"github.com/frenetico9/Corte-Digital/internal/config"
	"github.com/frenetico9/Corte-Digital/internal/dto"
	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/infra/cache"
	"github.com/frenetico9/Corte-Digital/internal/infra/repository/repositorytest"
	"github.com/frenetico9/Corte-Digital/internal/metrics"
	"github.com/frenetico9/Corte-Digital/internal/middleware"
	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/usecase/appointment"
)

// Terça-feira distante, para o corte de "agora" não interferir.
const futureTuesday = "2099-03-10"

type discardAudit struct{}

func (discardAudit) Write(context.Context, audit.Event) error { return nil }

func seededRepo() *repositorytest.MemoryRepository {
	cut := models.Service{ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 30, Price: 40, Active: true}
	beard := models.Service{ID: 11, BarbershopID: 1, Name: "Barba", DurationMin: 15, Price: 25, Active: true}

	r := repositorytest.NewMemoryRepository()
	r.Shops[1] = models.Barbershop{ID: 1, Name: "Navalha", Slug: "navalha", Timezone: "America/Sao_Paulo"}
	r.Hours[1] = models.DefaultWorkingHours(1)
	r.Services = []models.Service{cut, beard}
	r.Barbers = []models.Barber{
		{
			ID: 1, BarbershopID: 1, Name: "Zé",
			Availability: []models.BarberAvailability{{Weekday: 2, StartTime: "09:00", EndTime: "12:00"}},
			Services:     []models.Service{cut, beard},
		},
		{
			ID: 2, BarbershopID: 1, Name: "Léo",
			Availability: []models.BarberAvailability{{Weekday: 2, StartTime: "14:00", EndTime: "16:00"}},
			Services:     []models.Service{cut},
		},
	}
	return r
}

type testServer struct {
	repo   *repositorytest.MemoryRepository
	router *gin.Engine
	auth   *AuthHandler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	repo := seededRepo()
	m := metrics.Nop()
	slots := cache.Noop{}
	settings := appointment.DefaultSettings()

	dispatcher := audit.NewDispatcher(discardAudit{}, log)
	t.Cleanup(dispatcher.Close)

	availability := appointment.NewGetAvailability(repo, slots, m, log, settings)
	create := appointment.NewCreateAppointment(repo, slots, dispatcher, m, log, settings)

	public := NewPublicHandler(nil, repo, availability, create)
	private := NewAppointmentHandler(
		create,
		appointment.NewListAppointmentsByDate(repo),
		appointment.NewListAppointmentsByMonth(repo),
		appointment.NewCancelAppointment(repo, slots, dispatcher, log),
		appointment.NewCompleteAppointment(repo, slots, dispatcher, log),
		availability,
	)

	cfg := &config.Config{JWTSecret: "test-secret"}
	auth := NewAuthHandler(nil, cfg, log)

	r := gin.New()
	pub := r.Group("/public/:slug")
	pub.GET("", public.Profile)
	pub.GET("/barbers", public.ListBarbers)
	pub.GET("/availability", public.Availability)
	pub.POST("/appointments", public.CreateAppointment)

	me := r.Group("/me", middleware.AuthMiddleware(cfg.JWTSecret))
	me.GET("/availability", private.Availability)
	me.GET("/appointments", private.ListByDate)
	me.GET("/appointments/month", private.ListByMonth)
	me.PATCH("/appointments/:id/cancel", private.Cancel)

	return &testServer{repo: repo, router: r, auth: auth}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ======================================================
// Público
// ======================================================

func TestPublicAvailability(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/public/navalha/availability?date="+futureTuesday+"&service_ids=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.AvailabilityResponse](t, w)
	assert.Equal(t, futureTuesday, resp.Date)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30",
	}, resp.Slots)

	w = s.do(t, http.MethodGet, "/public/navalha/availability?date="+futureTuesday+"&duration=45&barber_id=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp = decode[dto.AvailabilityResponse](t, w)
	assert.Equal(t, []string{"14:00", "14:30", "15:00"}, resp.Slots)
	require.NotNil(t, resp.BarberID)
	assert.Equal(t, uint(2), *resp.BarberID)
}

func TestPublicAvailability_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{name: "missing date", path: "/public/navalha/availability?duration=30", status: http.StatusBadRequest, code: "missing_date"},
		{name: "bad date", path: "/public/navalha/availability?date=10/03/2099&duration=30", status: http.StatusBadRequest, code: "invalid_date"},
		{name: "no duration", path: "/public/navalha/availability?date=" + futureTuesday, status: http.StatusBadRequest, code: "invalid_duration_minutes"},
		{name: "zero duration", path: "/public/navalha/availability?date=" + futureTuesday + "&duration=0", status: http.StatusBadRequest, code: "invalid_duration_minutes"},
		{name: "huge duration", path: "/public/navalha/availability?date=" + futureTuesday + "&duration=9223372036854775807", status: http.StatusBadRequest, code: "invalid_duration_minutes"},
		{name: "unknown service", path: "/public/navalha/availability?date=" + futureTuesday + "&service_ids=99", status: http.StatusNotFound, code: "service_not_found"},
		{name: "unknown shop", path: "/public/nenhuma/availability?date=" + futureTuesday + "&duration=30", status: http.StatusNotFound, code: "barbershop_not_found"},
		{name: "unknown barber", path: "/public/navalha/availability?date=" + futureTuesday + "&duration=30&barber_id=77", status: http.StatusNotFound, code: "barber_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, tt.path, nil, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[httperr.HTTPError](t, w).Code)
		})
	}
}

func TestPublicBarbers_FilterByService(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/public/navalha/barbers?service_id=11", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	barbers := decode[[]publicBarber](t, w)
	require.Len(t, barbers, 1)
	assert.Equal(t, "Zé", barbers[0].Name)
}

func TestPublicProfile(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/public/navalha", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	shop := decode[models.Barbershop](t, w)
	assert.Equal(t, "Navalha", shop.Name)
	assert.Len(t, shop.WorkingHours, 7)
}

func TestPublicCreateAppointment(t *testing.T) {
	s := newTestServer(t)

	req := PublicCreateAppointmentRequest{
		ClientName:  "Ana",
		ClientPhone: "11999990000",
		ServiceIDs:  []uint{10},
		BarberID:    ptr(1),
		Date:        futureTuesday,
		Time:        "10:00",
	}

	w := s.do(t, http.MethodPost, "/public/navalha/appointments", req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, s.repo.AppointmentCount())

	// o mesmo barbeiro não atende duas vezes no mesmo horário
	w = s.do(t, http.MethodPost, "/public/navalha/appointments", req, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_unavailable", decode[httperr.HTTPError](t, w).Code)
	assert.Equal(t, 1, s.repo.AppointmentCount())

	w = s.do(t, http.MethodGet, "/public/navalha/availability?date="+futureTuesday+"&service_ids=10&barber_id=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode[dto.AvailabilityResponse](t, w).Slots, "10:00")
}

func TestPublicCreateAppointment_Rejections(t *testing.T) {
	s := newTestServer(t)

	notOffered := PublicCreateAppointmentRequest{
		ClientName:  "Ana",
		ClientPhone: "11999990000",
		ServiceIDs:  []uint{11},
		BarberID:    ptr(2),
		Date:        futureTuesday,
		Time:        "14:00",
	}
	w := s.do(t, http.MethodPost, "/public/navalha/appointments", notOffered, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "barber_not_assigned", decode[httperr.HTTPError](t, w).Code)

	closed := notOffered
	closed.ServiceIDs = []uint{10}
	closed.Time = "13:00"
	w = s.do(t, http.MethodPost, "/public/navalha/appointments", closed, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/public/navalha/appointments", map[string]any{"client_name": "Ana"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[httperr.HTTPError](t, w).Code)

	assert.Zero(t, s.repo.AppointmentCount())
}

// ======================================================
// Área logada
// ======================================================

func TestPrivateRoutes_TokenRoundTrip(t *testing.T) {
	s := newTestServer(t)

	token, err := s.auth.generateToken(&models.User{ID: 5, BarbershopID: 1, Role: "owner"})
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/me/availability?date="+futureTuesday+"&duration=30&barber_id=1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.AvailabilityResponse](t, w).Slots, 6)

	w = s.do(t, http.MethodGet, "/me/availability?date="+futureTuesday+"&duration=30", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrivateAppointments_ListAndCancel(t *testing.T) {
	s := newTestServer(t)

	token, err := s.auth.generateToken(&models.User{ID: 5, BarbershopID: 1, Role: "owner"})
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/public/navalha/appointments", PublicCreateAppointmentRequest{
		ClientName:  "Ana",
		ClientPhone: "11999990000",
		ServiceIDs:  []uint{10, 11},
		Date:        futureTuesday,
		Time:        "09:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Appointment](t, w)
	assert.Equal(t, 45, created.DurationMin)

	w = s.do(t, http.MethodGet, "/me/appointments?date="+futureTuesday, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.AppointmentListDTO](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].ClientName)

	w = s.do(t, http.MethodGet, "/me/appointments/month?year=2099&month=13", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/me/appointments/abc/cancel", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/me/appointments/"+jsonNumber(created.ID)+"/cancel", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPatch, "/me/appointments/"+jsonNumber(created.ID)+"/cancel", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[httperr.HTTPError](t, w).Code)
}

func ptr(v uint) *uint { return &v }

func jsonNumber(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
