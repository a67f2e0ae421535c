package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travelguide/internal/api/controllers"
	"travelguide/internal/repositories/repotest"
	"travelguide/internal/seed"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
	mem "travelguide/pkg/memcache"
	"travelguide/pkg/middleware"
	"travelguide/pkg/utils"
)

type envelope struct {
	Status    string             `json:"status"`
	Code      int                `json:"code"`
	ErrorCode string             `json:"error_code"`
	Message   string             `json:"message"`
	TraceID   string             `json:"trace_id"`
	Fields    []utils.FieldError `json:"fields"`
	Data      json.RawMessage    `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	store  *repotest.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repotest.NewStore()
	clk := clock.NewFakeClock(time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC))
	issuer := utils.NewTokenIssuer("router-test-secret", time.Hour, clk)
	revoked := mem.NewRevokedTokens(clk)
	catalog, err := seed.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	h := Handlers{
		Destinations: controllers.NewDestinationController(services.NewDestinationService(store.DestinationRepo())),
		Experiences:  controllers.NewExperienceController(services.NewExperienceService(store.ExperienceRepo(), store.DestinationRepo(), clk)),
		Trips:        controllers.NewTripController(services.NewTripService(store.TripRepo(), store.DestinationRepo(), store.ExperienceRepo(), clk)),
		Accounts:     controllers.NewAccountController(services.NewAccountService(store.AccountRepo(), issuer, revoked)),
		System:       controllers.NewSystemController(services.NewSeedService(store.SeedRepo(), catalog, clk, false)),
	}
	engine := NewRouter(Options{Auth: middleware.JWTAuthMiddleware(issuer, revoked)}, h)
	return &testServer{t: t, engine: engine, store: store}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func (s *testServer) decode(env envelope, out interface{}) {
	s.t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		s.t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func (s *testServer) login(name, email string) string {
	s.t.Helper()
	code, _ := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": name, "email": email, "password": "secret123"})
	if code != http.StatusCreated {
		s.t.Fatalf("register %s: status %d", email, code)
	}
	code, env := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "secret123"})
	if code != http.StatusOK {
		s.t.Fatalf("login %s: status %d", email, code)
	}
	var out struct {
		Token string `json:"token"`
	}
	s.decode(env, &out)
	return out.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/health", "", nil)
	if code != http.StatusOK || env.Status != "success" {
		t.Fatalf("health: %d %+v", code, env)
	}
	if env.TraceID == "" {
		t.Errorf("responses should carry a trace id")
	}
}

func TestSeedThenBrowseCatalog(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/seed", "", nil)
	if code != http.StatusOK {
		t.Fatalf("seed: %d %s", code, env.Message)
	}

	code, env = s.do(http.MethodGet, "/api/destinations?limit=5", "", nil)
	if code != http.StatusOK {
		t.Fatalf("list destinations: %d", code)
	}
	var ds []struct {
		ID     string  `json:"id"`
		Rating float64 `json:"rating"`
	}
	s.decode(env, &ds)
	if len(ds) != 5 {
		t.Fatalf("limit=5 returned %d", len(ds))
	}
	for i := 1; i < len(ds); i++ {
		if ds[i].Rating > ds[i-1].Rating {
			t.Fatalf("destinations not sorted by rating: %+v", ds)
		}
	}

	code, env = s.do(http.MethodGet, "/api/destinations?limit=abc", "", nil)
	if code != http.StatusBadRequest || env.ErrorCode != utils.CodeValidation {
		t.Fatalf("bad limit: %d %+v", code, env)
	}

	code, env = s.do(http.MethodGet, "/api/experiences?destination="+ds[0].ID, "", nil)
	if code != http.StatusOK {
		t.Fatalf("list experiences: %d", code)
	}
	var xs []struct {
		Destination struct {
			ID string `json:"id"`
		} `json:"destination"`
	}
	s.decode(env, &xs)
	for _, x := range xs {
		if x.Destination.ID != ds[0].ID {
			t.Fatalf("filter leaked another destination: %+v", x)
		}
	}

	code, env = s.do(http.MethodGet, "/api/destinations/not-a-uuid", "", nil)
	if code != http.StatusNotFound || env.ErrorCode != utils.CodeNotFound {
		t.Fatalf("malformed id: %d %+v", code, env)
	}
}

func TestCreateDestinationValidation(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/destinations", "", map[string]interface{}{
		"name": "Nowhere", "category": "space",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	fields := map[string]bool{}
	for _, f := range env.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"country", "city", "description", "category", "priceRange"} {
		if !fields[want] {
			t.Errorf("missing field error for %s: %+v", want, env.Fields)
		}
	}
}

func TestTripsRequireAuth(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/trips", "", nil)
	if code != http.StatusUnauthorized || env.ErrorCode != utils.CodeUnauthorized {
		t.Fatalf("no token: %d %+v", code, env)
	}
	code, _ = s.do(http.MethodGet, "/api/trips", "garbage", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", code)
	}
}

func TestTripLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login("Ada", "ada@example.com")

	code, env := s.do(http.MethodPost, "/api/destinations", "", map[string]interface{}{
		"name": "Paris", "country": "France", "city": "Paris", "description": "Lights",
		"category": "culture", "priceRange": "luxury",
	})
	if code != http.StatusCreated {
		t.Fatalf("create destination: %d %+v", code, env)
	}
	var dest struct {
		ID string `json:"id"`
	}
	s.decode(env, &dest)

	code, env = s.do(http.MethodPost, "/api/experiences", "", map[string]interface{}{
		"title": "Louvre", "destination": dest.ID, "type": "attraction", "description": "Art",
	})
	if code != http.StatusCreated {
		t.Fatalf("create experience: %d %+v", code, env)
	}
	var exp struct {
		ID string `json:"id"`
	}
	s.decode(env, &exp)

	code, env = s.do(http.MethodPost, "/api/trips", token, map[string]interface{}{"title": "Europe", "user": "someone-else"})
	if code != http.StatusCreated {
		t.Fatalf("create trip: %d %+v", code, env)
	}
	var trip struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		UpdatedAt    string `json:"updatedAt"`
		Destinations []struct {
			ID          string `json:"id"`
			Destination *struct {
				Name string `json:"name"`
			} `json:"destination"`
			Experiences []struct {
				Title string `json:"title"`
			} `json:"experiences"`
		} `json:"destinations"`
	}
	s.decode(env, &trip)
	if trip.Status != "planning" {
		t.Errorf("status = %q", trip.Status)
	}
	base := "/api/trips/" + trip.ID

	code, env = s.do(http.MethodPost, base+"/destinations", token, map[string]interface{}{"destination": dest.ID, "startDate": "2026-09-01"})
	if code != http.StatusOK {
		t.Fatalf("add destination: %d %+v", code, env)
	}
	code, env = s.do(http.MethodPost, base+"/destinations/0/experiences", token, map[string]string{"experienceId": exp.ID})
	if code != http.StatusOK {
		t.Fatalf("add experience: %d %+v", code, env)
	}
	s.decode(env, &trip)
	if len(trip.Destinations) != 1 || trip.Destinations[0].Destination == nil || trip.Destinations[0].Destination.Name != "Paris" {
		t.Fatalf("destination not resolved: %+v", trip.Destinations)
	}
	if len(trip.Destinations[0].Experiences) != 1 || trip.Destinations[0].Experiences[0].Title != "Louvre" {
		t.Fatalf("experience not resolved: %+v", trip.Destinations[0].Experiences)
	}

	code, env = s.do(http.MethodDelete, base+"/destinations/5", token, nil)
	if code != http.StatusBadRequest || env.ErrorCode != utils.CodeValidation {
		t.Fatalf("out of range: %d %+v", code, env)
	}
	code, env = s.do(http.MethodDelete, base+"/destinations/x", token, nil)
	if code != http.StatusBadRequest || len(env.Fields) != 1 || env.Fields[0].Field != "destinationIndex" {
		t.Fatalf("non-integer index: %d %+v", code, env)
	}

	entry := trip.Destinations[0].ID
	code, env = s.do(http.MethodDelete, fmt.Sprintf("%s/entries/%s/experiences/%s", base, entry, exp.ID), token, nil)
	if code != http.StatusOK {
		t.Fatalf("remove experience by id: %d %+v", code, env)
	}
	code, env = s.do(http.MethodDelete, fmt.Sprintf("%s/entries/%s", base, entry), token, nil)
	if code != http.StatusOK {
		t.Fatalf("remove entry by id: %d %+v", code, env)
	}
	s.decode(env, &trip)
	if len(trip.Destinations) != 0 {
		t.Fatalf("entry still present: %+v", trip.Destinations)
	}

	other := s.login("Eve", "eve@example.com")
	code, env = s.do(http.MethodGet, base, other, nil)
	if code != http.StatusNotFound {
		t.Fatalf("another user read the trip: %d %+v", code, env)
	}
	code, _ = s.do(http.MethodDelete, base, other, nil)
	if code != http.StatusNotFound {
		t.Fatalf("another user deleted the trip: %d", code)
	}

	code, _ = s.do(http.MethodDelete, base, token, nil)
	if code != http.StatusOK {
		t.Fatalf("delete: %d", code)
	}
	code, _ = s.do(http.MethodGet, base, token, nil)
	if code != http.StatusNotFound {
		t.Fatalf("deleted trip still readable: %d", code)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login("Ada", "ada@example.com")

	code, _ := s.do(http.MethodGet, "/api/auth/me", token, nil)
	if code != http.StatusOK {
		t.Fatalf("me: %d", code)
	}
	code, _ = s.do(http.MethodPost, "/api/auth/logout", token, nil)
	if code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
	code, env := s.do(http.MethodGet, "/api/auth/me", token, nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("revoked token still accepted: %d %+v", code, env)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.login("Ada", "ada@example.com")

	code, env := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ada@example.com", "password": "nope-nope"})
	if code != http.StatusUnauthorized || env.ErrorCode != utils.CodeUnauthorized {
		t.Fatalf("wrong password: %d %+v", code, env)
	}

	code, env = s.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret123"})
	if code != http.StatusConflict || env.ErrorCode != utils.CodeConflict {
		t.Fatalf("duplicate register: %d %+v", code, env)
	}
}
