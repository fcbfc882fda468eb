package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "harrylist/internal/config"
	api "harrylist/internal/http"
	"harrylist/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, env intconfig.Env) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	intconfig.DB = db

	if env.JWTSecret == "" {
		env.JWTSecret = "test-secret"
	}
	handlers.Configure(env, nil)
	return api.NewRouter(env), mock
}

func staffToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "staff",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func TestSubmitReservationReturnsConfirmation(t *testing.T) {
	r, mock := newTestRouter(t, intconfig.Env{})
	mock.ExpectExec("INSERT INTO reservation").
		WillReturnResult(sqlmock.NewResult(1, 1))

	payload := `{
		"contactName": "Eva Janssen",
		"email": "eva@example.org",
		"eventTitle": "Board Game Night",
		"eventType": "ACTIVITY",
		"organizerType": "ASSOCIATION",
		"expectedGuests": 25,
		"eventDate": "2026-09-12",
		"startTime": "19:00",
		"endTime": "23:00",
		"location": "HUBBLE",
		"paymentOption": "INDIVIDUAL"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/reservations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ConfirmationNumber string `json:"confirmationNumber"`
		Email              string `json:"email"`
		Message            string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.ConfirmationNumber) != 6 {
		t.Fatalf("confirmation number %q has wrong length", resp.ConfirmationNumber)
	}
	if !strings.Contains(resp.Message, "eva@example.org") {
		t.Fatalf("message should embed the contact email: %q", resp.Message)
	}
}

func TestSubmitReservationRejectsMissingFields(t *testing.T) {
	r, _ := newTestRouter(t, intconfig.Env{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/reservations",
		strings.NewReader(`{"contactName":"Eva"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStaffRoutesRequireToken(t *testing.T) {
	r, mock := newTestRouter(t, intconfig.Env{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	mock.ExpectQuery("SELECT(.|\\s)+FROM reservation ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken(t, "test-secret"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("empty store should serialize as [], got %s", w.Body.String())
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	env := intconfig.Env{
		JWTSecret:         "test-secret",
		StaffUsername:     "staff",
		StaffPasswordHash: string(hash),
	}
	r, _ := newTestRouter(t, env)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"staff","password":"opensesame"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("expected a token in response: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"staff","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestCalendarFeedTokenGating(t *testing.T) {
	env := intconfig.Env{FeedToken: "pub-token"}
	r, mock := newTestRouter(t, env)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/feed.ics", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	mock.ExpectQuery("SELECT(.|\\s)+FROM reservation ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/feed.ics?token=pub-token", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Fatalf("body is not an ICS document")
	}

	// Staff feed refuses to serve without a configured token.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/staff-feed.ics?token=pub-token", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for unconfigured staff feed, got %d", w.Code)
	}
}

func TestCalendarFeedRejectsBadStatusFilter(t *testing.T) {
	r, _ := newTestRouter(t, intconfig.Env{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/feed.ics?status=MAYBE", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status filter, got %d", w.Code)
	}
}

func TestOptionsEndpointShape(t *testing.T) {
	r, _ := newTestRouter(t, intconfig.Env{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/options/all", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string][]struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"eventTypes", "organizerTypes", "paymentOptions", "locations", "dietaryPreferences"} {
		if len(resp[key]) == 0 {
			t.Fatalf("options payload missing %q", key)
		}
		if resp[key][0].Value == "" || resp[key][0].Label == "" {
			t.Fatalf("option entries under %q must carry value and label", key)
		}
	}
	if resp["locations"][0].Label != "Hubble Community Café" {
		t.Fatalf("unexpected first location label %q", resp["locations"][0].Label)
	}
}

func TestAdminCalendarFeedsEmbedTokens(t *testing.T) {
	env := intconfig.Env{
		JWTSecret:      "test-secret",
		FeedToken:      "pub-token",
		StaffFeedToken: "staff-token",
	}
	r, _ := newTestRouter(t, env)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar/feeds", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken(t, "test-secret"))
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "reservations.example.org")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "https://reservations.example.org/api/calendar/feed.ics?token=pub-token") {
		t.Fatalf("public feed URL missing or wrong base: %s", body)
	}
	if !strings.Contains(body, "staff-feed.ics?token=staff-token") {
		t.Fatalf("staff feed URL missing: %s", body)
	}
}

func TestDailyReportValidatesParams(t *testing.T) {
	env := intconfig.Env{JWTSecret: "test-secret"}
	r, _ := newTestRouter(t, env)
	auth := "Bearer " + staffToken(t, "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/daily-report?date=nope&location=HUBBLE", nil)
	req.Header.Set("Authorization", auth)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/export/daily-report?date=2026-09-12&location=PLUTO", nil)
	req.Header.Set("Authorization", auth)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad location, got %d", w.Code)
	}
}

func TestDailyReportReturnsPDF(t *testing.T) {
	env := intconfig.Env{JWTSecret: "test-secret"}
	r, mock := newTestRouter(t, env)

	mock.ExpectQuery("SELECT(.|\\s)+FROM reservation ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/daily-report?date=2026-09-12&location=HUBBLE", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken(t, "test-secret"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "reservations-hubble-2026-09-12.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("body is not a PDF document")
	}
}

var reportColumns = []string{
	"id", "confirmation_number", "contact_name", "email",
	"phone_number", "organization_name",
	"event_title", "description", "event_type", "organizer_type",
	"expected_guests", "event_date", "start_time", "end_time", "setup_time_minutes",
	"location", "seating_area", "specific_area",
	"payment_option", "cost_center", "invoice_name",
	"invoice_address", "vat_number",
	"food_required", "dietary_preference", "dietary_notes",
	"drinks_included", "budget_per_person", "comments",
	"terms_accepted", "referral_source",
	"status", "internal_notes", "created_at", "updated_at",
	"confirmed_by",
}

func pendingReportRows() *sqlmock.Rows {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local)
	return sqlmock.NewRows(reportColumns).AddRow(
		int64(7), "K7XP2A", "Eva Janssen", "eva@example.org",
		"+31612345678", "",
		"Board Game Night", "", "ACTIVITY", "ASSOCIATION",
		25, "2026-09-12", "19:00", "23:00", nil,
		"HUBBLE", "INSIDE", "",
		"INDIVIDUAL", "", "",
		"", "",
		false, "", "",
		false, nil, "",
		true, "",
		"PENDING", "", created, created,
		"",
	)
}

func TestDailyReportDefaultsToConfirmedOnly(t *testing.T) {
	env := intconfig.Env{JWTSecret: "test-secret"}
	r, mock := newTestRouter(t, env)
	auth := "Bearer " + staffToken(t, "test-secret")

	fetch := func(query string) []byte {
		t.Helper()
		mock.ExpectQuery("SELECT(.|\\s)+FROM reservation ORDER BY id").
			WillReturnRows(pendingReportRows())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/admin/export/daily-report?date=2026-09-12&location=HUBBLE"+query, nil)
		req.Header.Set("Authorization", auth)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d: %s", query, w.Code, w.Body.String())
		}
		return w.Body.Bytes()
	}

	unqualified := fetch("")
	confirmed := fetch("&confirmedOnly=true")
	all := fetch("&confirmedOnly=false")

	// The only reservation on the date is PENDING, so the unqualified
	// report must render the empty document, same as confirmedOnly=true.
	if len(unqualified) != len(confirmed) {
		t.Fatalf("unqualified report (%d bytes) differs from confirmedOnly=true (%d bytes)",
			len(unqualified), len(confirmed))
	}
	if len(unqualified) >= len(all) {
		t.Fatalf("unqualified report (%d bytes) should exclude the pending card, confirmedOnly=false gave %d bytes",
			len(unqualified), len(all))
	}
}
