package repositories

import (
	"testing"
	"time"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var reservationTestColumns = []string{
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

func reservationRow(id int64, status string, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(reservationTestColumns).AddRow(
		id, "K7XP2A", "Eva Janssen", "eva@example.org",
		"+31612345678", "",
		"Board Game Night", "", "ACTIVITY", "ASSOCIATION",
		25, "2026-09-12", "19:00", "23:00", nil,
		"HUBBLE", "INSIDE", "",
		"INDIVIDUAL", "", "",
		"", "",
		false, "", "",
		false, nil, "",
		true, "",
		status, "", createdAt, createdAt,
		"",
	)
}

func validReservation() models.Reservation {
	guests := 25
	return models.Reservation{
		ContactName:    "Eva Janssen",
		Email:          "eva@example.org",
		EventTitle:     "Board Game Night",
		EventType:      domain.EventActivity,
		OrganizerType:  domain.OrganizerAssociation,
		ExpectedGuests: &guests,
		EventDate:      "2026-09-12",
		StartTime:      "19:00",
		EndTime:        "23:00",
		Location:       domain.LocationHubble,
		SeatingArea:    domain.SeatingInside,
		PaymentOption:  domain.PaymentIndividual,
		TermsAccepted:  true,
	}
}

func TestInsertSetsStoreOwnedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservation").
		WillReturnResult(sqlmock.NewResult(12, 1))

	res := validReservation()
	res.Status = domain.StatusConfirmed // caller-supplied status is discarded
	res.InternalNotes = "sneaky"

	repo := ReservationRepository{DB: db}
	if err := repo.Insert(&res); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if res.ID != 12 {
		t.Fatalf("expected id 12, got %d", res.ID)
	}
	if res.Status != domain.StatusPending {
		t.Fatalf("insert must force PENDING, got %s", res.Status)
	}
	if len(res.ConfirmationNumber) != 6 {
		t.Fatalf("confirmation number %q has wrong length", res.ConfirmationNumber)
	}
	if res.InternalNotes != "" || res.ConfirmedBy != "" {
		t.Fatalf("internal fields must be cleared on insert")
	}
	if res.CreatedAt.IsZero() || res.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not stamped")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertRetriesOnDuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservation").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec("INSERT INTO reservation").
		WillReturnResult(sqlmock.NewResult(3, 1))

	res := validReservation()
	repo := ReservationRepository{DB: db}
	if err := repo.Insert(&res); err != nil {
		t.Fatalf("Insert should retry past a code collision, got %v", err)
	}
	if res.ID != 3 {
		t.Fatalf("expected id 3, got %d", res.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertGivesUpAfterRepeatedCollisions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for i := 0; i < codeInsertAttempts; i++ {
		mock.ExpectExec("INSERT INTO reservation").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	}

	res := validReservation()
	repo := ReservationRepository{DB: db}
	err = repo.Insert(&res)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error after exhausted retries, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\\s)+FROM reservation WHERE id").
		WillReturnRows(sqlmock.NewRows(reservationTestColumns))

	repo := ReservationRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetByIDScansEnums(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT(.|\\s)+FROM reservation WHERE id").
		WillReturnRows(reservationRow(7, "CONFIRMED", created))

	repo := ReservationRepository{DB: db}
	res, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if res.Status != domain.StatusConfirmed || res.Location != domain.LocationHubble {
		t.Fatalf("enums not converted: %+v", res)
	}
	if res.ExpectedGuests == nil || *res.ExpectedGuests != 25 {
		t.Fatalf("expected guests not scanned: %+v", res.ExpectedGuests)
	}
	if res.SetupTimeMinutes != nil {
		t.Fatalf("NULL setup time should stay nil")
	}
	if res.EventDate != "2026-09-12" {
		t.Fatalf("event date = %q", res.EventDate)
	}
}

func TestUpdateStatusRecordsConfirmedByOnlyWhenConfirmed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reservation SET status = \\?, confirmed_by = \\?").
		WithArgs("CONFIRMED", "pim", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE reservation SET status = \\?, updated_at = \\?").
		WithArgs("CANCELLED", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReservationRepository{DB: db}
	if err := repo.UpdateStatus(1, domain.StatusConfirmed, "pim"); err != nil {
		t.Fatalf("UpdateStatus(confirmed) error: %v", err)
	}
	if err := repo.UpdateStatus(1, domain.StatusCancelled, "pim"); err != nil {
		t.Fatalf("UpdateStatus(cancelled) error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reservation SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ReservationRepository{DB: db}
	err = repo.UpdateStatus(404, domain.StatusRejected, "")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
