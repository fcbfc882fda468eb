package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "harrylist/internal/config"
	intdb "harrylist/internal/db"
	"harrylist/internal/domain"
	"harrylist/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// ReservationRepository persists reservations in MySQL. The insert path
// owns the store-assigned fields: confirmation number, timestamps and
// the initial PENDING status.
type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reservationColumns = `
	id, confirmation_number, contact_name, email,
	COALESCE(phone_number,''), COALESCE(organization_name,''),
	event_title, COALESCE(description,''), event_type, organizer_type,
	expected_guests, event_date, start_time, end_time, setup_time_minutes,
	location, COALESCE(seating_area,''), COALESCE(specific_area,''),
	payment_option, COALESCE(cost_center,''), COALESCE(invoice_name,''),
	COALESCE(invoice_address,''), COALESCE(vat_number,''),
	food_required, COALESCE(dietary_preference,''), COALESCE(dietary_notes,''),
	drinks_included, budget_per_person, COALESCE(comments,''),
	terms_accepted, COALESCE(referral_source,''),
	status, COALESCE(internal_notes,''), created_at, updated_at,
	COALESCE(confirmed_by,'')`

// List returns every reservation in store iteration order (primary key).
func (r ReservationRepository) List() ([]models.Reservation, error) {
	rows, err := r.db().Query(`SELECT` + reservationColumns + ` FROM reservation ORDER BY id`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list reservations", Err: err}
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan reservation", Err: err}
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list reservations", Err: err}
	}
	return out, nil
}

// GetByID fetches one reservation or a NotFoundError.
func (r ReservationRepository) GetByID(id int64) (models.Reservation, error) {
	row := r.db().QueryRow(`SELECT`+reservationColumns+` FROM reservation WHERE id = ?`, id)
	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	if err != nil {
		return models.Reservation{}, domain.InternalError{Msg: "get reservation", Err: err}
	}
	return res, nil
}

// codeInsertAttempts bounds retries on confirmation-number collisions.
// With a 32^6 code space a second collision in a row is already absurd.
const codeInsertAttempts = 5

// Insert stores a new reservation. Status is forced to PENDING, created
// and updated timestamps are stamped here, and a fresh confirmation
// number is generated, retrying when the unique index reports a clash.
func (r ReservationRepository) Insert(res *models.Reservation) error {
	now := time.Now()
	res.Status = domain.StatusPending
	res.CreatedAt = now
	res.UpdatedAt = now
	res.ConfirmedBy = ""
	res.InternalNotes = ""

	var lastErr error
	for attempt := 0; attempt < codeInsertAttempts; attempt++ {
		code, err := domain.NewConfirmationCode()
		if err != nil {
			return domain.InternalError{Msg: "generate confirmation number", Err: err}
		}
		res.ConfirmationNumber = code

		result, err := r.db().Exec(`
			INSERT INTO reservation (
				confirmation_number, contact_name, email, phone_number, organization_name,
				event_title, description, event_type, organizer_type, expected_guests,
				event_date, start_time, end_time, setup_time_minutes,
				location, seating_area, specific_area,
				payment_option, cost_center, invoice_name, invoice_address, vat_number,
				food_required, dietary_preference, dietary_notes, drinks_included, budget_per_person,
				comments, terms_accepted, referral_source,
				status, internal_notes, created_at, updated_at, confirmed_by
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			res.ConfirmationNumber, res.ContactName, res.Email,
			intdb.NullIfEmpty(res.PhoneNumber), intdb.NullIfEmpty(res.OrganizationName),
			res.EventTitle, intdb.NullIfEmpty(res.Description),
			string(res.EventType), string(res.OrganizerType), res.ExpectedGuests,
			res.EventDate, res.StartTime, res.EndTime, res.SetupTimeMinutes,
			string(res.Location), intdb.NullIfEmpty(string(res.SeatingArea)), intdb.NullIfEmpty(res.SpecificArea),
			string(res.PaymentOption), intdb.NullIfEmpty(res.CostCenter), intdb.NullIfEmpty(res.InvoiceName),
			intdb.NullIfEmpty(res.InvoiceAddress), intdb.NullIfEmpty(res.VATNumber),
			res.FoodRequired, intdb.NullIfEmpty(string(res.DietaryPreference)), intdb.NullIfEmpty(res.DietaryNotes),
			res.DrinksIncluded, res.BudgetPerPerson,
			intdb.NullIfEmpty(res.Comments), res.TermsAccepted, intdb.NullIfEmpty(res.ReferralSource),
			string(res.Status), intdb.NullIfEmpty(res.InternalNotes),
			res.CreatedAt, res.UpdatedAt, intdb.NullIfEmpty(res.ConfirmedBy),
		)
		if err != nil {
			if isDuplicateKey(err) {
				lastErr = err
				continue
			}
			return domain.InternalError{Msg: "insert reservation", Err: err}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return domain.InternalError{Msg: "insert reservation", Err: err}
		}
		res.ID = id
		return nil
	}

	return domain.ConflictError{Resource: "confirmation number", Err: lastErr}
}

// Update rewrites every caller-editable field and refreshes updated_at.
// Status and created_at are written as given; the service layer decides
// what to preserve. Confirmation number and id never change.
func (r ReservationRepository) Update(res *models.Reservation) error {
	res.UpdatedAt = time.Now()

	result, err := r.db().Exec(`
		UPDATE reservation SET
			contact_name = ?, email = ?, phone_number = ?, organization_name = ?,
			event_title = ?, description = ?, event_type = ?, organizer_type = ?, expected_guests = ?,
			event_date = ?, start_time = ?, end_time = ?, setup_time_minutes = ?,
			location = ?, seating_area = ?, specific_area = ?,
			payment_option = ?, cost_center = ?, invoice_name = ?, invoice_address = ?, vat_number = ?,
			food_required = ?, dietary_preference = ?, dietary_notes = ?, drinks_included = ?, budget_per_person = ?,
			comments = ?, terms_accepted = ?, referral_source = ?,
			status = ?, internal_notes = ?, updated_at = ?, confirmed_by = ?
		WHERE id = ?`,
		res.ContactName, res.Email,
		intdb.NullIfEmpty(res.PhoneNumber), intdb.NullIfEmpty(res.OrganizationName),
		res.EventTitle, intdb.NullIfEmpty(res.Description),
		string(res.EventType), string(res.OrganizerType), res.ExpectedGuests,
		res.EventDate, res.StartTime, res.EndTime, res.SetupTimeMinutes,
		string(res.Location), intdb.NullIfEmpty(string(res.SeatingArea)), intdb.NullIfEmpty(res.SpecificArea),
		string(res.PaymentOption), intdb.NullIfEmpty(res.CostCenter), intdb.NullIfEmpty(res.InvoiceName),
		intdb.NullIfEmpty(res.InvoiceAddress), intdb.NullIfEmpty(res.VATNumber),
		res.FoodRequired, intdb.NullIfEmpty(string(res.DietaryPreference)), intdb.NullIfEmpty(res.DietaryNotes),
		res.DrinksIncluded, res.BudgetPerPerson,
		intdb.NullIfEmpty(res.Comments), res.TermsAccepted, intdb.NullIfEmpty(res.ReferralSource),
		string(res.Status), intdb.NullIfEmpty(res.InternalNotes), res.UpdatedAt, intdb.NullIfEmpty(res.ConfirmedBy),
		res.ID,
	)
	if err != nil {
		return domain.InternalError{Msg: "update reservation", Err: err}
	}
	return requireRow(result)
}

// UpdateStatus applies a lifecycle transition. confirmedBy is recorded
// only when the new status is CONFIRMED.
func (r ReservationRepository) UpdateStatus(id int64, status domain.ReservationStatus, confirmedBy string) error {
	var (
		result sql.Result
		err    error
	)
	if status == domain.StatusConfirmed && confirmedBy != "" {
		result, err = r.db().Exec(
			`UPDATE reservation SET status = ?, confirmed_by = ?, updated_at = ? WHERE id = ?`,
			string(status), confirmedBy, time.Now(), id)
	} else {
		result, err = r.db().Exec(
			`UPDATE reservation SET status = ?, updated_at = ? WHERE id = ?`,
			string(status), time.Now(), id)
	}
	if err != nil {
		return domain.InternalError{Msg: "update status", Err: err}
	}
	return requireRow(result)
}

// UpdateNotes replaces the staff-only internal notes.
func (r ReservationRepository) UpdateNotes(id int64, notes string) error {
	result, err := r.db().Exec(
		`UPDATE reservation SET internal_notes = ?, updated_at = ? WHERE id = ?`,
		intdb.NullIfEmpty(notes), time.Now(), id)
	if err != nil {
		return domain.InternalError{Msg: "update notes", Err: err}
	}
	return requireRow(result)
}

// Delete removes a reservation permanently.
func (r ReservationRepository) Delete(id int64) error {
	result, err := r.db().Exec(`DELETE FROM reservation WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete reservation", Err: err}
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "rows affected", Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var (
		res     models.Reservation
		guests  sql.NullInt64
		setup   sql.NullInt64
		budget  sql.NullFloat64
		event   string
		org     string
		loc     string
		seating string
		payment string
		dietary string
		status  string
	)
	err := row.Scan(
		&res.ID, &res.ConfirmationNumber, &res.ContactName, &res.Email,
		&res.PhoneNumber, &res.OrganizationName,
		&res.EventTitle, &res.Description, &event, &org,
		&guests, &res.EventDate, &res.StartTime, &res.EndTime, &setup,
		&loc, &seating, &res.SpecificArea,
		&payment, &res.CostCenter, &res.InvoiceName,
		&res.InvoiceAddress, &res.VATNumber,
		&res.FoodRequired, &dietary, &res.DietaryNotes,
		&res.DrinksIncluded, &budget, &res.Comments,
		&res.TermsAccepted, &res.ReferralSource,
		&status, &res.InternalNotes, &res.CreatedAt, &res.UpdatedAt,
		&res.ConfirmedBy,
	)
	if err != nil {
		return models.Reservation{}, err
	}

	res.EventType = domain.EventType(event)
	res.OrganizerType = domain.OrganizerType(org)
	res.Location = domain.BarLocation(loc)
	res.SeatingArea = domain.SeatingArea(seating)
	res.PaymentOption = domain.PaymentOption(payment)
	res.DietaryPreference = domain.DietaryPreference(dietary)
	res.Status = domain.ReservationStatus(status)
	res.EventDate = res.EventDate[:min(len(res.EventDate), 10)]
	if guests.Valid {
		v := int(guests.Int64)
		res.ExpectedGuests = &v
	}
	if setup.Valid {
		v := int(setup.Int64)
		res.SetupTimeMinutes = &v
	}
	if budget.Valid {
		v := budget.Float64
		res.BudgetPerPerson = &v
	}
	return res, nil
}
