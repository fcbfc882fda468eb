package db

import "database/sql"

// EnsureSchema creates the reservation table when it is missing. The
// service owns exactly one table, so bootstrap DDL replaces migrations.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reservation (
			id                  BIGINT AUTO_INCREMENT PRIMARY KEY,
			confirmation_number VARCHAR(6) NOT NULL,
			contact_name        VARCHAR(255) NOT NULL,
			email               VARCHAR(255) NOT NULL,
			phone_number        VARCHAR(64),
			organization_name   VARCHAR(255),
			event_title         VARCHAR(255) NOT NULL,
			description         TEXT,
			event_type          VARCHAR(32) NOT NULL,
			organizer_type      VARCHAR(32) NOT NULL,
			expected_guests     INT,
			event_date          VARCHAR(10) NOT NULL,
			start_time          VARCHAR(8) NOT NULL,
			end_time            VARCHAR(8) NOT NULL,
			setup_time_minutes  INT,
			location            VARCHAR(16) NOT NULL,
			seating_area        VARCHAR(16),
			specific_area       VARCHAR(255),
			payment_option      VARCHAR(32) NOT NULL,
			cost_center         VARCHAR(64),
			invoice_name        VARCHAR(255),
			invoice_address     VARCHAR(255),
			vat_number          VARCHAR(64),
			food_required       TINYINT(1) NOT NULL DEFAULT 0,
			dietary_preference  VARCHAR(32),
			dietary_notes       TEXT,
			drinks_included     TINYINT(1) NOT NULL DEFAULT 0,
			budget_per_person   DOUBLE,
			comments            TEXT,
			terms_accepted      TINYINT(1) NOT NULL DEFAULT 0,
			referral_source     VARCHAR(255),
			status              VARCHAR(16) NOT NULL DEFAULT 'PENDING',
			internal_notes      TEXT,
			created_at          DATETIME NOT NULL,
			updated_at          DATETIME NOT NULL,
			confirmed_by        VARCHAR(255),
			UNIQUE KEY uq_reservation_confirmation (confirmation_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
	`)
	return err
}

// NullIfEmpty stores optional strings as NULL instead of empty text.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
