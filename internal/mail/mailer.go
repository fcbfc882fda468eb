// Package mail delivers notification emails through Microsoft 365.
// A nil Sender means mail is not configured; callers treat that as a
// silent no-op, never as an error.
package mail

import "context"

// Sender delivers one HTML email. Implementations must not retry; the
// notification layer treats every send as best-effort.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
