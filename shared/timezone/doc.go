// Package timezone holds the application timezone.
//
// Timestamps are stored as instants; the location only affects how they are rendered and
// how naive input is interpreted:
//
//	timezone.Init(cfg)                                  // once, at startup, from APP_TIMEZONE
//	now := timezone.Now()                               // current time in app timezone
//	formatted := timezone.Format(item.DateAdded, time.RFC3339)
//	t, err := timezone.Parse("2006-01-02", "2029-01-22")
//
// Use IANA names ("UTC", "Asia/Jakarta", "America/New_York"). Before Init, or when the
// configured name cannot be loaded, UTC is used.
package timezone
