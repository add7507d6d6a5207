package timezone_test

import (
	"shoppinglist/config"
	"shoppinglist/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneDefaultsToUTC(t *testing.T) {
	timezone.Init(&config.Config{})

	if loc := timezone.GetLocation(); loc != time.UTC {
		t.Errorf("expected UTC, got %s", loc)
	}

	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneInvalidNameFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Not/AZone"

	timezone.Init(cfg)

	if loc := timezone.GetLocation(); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %s", loc)
	}
}

func TestTimezoneConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Asia/Jakarta"

	timezone.Init(cfg)
	defer timezone.Init(&config.Config{})

	if loc := timezone.GetLocation(); loc.String() != "Asia/Jakarta" {
		t.Fatalf("expected Asia/Jakarta, got %s", loc)
	}

	instant := time.Date(2029, 1, 22, 16, 28, 32, 0, time.UTC)

	if got := timezone.Format(instant, "15:04"); got != "23:28" {
		t.Errorf("expected 23:28 in Asia/Jakarta, got %s", got)
	}

	if !timezone.ToAppTime(instant).Equal(instant) {
		t.Error("ToAppTime must keep the instant")
	}

	parsed, err := timezone.Parse("2006-01-02 15:04", "2029-01-22 23:28")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !parsed.Equal(instant.Add(-32 * time.Second)) {
		t.Errorf("expected %s, got %s", instant.Add(-32*time.Second), parsed)
	}
}
