package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":3002", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := "/", conf.HTTP.BaseURL; e != g {
		t.Errorf("conf.HTTP.BaseURL: expected '%s', got '%s'", e, g)
	}

	if e, g := "data.sqlite", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}

	if e, g := 100*time.Millisecond, conf.HTTP.RateLimit.Interval; e != g {
		t.Errorf("conf.HTTP.RateLimit.Interval: expected '%v', got '%v'", e, g)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("CHECKLIST_HTTP_ADDRESS", ":8080")
	t.Setenv("CHECKLIST_STORAGE_DATABASE_DSN", "/tmp/other.sqlite")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := "/tmp/other.sqlite", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}
}
