package service_test

import (
	"testing"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

func TestConfigSetGet(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := service.SetConfig(db, "COACH_MODEL", " gemini-test "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	v, ok, err := service.GetConfig(db, service.ConfigCoachModel)
	if err != nil || !ok || v != "gemini-test" {
		t.Fatalf("unexpected config value %q ok=%v err=%v", v, ok, err)
	}
	if err := service.SetConfig(db, service.ConfigCoachModel, "gemini-next"); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	all, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 1 || all[service.ConfigCoachModel] != "gemini-next" {
		t.Fatalf("unexpected config list: %v", all)
	}
}

func TestConfigUnknownKey(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := service.SetConfig(db, "theme", "dark"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if _, _, err := service.GetConfig(db, ""); err == nil {
		t.Fatalf("expected missing key error")
	}
}

func TestConfigOrFallback(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	v, err := service.ConfigOr(db, service.ConfigFlashModel, "flash-default")
	if err != nil || v != "flash-default" {
		t.Fatalf("expected fallback, got %q err=%v", v, err)
	}
	if err := service.SetConfig(db, service.ConfigFlashModel, "flash-custom"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	v, err = service.ConfigOr(db, service.ConfigFlashModel, "flash-default")
	if err != nil || v != "flash-custom" {
		t.Fatalf("expected stored value, got %q err=%v", v, err)
	}
}
