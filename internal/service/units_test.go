package service_test

import (
	"math"
	"testing"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

func TestToKg(t *testing.T) {
	t.Parallel()

	kg, err := service.ToKg(154, "lb")
	if err != nil {
		t.Fatalf("convert lb: %v", err)
	}
	if math.Abs(kg-69.853) > 0.01 {
		t.Fatalf("expected ~69.85 kg, got %.3f", kg)
	}
	if kg, err := service.ToKg(70, ""); err != nil || kg != 70 {
		t.Fatalf("expected kg passthrough, got %v err=%v", kg, err)
	}
	if _, err := service.ToKg(70, "stone"); err == nil {
		t.Fatalf("expected invalid unit error")
	}
	if _, err := service.ToKg(0, "kg"); err == nil {
		t.Fatalf("expected error for zero weight")
	}
}

func TestToCm(t *testing.T) {
	t.Parallel()

	cm, err := service.ToCm(70, "in")
	if err != nil {
		t.Fatalf("convert in: %v", err)
	}
	if math.Abs(cm-177.8) > 0.001 {
		t.Fatalf("expected 177.8 cm, got %.3f", cm)
	}
	if _, err := service.ToCm(70, "ft"); err == nil {
		t.Fatalf("expected invalid unit error")
	}
	if _, err := service.ToCm(-1, "cm"); err == nil {
		t.Fatalf("expected error for negative height")
	}
}
