package calculator

import (
	"math"
	"testing"
	"time"

	"stockboard/internal/model"
)

func linearPoints(n int) []model.PricePoint {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, n)
	for i := range points {
		points[i] = model.PricePoint{Date: base.AddDate(0, 0, i), Close: float64(i + 1)}
	}
	return points
}

func constantPoints(n int, price float64) []model.PricePoint {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, n)
	for i := range points {
		points[i] = model.PricePoint{Date: base.AddDate(0, 0, i), Close: price}
	}
	return points
}

func TestRollingSMA_LinearSeries(t *testing.T) {
	points := linearPoints(30) // closes 1..30
	ma, err := RollingSMA(points, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma.Points) != 30 {
		t.Fatalf("expected output length 30, got %d", len(ma.Points))
	}
	for i := 0; i < 4; i++ {
		if ma.Points[i].Value != nil {
			t.Errorf("index %d: expected undefined, got %v", i, *ma.Points[i].Value)
		}
	}
	// mean of [26,27,28,29,30]
	last := ma.Points[29].Value
	if last == nil {
		t.Fatal("index 29: expected defined value")
	}
	if math.Abs(*last-28.0) > 1e-9 {
		t.Errorf("index 29: expected 28.0, got %v", *last)
	}
	// mean of [1,2,3,4,5]
	first := ma.Points[4].Value
	if first == nil || math.Abs(*first-3.0) > 1e-9 {
		t.Errorf("index 4: expected 3.0, got %v", first)
	}
}

func TestRollingSMA_AlignedDates(t *testing.T) {
	points := linearPoints(10)
	ma, err := RollingSMA(points, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range points {
		if !ma.Points[i].Date.Equal(points[i].Date) {
			t.Errorf("index %d: date %v misaligned with input %v", i, ma.Points[i].Date, points[i].Date)
		}
	}
}

func TestRollingSMA_EmptyInput(t *testing.T) {
	ma, err := RollingSMA(nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma.Points) != 0 {
		t.Errorf("expected empty output, got %d points", len(ma.Points))
	}
}

func TestRollingSMA_InvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1} {
		if _, err := RollingSMA(linearPoints(10), window); err == nil {
			t.Errorf("window %d: expected error", window)
		}
	}
}

func TestRollingSMA_WindowLargerThanSeries(t *testing.T) {
	ma, err := RollingSMA(linearPoints(5), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range ma.Points {
		if p.Value != nil {
			t.Errorf("index %d: expected undefined, got %v", i, *p.Value)
		}
	}
}

func TestSmooth_ConstantSeries(t *testing.T) {
	series := model.PriceSeries{Symbol: "TEST", Points: constantPoints(300, 100.0)}
	shortSMA, longSMA, err := Smooth(series, 20, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shortSMA.Points) != 300 || len(longSMA.Points) != 300 {
		t.Fatalf("expected both outputs length 300, got %d and %d", len(shortSMA.Points), len(longSMA.Points))
	}
	for i, p := range shortSMA.Points {
		if p.Value != nil && math.Abs(*p.Value-100.0) > 1e-9 {
			t.Errorf("short index %d: expected 100.0, got %v", i, *p.Value)
		}
	}
	for i, p := range longSMA.Points {
		if i < 199 && p.Value != nil {
			t.Errorf("long index %d: expected undefined", i)
		}
		if p.Value != nil && math.Abs(*p.Value-100.0) > 1e-9 {
			t.Errorf("long index %d: expected 100.0, got %v", i, *p.Value)
		}
	}
}

func TestSmooth_PermissiveOrdering(t *testing.T) {
	// No ordering constraint between the windows at this layer.
	series := model.PriceSeries{Symbol: "TEST", Points: linearPoints(50)}
	if _, _, err := Smooth(series, 30, 5); err != nil {
		t.Fatalf("unexpected error for short > long: %v", err)
	}
}
