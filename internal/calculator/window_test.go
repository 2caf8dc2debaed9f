package calculator

import (
	"testing"

	"stockboard/internal/model"
)

func TestLastN_Truncates(t *testing.T) {
	series := model.PriceSeries{Symbol: "TEST", Points: linearPoints(400)}
	got := LastN(series, 252)
	if len(got.Points) != 252 {
		t.Fatalf("expected 252 points, got %d", len(got.Points))
	}
	if got.Points[0].Close != 149 {
		t.Errorf("expected first kept close 149, got %v", got.Points[0].Close)
	}
	if got.Points[251].Close != 400 {
		t.Errorf("expected last close 400, got %v", got.Points[251].Close)
	}
}

func TestLastN_ShorterInput(t *testing.T) {
	series := model.PriceSeries{Symbol: "TEST", Points: linearPoints(100)}
	got := LastN(series, 252)
	if len(got.Points) != 100 {
		t.Errorf("expected all 100 points kept, got %d", len(got.Points))
	}
}

func TestLastNMA_KeepsAlignment(t *testing.T) {
	points := linearPoints(400)
	ma, err := RollingSMA(points, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	series := LastN(model.PriceSeries{Points: points}, 252)
	maTail := LastNMA(ma, 252)
	if len(maTail.Points) != len(series.Points) {
		t.Fatalf("lengths diverged: %d vs %d", len(maTail.Points), len(series.Points))
	}
	for i := range series.Points {
		if !maTail.Points[i].Date.Equal(series.Points[i].Date) {
			t.Fatalf("index %d: dates misaligned after truncation", i)
		}
	}
}
