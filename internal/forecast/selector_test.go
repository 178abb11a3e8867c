package forecast

import (
	"math"
	"testing"
)

func TestSelectorFallsBackOnFlatDrift(t *testing.T) {
	// 40 constant prices: the drift forecast equals the last close exactly,
	// which is degenerate, so every horizon must come from the trend model.
	s := NewSelector()
	res := s.Run(constantSeries(40, 100))

	if res.TotalLen != 39+365+1 {
		t.Fatalf("unexpected total length %d", res.TotalLen)
	}
	for _, h := range Horizons {
		hf := res.Horizons[h.Tag]
		if hf.Model != ModelTrend {
			t.Fatalf("horizon %s: expected trend fallback, got %s", h.Tag, hf.Model)
		}
		if hf.Final == nil {
			t.Fatalf("horizon %s: expected forecast", h.Tag)
		}
		if math.Abs(*hf.Final-100) > 1e-6 {
			t.Fatalf("horizon %s: expected ~100, got %v", h.Tag, *hf.Final)
		}
	}
}

func TestSelectorPrefersNonDegenerateDrift(t *testing.T) {
	// A steadily climbing series gives the drift model a forecast well away
	// from the last close, so it wins over the trend model.
	s := NewSelector()
	res := s.Run(linearSeries(60, 100, 1))

	for _, h := range Horizons {
		hf := res.Horizons[h.Tag]
		if hf.Model != ModelDrift {
			t.Fatalf("horizon %s: expected drift, got %s", h.Tag, hf.Model)
		}
	}
}

func TestSelectorDriftDisabled(t *testing.T) {
	s := NewSelector(WithDriftEnabled(false))
	res := s.Run(linearSeries(60, 100, 1))

	for _, h := range Horizons {
		if got := res.Horizons[h.Tag].Model; got != ModelTrend {
			t.Fatalf("horizon %s: expected trend with drift disabled, got %s", h.Tag, got)
		}
	}
}

func TestSelectorShortHistoryAllAbsent(t *testing.T) {
	s := NewSelector()
	res := s.Run(constantSeries(5, 100))

	for _, h := range Horizons {
		hf := res.Horizons[h.Tag]
		if hf.Model != ModelNone || hf.Final != nil || hf.Series != nil {
			t.Fatalf("horizon %s: expected all-absent result", h.Tag)
		}
	}
}

func TestSelectorEmptySeries(t *testing.T) {
	s := NewSelector()
	res := s.Run(nil)
	for _, h := range Horizons {
		if res.Horizons[h.Tag].Final != nil {
			t.Fatalf("horizon %s: expected absent forecast", h.Tag)
		}
	}
}

func TestSelectorTotalLenSharedAcrossHorizons(t *testing.T) {
	s := NewSelector()
	res := s.Run(geometricSeries(100, 100, 1.001))

	for _, h := range Horizons {
		hf := res.Horizons[h.Tag]
		if len(hf.Series) != res.TotalLen {
			t.Fatalf("horizon %s: series length %d != total len %d", h.Tag, len(hf.Series), res.TotalLen)
		}
	}
}

func TestSelectorSeriesMostlySparse(t *testing.T) {
	s := NewSelector()
	prices := constantSeries(40, 100)
	res := s.Run(prices)

	hf := res.Horizons["1y"]
	nonNil := 0
	for _, v := range hf.Series {
		if v != nil {
			nonNil++
		}
	}
	// stride = 365/30 = 12 => 30 stride points, plus step 365 and the anchor.
	if nonNil > 33 {
		t.Fatalf("expected a sparse series, got %d plotted points", nonNil)
	}
	if hf.Series[39] == nil || *hf.Series[39] != 100 {
		t.Fatalf("anchor slot must carry the last close")
	}
}

func TestSelectorHonorsFlatnessThreshold(t *testing.T) {
	// With an absurdly large threshold even a strong drift forecast counts
	// as flat and the trend model takes over.
	s := NewSelector(WithFlatnessThreshold(10))
	res := s.Run(linearSeries(60, 100, 1))

	for _, h := range Horizons {
		if got := res.Horizons[h.Tag].Model; got != ModelTrend {
			t.Fatalf("horizon %s: expected trend, got %s", h.Tag, got)
		}
	}
}
