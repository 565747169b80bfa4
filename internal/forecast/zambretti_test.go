package forecast

import (
	"math"
	"testing"
	"time"
)

func TestZambrettiSweepStaysInRange(t *testing.T) {
	trends := []TrendBucket{TrendRising, TrendSteady, TrendFalling}
	months := []time.Month{time.January, time.April, time.July, time.October}

	for p := PressureMinHpa; p <= PressureMaxHpa; p += 0.5 {
		if z := ZOption(p); math.IsNaN(z) || math.IsInf(z, 0) {
			t.Fatalf("ZOption(%v) is not finite: %v", p, z)
		}
		for _, trend := range trends {
			for _, month := range months {
				got := ForecastZambretti(p, trend, month)
				if got.Code < MinForecastCode || got.Code > MaxForecastCode {
					t.Fatalf("ForecastZambretti(%v, %s, %s).Code = %d, out of range",
						p, trend, month, got.Code)
				}
				if got.Letter == "" {
					t.Fatalf("ForecastZambretti(%v, %s, %s) has empty letter", p, trend, month)
				}
			}
		}
	}
}

// Falling pressure can only make the outlook worse.
func TestZambrettiSeverityMonotonicInPressure(t *testing.T) {
	for _, trend := range []TrendBucket{TrendRising, TrendSteady, TrendFalling} {
		prev := MinForecastCode
		for p := PressureMaxHpa; p >= PressureMinHpa; p -= 1.0 {
			code := ForecastZambretti(p, trend, time.October).Code
			if code < prev {
				t.Fatalf("trend %s: code dropped from %d to %d as pressure fell to %v",
					trend, prev, code, p)
			}
			prev = code
		}
	}
}

func TestZambrettiRapidFallScenario(t *testing.T) {
	got := ForecastZambretti(1008.9, TrendFalling, time.February)
	if got.Code != 16 {
		t.Errorf("code = %d, want 16", got.Code)
	}
	if got.Letter != "Q" {
		t.Errorf("letter = %q, want Q", got.Letter)
	}
}

func TestZambrettiSeasonalAdjustment(t *testing.T) {
	const pressure = 1015.0

	// A winter rise reads one option more severe than the same rise in autumn.
	winter := ForecastZambretti(pressure, TrendRising, time.January)
	autumn := ForecastZambretti(pressure, TrendRising, time.October)
	if winter.Code < autumn.Code {
		t.Errorf("winter rising code %d should not be milder than autumn %d", winter.Code, autumn.Code)
	}

	// A summer fall reads one option less severe.
	summer := ForecastZambretti(pressure, TrendFalling, time.July)
	spring := ForecastZambretti(pressure, TrendFalling, time.April)
	if summer.Code > spring.Code {
		t.Errorf("summer falling code %d should not be more severe than spring %d", summer.Code, spring.Code)
	}
}

func TestZambrettiLetterBounds(t *testing.T) {
	if got := zambrettiLetter(0); got != "A" {
		t.Errorf("letter(0) = %q, want A", got)
	}
	// Code 26 shares the final letter of the 26-symbol alphabet.
	if got := zambrettiLetter(MaxForecastCode); got != "Z" {
		t.Errorf("letter(26) = %q, want Z", got)
	}
}
