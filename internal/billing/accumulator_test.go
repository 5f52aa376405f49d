package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAccumulator(t *testing.T) {
	t.Run("line total is quantity times price", func(t *testing.T) {
		acc := New()
		line := acc.Append("1", "టమాటా", d("40"), d("2.5"))
		if !line.Total.Equal(d("100")) {
			t.Errorf("total = %s, want 100", line.Total)
		}

		// fractional quantities must not drift
		line = acc.Append("2", "ఉల్లిపాయలు", d("30.5"), d("0.25"))
		if !line.Total.Equal(d("7.625")) {
			t.Errorf("total = %s, want 7.625", line.Total)
		}
	})

	t.Run("sum over lines", func(t *testing.T) {
		acc := New()
		acc.Append("1", "టమాటా", d("40"), d("2.5"))      // 100
		acc.Append("2", "ఉల్లిపాయలు", d("30"), d("1"))    // 30
		acc.Append("3", "బంగాళాదుంప", d("25"), d("3"))    // 75
		if !acc.Sum().Equal(d("205")) {
			t.Errorf("sum = %s, want 205", acc.Sum())
		}
		if acc.Len() != 3 {
			t.Errorf("len = %d, want 3", acc.Len())
		}
	})

	t.Run("remove preserves order", func(t *testing.T) {
		acc := New()
		acc.Append("1", "a", d("1"), d("1"))
		acc.Append("2", "b", d("2"), d("1"))
		acc.Append("3", "c", d("3"), d("1"))

		if !acc.RemoveAt(1) {
			t.Fatal("RemoveAt(1) should succeed")
		}
		lines := acc.Lines()
		if len(lines) != 2 || lines[0].ItemName != "a" || lines[1].ItemName != "c" {
			t.Errorf("unexpected lines after removal: %+v", lines)
		}
		if !acc.Sum().Equal(d("4")) {
			t.Errorf("sum = %s, want 4", acc.Sum())
		}
	})

	t.Run("remove out of range is reported", func(t *testing.T) {
		acc := New()
		acc.Append("1", "a", d("1"), d("1"))
		if acc.RemoveAt(-1) || acc.RemoveAt(1) {
			t.Error("out-of-range RemoveAt should return false")
		}
		if acc.Len() != 1 {
			t.Errorf("len = %d, want 1", acc.Len())
		}
	})

	t.Run("empty accumulator sums to zero", func(t *testing.T) {
		if !New().Sum().Equal(decimal.Zero) {
			t.Error("empty sum should be zero")
		}
	})
}

func TestNewBillNumber(t *testing.T) {
	ts := time.UnixMilli(1700000123456)
	if got := NewBillNumber(ts); got != "B123456" {
		t.Errorf("NewBillNumber = %q, want B123456", got)
	}
}
