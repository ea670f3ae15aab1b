package components

import "testing"

func TestLayoutRow_WidthsSumToTotal(t *testing.T) {
	for _, total := range []int{70, 97, 120} {
		for n := 1; n <= 4; n++ {
			widths := LayoutRow(total, n)
			if len(widths) != n {
				t.Fatalf("LayoutRow(%d, %d) returned %d widths", total, n, len(widths))
			}
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) widths sum to %d", total, n, sum)
			}
			// No column narrower than its peers by more than the remainder.
			for _, w := range widths {
				if w < total/n || w > total/n+1 {
					t.Fatalf("LayoutRow(%d, %d) uneven width %d", total, n, w)
				}
			}
		}
	}
}

func TestColorForUsage_Thresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, ColorForUsage(0)},
		{50, ColorForUsage(10)},   // same band as low usage
		{80, ColorForUsage(51)},   // same band as mid usage
		{100, ColorForUsage(81)},  // same band as high usage
		{150, ColorForUsage(101)}, // same band as overrun
	}
	for _, c := range cases {
		if got := ColorForUsage(c.pct); got != c.want {
			t.Errorf("ColorForUsage(%v) = %q, want %q", c.pct, got, c.want)
		}
	}
	if ColorForUsage(10) == ColorForUsage(150) {
		t.Fatal("low usage and overrun share a color")
	}
}
