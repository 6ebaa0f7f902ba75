package schedule

import (
	"math"
	"testing"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

var testPrices = models.PriceList{
	FullPackage:   995,
	GroupPackage:  499,
	TestReadiness: 150,
}

func newTestEngine() *PricingEngine {
	return NewPricingEngine(testPrices, nil)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestQuoteFullPackageIsFlatPerBooking(t *testing.T) {
	engine := newTestEngine()

	for _, n := range []int{1, 2, 5, 9} {
		quote, err := engine.Quote([]models.ServiceOffering{models.FullPackage}, n)
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", n, err)
		}
		if !approx(quote.TotalPrice, 995) {
			t.Errorf("n=%d: expected flat price 995, got %.2f", n, quote.TotalPrice)
		}
		if !approx(quote.TotalDiscount, 0) {
			t.Errorf("n=%d: expected no discount, got %.2f", n, quote.TotalDiscount)
		}
	}
}

func TestQuoteGroupOfThree(t *testing.T) {
	engine := newTestEngine()

	quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12% of 499 = 59.88 off per person; 439.12 each for three people.
	if !approx(quote.TotalPrice, 1317.36) {
		t.Errorf("expected total 1317.36, got %.2f", quote.TotalPrice)
	}
	if !approx(quote.TotalDiscount, 179.64) {
		t.Errorf("expected discount 179.64, got %.2f", quote.TotalDiscount)
	}
}

func TestQuoteGroupDiscountTable(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		participants int
		percent      float64
	}{
		{1, 0},
		{2, 10},
		{3, 12},
		{4, 15},
		{5, 0}, // canonical table stops at four
		{7, 0},
	}
	for _, tc := range cases {
		quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage}, tc.participants)
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", tc.participants, err)
		}
		perPerson := testPrices.GroupPackage * (1 - tc.percent/100)
		want := math.Round(perPerson*float64(tc.participants)*100) / 100
		if !approx(quote.TotalPrice, want) {
			t.Errorf("n=%d: expected total %.2f, got %.2f", tc.participants, want, quote.TotalPrice)
		}
	}
}

func TestQuoteExtendedRatesCoverLargerGroups(t *testing.T) {
	engine := NewPricingEngine(testPrices, ExtendedGroupRates())

	quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 17% of 499 = 84.83 off per person; 414.17 each for five people.
	if !approx(quote.TotalPrice, 2070.85) {
		t.Errorf("expected total 2070.85, got %.2f", quote.TotalPrice)
	}
	if !approx(quote.TotalDiscount, 424.15) {
		t.Errorf("expected discount 424.15, got %.2f", quote.TotalDiscount)
	}
}

func TestQuoteGroupWithTestReadiness(t *testing.T) {
	engine := newTestEngine()

	quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage, models.TestReadiness}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Group side: 10% of 499 = 49.90 off per person, 449.10 each for two.
	// Test side: 150 each for two = 300, same 10% applied independently = 30 off.
	wantPrice := 449.10*2 + 270
	wantDiscount := 49.90*2 + 30
	if !approx(quote.TotalPrice, wantPrice) {
		t.Errorf("expected total %.2f, got %.2f", wantPrice, quote.TotalPrice)
	}
	if !approx(quote.TotalDiscount, wantDiscount) {
		t.Errorf("expected discount %.2f, got %.2f", wantDiscount, quote.TotalDiscount)
	}
}

func TestQuoteTestReadinessAloneIsForOnePerson(t *testing.T) {
	engine := newTestEngine()

	for _, n := range []int{1, 2, 4, 8} {
		quote, err := engine.Quote([]models.ServiceOffering{models.TestReadiness}, n)
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", n, err)
		}
		if !approx(quote.TotalPrice, 150) {
			t.Errorf("n=%d: expected lone test readiness priced for one person (150), got %.2f", n, quote.TotalPrice)
		}
		if !approx(quote.TotalDiscount, 0) {
			t.Errorf("n=%d: expected no discount, got %.2f", n, quote.TotalDiscount)
		}
	}
}

func TestQuoteEmptySelectionIsZero(t *testing.T) {
	engine := newTestEngine()

	quote, err := engine.Quote(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 0 || quote.TotalDiscount != 0 {
		t.Errorf("expected {0, 0}, got {%.2f, %.2f}", quote.TotalPrice, quote.TotalDiscount)
	}
}

func TestQuoteFullPackageWinsOverGroupPackage(t *testing.T) {
	engine := newTestEngine()

	// The combination is a caller error; the engine must not crash and must
	// resolve it deterministically in favour of the full package.
	quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage, models.FullPackage}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(quote.TotalPrice, 995) {
		t.Errorf("expected full package to take precedence (995), got %.2f", quote.TotalPrice)
	}
	if !approx(quote.TotalDiscount, 0) {
		t.Errorf("expected no discount, got %.2f", quote.TotalDiscount)
	}
}

func TestQuoteRejectsInvalidInput(t *testing.T) {
	engine := newTestEngine()

	if _, err := engine.Quote([]models.ServiceOffering{models.FullPackage}, 0); !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for zero participants, got %v", err)
	}
	if _, err := engine.Quote([]models.ServiceOffering{models.FullPackage}, -2); !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for negative participants, got %v", err)
	}
	if _, err := engine.Quote([]models.ServiceOffering{"jetSki"}, 2); !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for unknown offering, got %v", err)
	}
}

func TestQuoteDiscountAccumulatesInPriceOrder(t *testing.T) {
	engine := newTestEngine()

	// For every group size the identity price + discount == undiscounted
	// subtotal must hold after final rounding, which fails if either side is
	// rounded at a different step.
	for n := 2; n <= 4; n++ {
		quote, err := engine.Quote([]models.ServiceOffering{models.GroupPackage, models.TestReadiness}, n)
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", n, err)
		}
		gross := (testPrices.GroupPackage + testPrices.TestReadiness) * float64(n)
		if !approx(quote.TotalPrice+quote.TotalDiscount, gross) {
			t.Errorf("n=%d: price %.2f + discount %.2f != gross %.2f",
				n, quote.TotalPrice, quote.TotalDiscount, gross)
		}
	}
}
