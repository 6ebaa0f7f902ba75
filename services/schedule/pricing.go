package schedule

import (
	"math"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// GroupRateTable maps a participant count to its group discount percentage.
// Counts not present in the table get no discount.
type GroupRateTable map[int]float64

// DefaultGroupRates is the canonical discount table: it stops at four
// participants, larger groups pay full price per person.
func DefaultGroupRates() GroupRateTable {
	return GroupRateTable{2: 10, 3: 12, 4: 15}
}

// ExtendedGroupRates adds the rows for larger groups that one legacy code
// path carried. Kept behind a config flag until the business picks a side.
func ExtendedGroupRates() GroupRateTable {
	return GroupRateTable{2: 10, 3: 12, 4: 15, 5: 17, 6: 20, 7: 22}
}

// PricingEngine computes customer-facing totals for a selection of
// offerings. It is a pure function of its inputs; it knows nothing about
// dates or capacity.
type PricingEngine struct {
	Prices models.PriceList
	Rates  GroupRateTable
}

// NewPricingEngine builds an engine; a nil rate table falls back to the
// canonical one.
func NewPricingEngine(prices models.PriceList, rates GroupRateTable) *PricingEngine {
	if rates == nil {
		rates = DefaultGroupRates()
	}
	return &PricingEngine{Prices: prices, Rates: rates}
}

// discountPercent returns the group discount percentage for a participant
// count, zero when the count has no table row.
func (pe *PricingEngine) discountPercent(participants int) float64 {
	return pe.Rates[participants]
}

func contains(sel []models.ServiceOffering, o models.ServiceOffering) bool {
	for _, s := range sel {
		if s == o {
			return true
		}
	}
	return false
}

// round2 applies standard 2-decimal currency rounding. It is applied once at
// the end of the computation, never to intermediate values, so discount and
// price accumulate in the same order without drift.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quote computes the total price and total discount for a selection.
//
// Rules apply in a fixed order that must match what customers are actually
// charged downstream:
//
//  1. FullPackage contributes its flat price once, per booking, regardless
//     of participant count.
//  2. GroupPackage prices every participant at the base price less the
//     table discount for the group size.
//  3. TestReadiness is per-person only in group context: with GroupPackage
//     selected it covers every participant and gets the same table
//     percentage applied independently to its own subtotal; alone it is
//     always priced for exactly one person.
//
// FullPackage and GroupPackage are mutually exclusive by precondition; the
// selection UI enforces it. If a caller passes both anyway, FullPackage
// deterministically wins and the GroupPackage contribution is skipped.
func (pe *PricingEngine) Quote(selection []models.ServiceOffering, participants int) (models.Quote, error) {
	if participants < 1 {
		return models.Quote{}, NewInvalidArgumentError("participantCount", "must be a positive integer")
	}
	for _, s := range selection {
		if !models.ValidOffering(s) {
			return models.Quote{}, NewInvalidArgumentError("offering", "unknown service offering "+string(s))
		}
	}

	hasFull := contains(selection, models.FullPackage)
	hasGroup := contains(selection, models.GroupPackage) && !hasFull
	hasTest := contains(selection, models.TestReadiness)

	var quote models.Quote

	if hasFull {
		quote.Lines = append(quote.Lines, models.QuoteLine{
			Offering: models.FullPackage,
			Units:    1,
			Subtotal: pe.Prices.FullPackage,
		})
		quote.TotalPrice += pe.Prices.FullPackage
	}

	if hasGroup {
		percent := pe.discountPercent(participants)
		discountPerPerson := pe.Prices.GroupPackage * percent / 100
		pricePerPerson := pe.Prices.GroupPackage - discountPerPerson

		subtotal := pricePerPerson * float64(participants)
		discount := discountPerPerson * float64(participants)
		quote.Lines = append(quote.Lines, models.QuoteLine{
			Offering: models.GroupPackage,
			Units:    participants,
			Subtotal: round2(subtotal),
			Discount: round2(discount),
		})
		quote.TotalPrice += subtotal
		quote.TotalDiscount += discount
	}

	if hasTest {
		// Priced per person only when part of a group booking; a lone
		// test-readiness purchase always covers exactly one person.
		units := 1
		if hasGroup {
			units = participants
		}
		subtotal := pe.Prices.TestReadiness * float64(units)

		var discount float64
		if hasGroup {
			// The same table percentage, computed independently on the
			// test-readiness subtotal.
			discount = subtotal * pe.discountPercent(participants) / 100
			subtotal -= discount
		}
		quote.Lines = append(quote.Lines, models.QuoteLine{
			Offering: models.TestReadiness,
			Units:    units,
			Subtotal: round2(subtotal),
			Discount: round2(discount),
		})
		quote.TotalPrice += subtotal
		quote.TotalDiscount += discount
	}

	quote.TotalPrice = round2(quote.TotalPrice)
	quote.TotalDiscount = round2(quote.TotalDiscount)
	return quote, nil
}
