package models

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	"golang.org/x/text/currency"
)

// Price mirrors one provider catalog price. CustomUnitAmount and
// UnitAmount are stored as strings when present and NULL otherwise;
// TiersMode alone coerces an absent value to the empty string.
type Price struct {
	ID                string
	BillingScheme     string
	Created           time.Time
	Currency          string
	CustomUnitAmount  sql.NullString
	Livemode          bool
	LookupKey         string
	Metadata          map[string]string
	Nickname          string
	ProductID         string
	Recurring         sql.NullString
	TiersMode         string
	Type              string
	UnitAmount        sql.NullString
	UnitAmountDecimal string
}

func PriceFromStripe(p *stripe.Price) Price {
	price := Price{
		ID:            p.ID,
		BillingScheme: string(p.BillingScheme),
		Created:       epochSecondsToTime(p.Created),
		Currency:      normalizeCurrency(string(p.Currency)),
		Livemode:      p.Livemode,
		LookupKey:     p.LookupKey,
		Metadata:      p.Metadata,
		Nickname:      p.Nickname,
		TiersMode:     string(p.TiersMode),
		Type:          string(p.Type),
	}

	if p.Product != nil {
		price.ProductID = p.Product.ID
	}

	if p.CustomUnitAmount != nil {
		price.CustomUnitAmount = sql.NullString{
			String: strconv.FormatInt(p.CustomUnitAmount.Preset, 10),
			Valid:  true,
		}
	}

	if p.Recurring != nil {
		if raw, err := json.Marshal(p.Recurring); err == nil {
			price.Recurring = sql.NullString{String: string(raw), Valid: true}
		}
	}

	// stripe-go models unit_amount as a plain int64, so a genuinely free
	// price (0/"0") is indistinguishable from an absent one and stores NULL
	if p.UnitAmount != 0 || p.UnitAmountDecimal != 0 {
		price.UnitAmount = sql.NullString{
			String: strconv.FormatInt(p.UnitAmount, 10),
			Valid:  true,
		}
		price.UnitAmountDecimal = strconv.FormatFloat(p.UnitAmountDecimal, 'f', -1, 64)
	}

	return price
}

// normalizeCurrency uppercases a valid ISO-4217 code and leaves anything
// unparseable untouched.
func normalizeCurrency(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return unit.String()
}
