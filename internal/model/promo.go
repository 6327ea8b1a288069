package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType tells how Promo.DiscountValue is applied.
type DiscountType string

const (
	DiscountNominal DiscountType = "nominal"
	DiscountPercent DiscountType = "percent"
)

// Promo is a backend-owned promotion.  The web tier only displays it.
type Promo struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DiscountType   DiscountType    `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	MaxDiscount    decimal.Decimal `json:"max_discount"`
	MinTransaction decimal.Decimal `json:"min_transaction"`
	Quota          int             `json:"quota"`
	ExpiredAt      Date            `json:"expired_at"`
}

// Expired reports whether the promo is past its expiry date at now.
// Promos without a date never expire.
func (p Promo) Expired(now time.Time) bool {
	if p.ExpiredAt.IsZero() {
		return false
	}
	// a promo stays valid for the whole expiry day
	return now.After(p.ExpiredAt.AddDate(0, 0, 1))
}

// Date accepts both "2006-01-02" and RFC 3339 values from the backend.
type Date struct{ time.Time }

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}
