package view

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iliyamo/car-rental-web/internal/model"
)

var printer = message.NewPrinter(language.Indonesian)

var months = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// Rupiah formats an amount as "Rp350.000".  Cents are rounded away; the
// backend never prices below a rupiah.
func Rupiah(d decimal.Decimal) string {
	return printer.Sprintf("Rp%d", d.Round(0).IntPart())
}

// Number formats an integer with Indonesian digit grouping.
func Number(n int) string { return printer.Sprintf("%d", n) }

// Date formats t as "12 Maret 2025".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return printer.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// Discount renders a promo's discount ("20%" or "Rp50.000").
func Discount(p model.Promo) string {
	if p.DiscountType == model.DiscountPercent {
		return p.DiscountValue.String() + "%"
	}
	return Rupiah(p.DiscountValue)
}

// Initials returns up to two initials of name for avatar placeholders.
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
