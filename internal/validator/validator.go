// Package validator holds pure field predicates used by entity constructors.
package validator

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Number covers the numeric kinds entity fields are declared with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsValidEmail reports whether value contains both "@" and ".".
// This is a shape check only, not RFC 5322 validation.
func IsValidEmail(value string) bool {
	return strings.Contains(value, "@") && strings.Contains(value, ".")
}

// IsPositive reports whether value is strictly greater than zero.
func IsPositive[T Number](value T) bool {
	return value > 0
}

// IsPositiveDecimal is IsPositive for monetary amounts.
func IsPositiveDecimal(value decimal.Decimal) bool {
	return value.IsPositive()
}

// IsNonNegative reports whether value is zero or greater.
func IsNonNegative(value decimal.Decimal) bool {
	return !value.IsNegative()
}

// CardType is a payment card network.
type CardType string

const (
	// CardVisa is a 16 digit number starting with 4.
	CardVisa CardType = "VISA"
	// CardMastercard covers the 51-55 and 2221-2720 ranges.
	CardMastercard CardType = "MASTERCARD"
	// CardAmex is a 15 digit number starting with 34 or 37.
	CardAmex CardType = "AMEX"
)

type cardPattern struct {
	typ CardType
	re  *regexp.Regexp
}

// Order matters: IdentifyCard returns the first match.
var cardPatterns = []cardPattern{
	{typ: CardVisa, re: regexp.MustCompile(`^4\d{15}$`)},
	{typ: CardMastercard, re: regexp.MustCompile(`^(5[1-5]\d{14}|2(22[1-9]|2[3-9]\d|[3-6]\d{2}|7[01]\d|720)\d{12})$`)},
	{typ: CardAmex, re: regexp.MustCompile(`^3[47]\d{13}$`)},
}

// CardTypes lists the known networks in matching order.
func CardTypes() []CardType {
	res := make([]CardType, 0, len(cardPatterns))
	for _, p := range cardPatterns {
		res = append(res, p.typ)
	}
	return res
}

// Pattern returns the regular expression a card number of this type matches.
func (c CardType) Pattern() string {
	for _, p := range cardPatterns {
		if p.typ == c {
			return p.re.String()
		}
	}
	return ""
}

// IdentifyCard returns the network of number, or false if none matches.
func IdentifyCard(number string) (CardType, bool) {
	for _, p := range cardPatterns {
		if p.re.MatchString(number) {
			return p.typ, true
		}
	}
	return "", false
}
