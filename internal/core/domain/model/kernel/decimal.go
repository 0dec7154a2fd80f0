package kernel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalShape describes a SQL numeric(Precision, Scale) column: at most Scale digits
// after the decimal point and at most Precision-Scale digits before it.
type DecimalShape struct {
	Precision int
	Scale     int
}

var (
	MoneyShape  = DecimalShape{Precision: 8, Scale: 2}
	WeightShape = DecimalShape{Precision: 4, Scale: 2}
)

// Check validates value against the shape using its exact decimal digits. Trailing
// fractional zeros are not significant, so 10.500 fits a scale of 2.
//
// The value is never expanded to fixed-point: only the coefficient digits and the
// exponent are inspected, so the cost is bounded by the length of the literal.
func (s DecimalShape) Check(value decimal.Decimal) error {
	coefficient := strings.TrimLeft(value.Coefficient().String(), "-")
	significant := strings.TrimRight(coefficient, "0")
	if significant == "" {
		return nil
	}

	exponent := int64(value.Exponent()) + int64(len(coefficient)-len(significant))

	if fracDigits := -exponent; fracDigits > int64(s.Scale) {
		return fmt.Errorf("must have at most %d digits after the decimal point", s.Scale)
	}
	if intDigits := int64(len(significant)) + exponent; intDigits > int64(s.Precision-s.Scale) {
		return fmt.Errorf("must have at most %d digits in total with %d after the decimal point", s.Precision, s.Scale)
	}
	return nil
}
