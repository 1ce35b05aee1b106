package util

import "fmt"

const (
	decimalValue  = 100
	thousandValue = 1000
)

// FormatMoney renders cents with the given thousand and decimal separators,
// e.g. FormatMoney(1234567, ",", ".") == "12,345.67".
func FormatMoney(value int64, thousand, decimal string) string {
	var result string
	var isNegative bool

	if value < 0 {
		value *= -1
		isNegative = true
	}

	result = fmt.Sprintf("%s%02d%s", decimal, value%decimalValue, result)
	value /= decimalValue

	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", value, result)
	}

	return fmt.Sprintf("%d%s", value, result)
}
