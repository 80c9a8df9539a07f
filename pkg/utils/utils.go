package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// ParseNumber разбирает текст поля ввода как десятичное число.
// Пустая или нечисловая строка дает NaN, а не ошибку.
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// Money округляет сумму до копеек (half away from zero)
func Money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

// FormatFixed2 форматирует сумму ровно с двумя знаками после точки, без разделителей разрядов
func FormatFixed2(value decimal.Decimal) string {
	return value.StringFixed(2)
}
