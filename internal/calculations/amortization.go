package calculations

import (
	"math"

	"github.com/cloud-ru/loancalc-go/internal/validators"
	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// ParseLoanParameters разбирает текст полей и выводит месячную ставку и число платежей
func ParseLoanParameters(in CalculatorInputs) ParsedLoanParameters {
	return ParsedLoanParameters{
		Principal:   utils.ParseNumber(in.AmountText),
		MonthlyRate: utils.ParseNumber(in.RatePercentText) / 100.0 / 12.0,
		NumPayments: utils.ParseNumber(in.TermYearsText) * 12.0,
	}
}

// Validate проверяет, что все параметры конечные и строго положительные
func (p ParsedLoanParameters) Validate() error {
	if err := validators.CheckPrincipal(p.Principal); err != nil {
		return err
	}
	if err := validators.CheckMonthlyRate(p.MonthlyRate); err != nil {
		return err
	}
	return validators.CheckNumPayments(p.NumPayments)
}

// MonthlyPayment считает фиксированный аннуитетный платеж без округления.
// Параметры должны пройти Validate.
func MonthlyPayment(p ParsedLoanParameters) float64 {
	r := p.MonthlyRate
	return (p.Principal * r) / (1.0 - math.Pow(1.0+r, -p.NumPayments))
}

// Calculate выполняет расчет ежемесячного платежа по тексту полей калькулятора.
// Функция чистая: одинаковый ввод всегда дает одинаковый результат.
func Calculate(in CalculatorInputs) CalculationResult {
	params := ParseLoanParameters(in)
	if err := params.Validate(); err != nil {
		return failure(err)
	}

	payment := MonthlyPayment(params)
	// ставка настолько мала, что 1+r == 1, или сумма переполняет float64
	if !utils.IsFinite(payment) {
		return failure(&validators.FieldError{Field: "monthly_payment", Value: payment})
	}

	return CalculationResult{
		Success: &Success{MonthlyPayment: utils.Money(payment)},
	}
}

func failure(err error) CalculationResult {
	return CalculationResult{
		Failure: &Failure{Message: InvalidInputMessage, Err: err},
	}
}
