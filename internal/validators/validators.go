package validators

import (
	"errors"

	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// ErrInvalidLoanInput единственный вид ошибки валидации калькулятора
var ErrInvalidLoanInput = errors.New("invalid input")

// FieldError указывает, какое поле не прошло проверку. Используется только в логах и метриках.
type FieldError struct {
	Field string
	Value float64
}

func (e *FieldError) Error() string {
	return e.Field + ": " + ErrInvalidLoanInput.Error()
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidLoanInput
}

// ValidatePositiveNumber проверяет, что число конечное и строго положительное
func ValidatePositiveNumber(name string, value float64) error {
	if !utils.IsFinite(value) || value <= 0 {
		return &FieldError{Field: name, Value: value}
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(principal float64) error {
	return ValidatePositiveNumber("principal", principal)
}

// CheckMonthlyRate проверяет месячную ставку. Нулевая ставка отклоняется.
func CheckMonthlyRate(monthlyRate float64) error {
	return ValidatePositiveNumber("monthly_rate", monthlyRate)
}

// CheckNumPayments проверяет количество платежей
func CheckNumPayments(numPayments float64) error {
	return ValidatePositiveNumber("num_payments", numPayments)
}

// FieldOf возвращает имя поля из ошибки валидации или "unknown"
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return "unknown"
}
