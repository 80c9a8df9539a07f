package calculations

import (
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// InvalidInputMessage общее сообщение для всех причин отказа (пустое поле, не число, не положительное)
const InvalidInputMessage = "Please enter valid positive numbers."

// CalculatorInputs содержит текст трех полей калькулятора в том виде, в котором его ввел пользователь
type CalculatorInputs struct {
	AmountText      string `json:"amount"`
	RatePercentText string `json:"rate"`
	TermYearsText   string `json:"term"`
}

// ParsedLoanParameters производные параметры кредита
type ParsedLoanParameters struct {
	Principal   float64
	MonthlyRate float64
	NumPayments float64
}

// AnnualRatePercent восстанавливает годовую ставку в процентах
func (p ParsedLoanParameters) AnnualRatePercent() float64 {
	return p.MonthlyRate * 12.0 * 100.0
}

// Success успешный расчет
type Success struct {
	MonthlyPayment decimal.Decimal
}

// Failure отказ в расчете. Err хранит причину для логов, пользователю показывается только Message.
type Failure struct {
	Message string
	Err     error
}

// CalculationResult содержит ровно одно из полей Success или Failure
type CalculationResult struct {
	Success *Success
	Failure *Failure
}

// OK сообщает, что расчет успешен
func (r CalculationResult) OK() bool {
	return r.Success != nil
}

// Display возвращает строку для показа пользователю
func (r CalculationResult) Display() string {
	switch {
	case r.Success != nil:
		return "Monthly Payment: $" + utils.FormatFixed2(r.Success.MonthlyPayment)
	case r.Failure != nil:
		return r.Failure.Message
	default:
		return ""
	}
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            int     `json:"months"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// ScheduleResult представляет график аннуитетного кредита
type ScheduleResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}
