package calculations

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// MaxScheduleMonths ограничивает длину графика платежей (100 лет)
const MaxScheduleMonths = 1200

// ErrFractionalTerm срок не дает целого числа ежемесячных платежей
var ErrFractionalTerm = eris.New("schedule: term must be a whole number of months")

// ErrScheduleTooLong график превышает MaxScheduleMonths
var ErrScheduleTooLong = eris.New("schedule: term is too long")

// ErrScheduleTooShort срок короче одного месяца
var ErrScheduleTooShort = eris.New("schedule: term must be at least one month")

// ErrScheduleOverflow суммы графика не помещаются в float64
var ErrScheduleOverflow = eris.New("schedule: amounts are too large")

// AmortizationSchedule рассчитывает график аннуитетного кредита.
// Параметры должны пройти Validate.
func AmortizationSchedule(params ParsedLoanParameters) (*ScheduleResult, error) {
	rounded := math.Round(params.NumPayments)
	if math.Abs(params.NumPayments-rounded) > 1e-9 {
		return nil, ErrFractionalTerm
	}
	if rounded < 1 {
		return nil, ErrScheduleTooShort
	}
	if rounded > MaxScheduleMonths {
		return nil, ErrScheduleTooLong
	}

	P := params.Principal
	n := int(rounded)
	r := params.MonthlyRate

	monthlyPayment := MonthlyPayment(ParsedLoanParameters{Principal: P, MonthlyRate: r, NumPayments: rounded})
	// Round2 умножает на 100, итоговая сумма не больше monthlyPayment*n
	if !finiteCents(P, monthlyPayment, monthlyPayment*rounded, params.AnnualRatePercent()) {
		return nil, ErrScheduleOverflow
	}

	schedule := make([]ScheduleEntry, 0, n)
	remaining := P
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		monthly := monthlyPayment

		// последний платеж гасит остаток целиком, включая накопленную ошибку округления
		if m == n {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		monthly = utils.Round2(monthly)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + monthly)

		if !finiteCents(remaining, cumI, totalPaid) {
			return nil, ErrScheduleOverflow
		}
		if remaining < -0.01 {
			return nil, eris.Errorf("schedule: remaining principal became negative in month %d", m)
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             monthly,
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  math.Max(remaining, 0),
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	summary := LoanSummary{
		Principal:         utils.Round2(P),
		AnnualRatePercent: utils.Round2(params.AnnualRatePercent()),
		Months:            n,
		MonthlyPayment:    utils.Round2(monthlyPayment),
		TotalPaid:         totalPaid,
		TotalInterest:     cumI,
	}

	return &ScheduleResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}

func finiteCents(values ...float64) bool {
	for _, v := range values {
		if !utils.IsFinite(v * 100) {
			return false
		}
	}
	return true
}

// CalculateSchedule разбирает поля калькулятора и строит график платежей.
// Ошибка валидации оборачивает validators.ErrInvalidLoanInput.
func CalculateSchedule(in CalculatorInputs) (*ScheduleResult, error) {
	params := ParseLoanParameters(in)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return AmortizationSchedule(params)
}
