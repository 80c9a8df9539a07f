// Package calculator держит состояние виджета калькулятора: текст полей и последний результат.
// Изменение полей никогда не пересчитывает результат, пересчет выполняет только Calculate.
package calculator

import (
	"github.com/cloud-ru/loancalc-go/internal/calculations"
)

// State наблюдаемое состояние виджета
type State int

const (
	// StateEdited поля можно менять, последний результат (если был) остается на экране
	StateEdited State = iota
	// StateComputed сразу после Calculate
	StateComputed
)

func (s State) String() string {
	if s == StateComputed {
		return "computed"
	}
	return "edited"
}

// Widget владеет вводом пользователя и последним результатом. Не потокобезопасен.
type Widget struct {
	inputs calculations.CalculatorInputs
	result *calculations.CalculationResult
	state  State
}

// New создает виджет с пустыми полями
func New() *Widget {
	return &Widget{state: StateEdited}
}

// SetAmount меняет поле суммы кредита
func (w *Widget) SetAmount(text string) {
	w.inputs.AmountText = text
	w.state = StateEdited
}

// SetRate меняет поле годовой ставки в процентах
func (w *Widget) SetRate(text string) {
	w.inputs.RatePercentText = text
	w.state = StateEdited
}

// SetTerm меняет поле срока в годах
func (w *Widget) SetTerm(text string) {
	w.inputs.TermYearsText = text
	w.state = StateEdited
}

// SetInputs заменяет все три поля разом
func (w *Widget) SetInputs(in calculations.CalculatorInputs) {
	w.inputs = in
	w.state = StateEdited
}

// Inputs возвращает текущий текст полей
func (w *Widget) Inputs() calculations.CalculatorInputs {
	return w.inputs
}

// State возвращает текущее состояние
func (w *Widget) State() State {
	return w.state
}

// Calculate пересчитывает результат по текущим полям и заменяет предыдущий
func (w *Widget) Calculate() calculations.CalculationResult {
	result := calculations.Calculate(w.inputs)
	w.Apply(result)
	return result
}

// Apply показывает результат, полученный для текущих полей вне виджета (например, из кэша)
func (w *Widget) Apply(result calculations.CalculationResult) {
	w.result = &result
	w.state = StateComputed
}

// Result возвращает последний результат, false если Calculate еще не вызывался
func (w *Widget) Result() (calculations.CalculationResult, bool) {
	if w.result == nil {
		return calculations.CalculationResult{}, false
	}
	return *w.result, true
}

// View то, что показывает виджет: строка результата или ошибка, но не оба сразу
type View struct {
	Inputs  calculations.CalculatorInputs
	Payment string
	Result  string
	Error   string
}

// View собирает отображение текущего состояния
func (w *Widget) View() View {
	v := View{Inputs: w.inputs}
	if w.result == nil {
		return v
	}
	if w.result.OK() {
		v.Payment = w.result.Success.MonthlyPayment.StringFixed(2)
		v.Result = w.result.Display()
	} else {
		v.Error = w.result.Display()
	}
	return v
}

// Render возвращает текст, который видит пользователь
func (w *Widget) Render() string {
	v := w.View()
	if v.Error != "" {
		return v.Error
	}
	return v.Result
}
