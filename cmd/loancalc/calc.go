package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/loancalc-go/internal/cache"
	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/calculator"
	"github.com/cloud-ru/loancalc-go/internal/service"
)

// сообщение уже напечатано, причина по полю остается в логах
var errInvalidInput = eris.New("invalid input")

var (
	calcAmount string
	calcRate   string
	calcTerm   string
)

func addLoanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&calcAmount, "amount", "", "loan amount")
	cmd.Flags().StringVar(&calcRate, "rate", "", "annual interest rate, percent")
	cmd.Flags().StringVar(&calcTerm, "term", "", "term in years")
}

func loanInputs() calculations.CalculatorInputs {
	return calculations.CalculatorInputs{
		AmountText:      calcAmount,
		RatePercentText: calcRate,
		TermYearsText:   calcTerm,
	}
}

// CLI считает без кэша: процесс живет один расчет
func cliService() *service.Service {
	return service.New(cache.Nop{}, noop.NewTracerProvider().Tracer("loancalc"))
}

var calcCmd = &cobra.Command{
	Use:           "calc",
	Short:         "Compute the monthly payment",
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		widget := calculator.New()
		widget.SetInputs(loanInputs())
		result := cliService().Calculate(cmd.Context(), service.SourceCLI, widget.Inputs())
		widget.Apply(result)

		fmt.Fprintln(cmd.OutOrStdout(), widget.Render())
		if !result.OK() {
			return errInvalidInput
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the monthly amortization schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := cliService().Schedule(cmd.Context(), service.SourceCLI, loanInputs())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "month\tpayment\tinterest\tprincipal\tremaining\t")
		for _, e := range result.Schedule {
			fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
				e.Month, e.Payment, e.Interest, e.PrincipalComponent, e.RemainingPrincipal)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		s := result.Summary
		fmt.Fprintf(cmd.OutOrStdout(), "Monthly Payment: $%.2f\nTotal Paid: $%.2f\nTotal Interest: $%.2f\n",
			s.MonthlyPayment, s.TotalPaid, s.TotalInterest)
		return nil
	},
}

func init() {
	addLoanFlags(calcCmd)
	addLoanFlags(scheduleCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(scheduleCmd)
}
