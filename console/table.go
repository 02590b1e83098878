package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"loan-schedule/domain"
)

// TableRenderer prints an amortization schedule as a text table.
type TableRenderer struct {
	out io.Writer
}

func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

func (r *TableRenderer) Render(schedule domain.AmortizationSchedule) error {
	if _, err := fmt.Fprintf(r.out, "Monthly payment: %s\n\n", money(schedule.MonthlyPayment)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Month", "Payment", "Interest", "Principal", "Balance"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	interestPaid, principalPaid := decimal.Zero, decimal.Zero
	for _, row := range schedule.Rows {
		interestPaid = interestPaid.Add(row.Interest)
		principalPaid = principalPaid.Add(row.Principal)
		table.Append([]string{
			strconv.Itoa(row.Month),
			money(row.Payment),
			money(row.Interest),
			money(row.Principal),
			money(row.RemainingBalance),
		})
	}

	table.SetFooter([]string{
		"Total",
		money(schedule.TotalPayment),
		money(interestPaid),
		money(principalPaid),
		"",
	})
	table.Render()

	return nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
