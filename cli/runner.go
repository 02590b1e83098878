package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"loan-schedule/domain"
	"loan-schedule/service"
)

type TermsReader interface {
	ReadLoanTerms() (domain.LoanTerms, error)
}

type ScheduleRenderer interface {
	Render(schedule domain.AmortizationSchedule) error
}

// Runner reads loan terms, builds the schedule and hands it to the renderers.
type Runner struct {
	reader TermsReader
	loans  *service.LoanService
	table  ScheduleRenderer
	chart  ScheduleRenderer
	log    *logrus.Logger
}

// NewRunner wires a Runner. chart may be nil when charts are disabled.
func NewRunner(
	reader TermsReader,
	loans *service.LoanService,
	table ScheduleRenderer,
	chart ScheduleRenderer,
	log *logrus.Logger,
) *Runner {
	return &Runner{
		reader: reader,
		loans:  loans,
		table:  table,
		chart:  chart,
		log:    log,
	}
}

func (r *Runner) Run() (domain.AmortizationSchedule, error) {
	terms, err := r.reader.ReadLoanTerms()
	if err != nil {
		return domain.AmortizationSchedule{}, fmt.Errorf("read loan terms: %w", err)
	}

	schedule, err := r.loans.BuildSchedule(terms)
	if err != nil {
		return domain.AmortizationSchedule{}, fmt.Errorf("build schedule: %w", err)
	}

	if err := r.table.Render(schedule); err != nil {
		return schedule, fmt.Errorf("print schedule: %w", err)
	}

	if r.chart != nil {
		// the chart is optional; a failure does not discard the schedule
		if err := r.chart.Render(schedule); err != nil {
			r.log.Warnf("Failed to render chart: %v", err)
		}
	}

	return schedule, nil
}
