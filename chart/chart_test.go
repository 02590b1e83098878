package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	"loan-schedule/domain"
)

func sampleSchedule() domain.AmortizationSchedule {
	payment := decimal.RequireFromString("340.02")
	return domain.AmortizationSchedule{
		Terms:          domain.LoanTerms{Principal: 1000, AnnualRatePercent: 12, TermMonths: 3},
		MonthlyPayment: payment,
		Rows: []domain.ScheduleRow{
			{Month: 1, Payment: payment, Interest: decimal.RequireFromString("10.00"), Principal: decimal.RequireFromString("330.02"), RemainingBalance: decimal.RequireFromString("669.98")},
			{Month: 2, Payment: payment, Interest: decimal.RequireFromString("6.70"), Principal: decimal.RequireFromString("333.32"), RemainingBalance: decimal.RequireFromString("336.66")},
			{Month: 3, Payment: payment, Interest: decimal.RequireFromString("3.37"), Principal: decimal.RequireFromString("336.65"), RemainingBalance: decimal.RequireFromString("0.01")},
		},
	}
}

func TestRender_WritesFile(t *testing.T) {
	for _, name := range []string{"schedule.png", "schedule.svg"} {
		t.Run(name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			path := filepath.Join(t.TempDir(), name)

			if err := NewRenderer(path, 6, 3, logger).Render(sampleSchedule()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("expected chart file: %v", err)
			}
			if info.Size() == 0 {
				t.Errorf("expected a non-empty chart file")
			}
			if hook.LastEntry() == nil {
				t.Errorf("expected the saved chart to be logged")
			}
		})
	}
}

func TestRender_EmptySchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "empty.png")

	err := NewRenderer(path, 6, 3, logger).Render(domain.AmortizationSchedule{})

	if !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file to be written")
	}
}

func TestRender_UnwritablePath(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "missing", "dir", "chart.png")

	if err := NewRenderer(path, 6, 3, logger).Render(sampleSchedule()); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
