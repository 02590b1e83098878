package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"loan-schedule/domain"
)

const (
	fieldAmount = "loan amount"
	fieldRate   = "annual interest rate"
	fieldTerm   = "loan term in months"
)

// Prompter asks for loan terms on an interactive console.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadLoanTerms prompts for the amount, the annual rate in percent and the
// term in months, in that order.
func (p *Prompter) ReadLoanTerms() (domain.LoanTerms, error) {
	amount, err := p.readFloat(fieldAmount)
	if err != nil {
		return domain.LoanTerms{}, err
	}

	rate, err := p.readFloat(fieldRate + " (%)")
	if err != nil {
		return domain.LoanTerms{}, err
	}

	term, err := p.readInt(fieldTerm)
	if err != nil {
		return domain.LoanTerms{}, err
	}

	return domain.LoanTerms{
		Principal:         amount,
		AnnualRatePercent: rate,
		TermMonths:        term,
	}, nil
}

func (p *Prompter) readFloat(field string) (float64, error) {
	input, err := p.ask(field)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Input: input, Err: err}
	}
	return value, nil
}

func (p *Prompter) readInt(field string) (int, error) {
	input, err := p.ask(field)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ParseError{Field: field, Input: input, Err: err}
	}
	return value, nil
}

func (p *Prompter) ask(field string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "Enter %s: ", field); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	if !p.in.Scan() {
		err := p.in.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", &ParseError{Field: field, Err: err}
	}

	return strings.TrimSpace(p.in.Text()), nil
}
