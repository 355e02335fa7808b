package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/yndnr/sortbench/internal/core/domain"
)

// Prompt texts.
const (
	SizePrompt       = "Enter problem size: "
	IterationsPrompt = "Enter number of iterations: "
)

// Prompter asks questions on output and reads answers from input.
type Prompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

// NewWithIO creates a Prompter on the given streams.
func NewWithIO(input io.Reader, output io.Writer) *Prompter {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)
	return &Prompter{
		scanner: scanner,
		output:  output,
	}
}

// Int prints question and reads one integer token.
func (p *Prompter) Int(question string) (int, error) {
	fmt.Fprint(p.output, question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		return 0, domain.ErrUnexpectedEOF
	}

	token := p.scanner.Text()
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, domain.ErrMalformedNumber.WithDetails(strconv.Quote(token)).WithCause(err)
	}
	return n, nil
}

// Size asks for the problem size. Zero is allowed.
func (p *Prompter) Size() (int, error) {
	n, err := p.Int(SizePrompt)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, domain.ErrInvalidSize.WithDetails("got " + strconv.Itoa(n))
	}
	return n, nil
}

// Iterations asks for the iteration count, which must be at least 1.
func (p *Prompter) Iterations() (int, error) {
	n, err := p.Int(IterationsPrompt)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, domain.ErrInvalidIterations.WithDetails("got " + strconv.Itoa(n))
	}
	return n, nil
}
