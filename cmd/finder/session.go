package main

import (
	"bufio"
	"business-finder/internal/domain"
	"business-finder/internal/render"
	"business-finder/internal/services"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultKeyword   = "animal feed"
	defaultLocation  = "Grants Pass, Oregon"
	defaultRadius    = "5"
	defaultThreshold = "10"
)

var validate = validator.New()

type searcher interface {
	Find(ctx context.Context, req services.FindBusinessesRequest) (*domain.SearchReport, error)
}

// session is one interactive search: prompt, search, render.
type session struct {
	in     io.Reader
	out    io.Writer
	finder searcher
	policy domain.ReviewPolicy

	scanner *bufio.Scanner
}

func (s *session) run(ctx context.Context) error {
	s.scanner = bufio.NewScanner(s.in)

	keyword, err := s.askText("Enter a search term (e.g., 'horse products', 'animal feed')", defaultKeyword)
	if err != nil {
		return err
	}
	location, err := s.askText("Enter the city and state (e.g., 'Grants Pass, OR')", defaultLocation)
	if err != nil {
		return err
	}
	radius, err := s.askNumber("Select search radius in miles (1-30)", defaultRadius, radiusRule)
	if err != nil {
		return err
	}

	thresholdLabel := "Minimum number of reviews"
	if s.policy == domain.ReviewPolicyMax {
		thresholdLabel = "Maximum number of reviews"
	}
	threshold, err := s.askNumber(thresholdLabel, defaultThreshold, thresholdRule)
	if err != nil {
		return err
	}
	exportPath, err := s.askText("Save results to an .xlsx file (leave blank to skip)", "")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Searching for businesses...")
	report, err := s.finder.Find(ctx, services.FindBusinessesRequest{
		Keyword:     keyword,
		Location:    location,
		RadiusMiles: radius,
		Filter:      domain.ReviewFilter{Policy: s.policy, Threshold: int(threshold)},
	})
	if err != nil {
		var ge *domain.GeocodeError
		if errors.As(err, &ge) {
			fmt.Fprintln(s.out, ge.UserMessage())
			return nil
		}
		return err
	}

	if err := render.Report(s.out, report); err != nil {
		return err
	}

	if exportPath != "" && len(report.Results) > 0 {
		if err := render.SaveWorkbook(exportPath, report.Results); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Saved %d businesses to %s\n", len(report.Results), exportPath)
	}
	return nil
}

// readLine returns the next trimmed input line; at end of input it returns "".
func (s *session) readLine() (string, error) {
	if s.scanner.Scan() {
		return strings.TrimSpace(s.scanner.Text()), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", nil
}

func (s *session) askText(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}

	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// numberRule constrains a numeric answer. Hint is shown when an answer is rejected.
type numberRule struct {
	tag   string
	hint  string
	whole bool
}

var (
	radiusRule    = numberRule{tag: "gte=1,lte=30", hint: "enter a number from 1 to 30"}
	thresholdRule = numberRule{tag: "gte=0", hint: "enter a whole number 0 or greater", whole: true}
)

func (r numberRule) parse(answer string) (float64, error) {
	if r.whole {
		n, err := strconv.Atoi(answer)
		if err != nil {
			return 0, err
		}
		return float64(n), validate.Var(n, r.tag)
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, err
	}
	return v, validate.Var(v, r.tag)
}

// askNumber prompts until the answer parses and satisfies the rule.
func (s *session) askNumber(label, def string, rule numberRule) (float64, error) {
	const maxAttempts = 3

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		answer, err := s.askText(label, def)
		if err != nil {
			return 0, err
		}

		v, err := rule.parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.out, "Invalid value %q: %s.\n", answer, rule.hint)
	}
	return 0, fmt.Errorf("no valid answer for %q after %d attempts", label, maxAttempts)
}
