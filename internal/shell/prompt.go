package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/bikeshare"
	"github.com/nao1215/bikeshare/domain/model"
)

// errEndOfInput is returned when the input stream is exhausted
var errEndOfInput = errors.New("shell: end of input")

// filterKind is the answer to the "filter by" question
type filterKind string

const (
	filterMonth filterKind = "month"
	filterDay   filterKind = "day"
	filterBoth  filterKind = "both"
	filterNone  filterKind = "none"
)

// readLine prints prompt and returns the next input line without the newline
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return "", errEndOfInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask repeats prompt until parse accepts the answer
func ask[T any](s *Shell, prompt, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.out, "\nInvalid input, please enter again. %s\n", invalid)
	}
}

// askCity prompts for a city
func (s *Shell) askCity() (bikeshare.City, error) {
	return ask(s,
		"\nWould you like to see data for Chicago, New York, or Washington? ",
		"Valid inputs are 'Chicago', 'New York', 'Washington'.",
		bikeshare.ParseCity,
	)
}

// askFilterKind prompts for the kind of time filter
func (s *Shell) askFilterKind() (filterKind, error) {
	return ask(s,
		"\nWould you like to filter the data by month, day, both, or not at all? Type 'None' for no time filter. ",
		"Valid inputs are 'month', 'day', 'both', 'none'.",
		func(line string) (filterKind, error) {
			switch k := filterKind(strings.ToLower(line)); k {
			case filterMonth, filterDay, filterBoth, filterNone:
				return k, nil
			}
			return "", errors.New("unknown filter kind")
		},
	)
}

// askMonth prompts for a month name
func (s *Shell) askMonth() (time.Month, error) {
	return ask(s,
		"\nWhich month? January, February, March, April, May, June, ... December ",
		"Valid inputs are month names such as 'january' or 'jun'.",
		model.ParseMonth,
	)
}

// askDay prompts for a day of week
func (s *Shell) askDay() (model.Weekday, error) {
	return ask(s,
		"\nWhich day? Please type your response as an integer (e.g. 0 = Monday, 6 = Sunday) ",
		"Valid inputs are integers from 0 to 6.",
		model.ParseWeekday,
	)
}

// askYesNo prompts until the answer is yes or no
func (s *Shell) askYesNo(prompt string) (bool, error) {
	return ask(s, prompt, `Please enter "yes" or "no".`, func(line string) (bool, error) {
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		return false, errors.New("not yes or no")
	})
}

// askFilter runs the filter questions and builds the filter
func (s *Shell) askFilter() (model.Filter, error) {
	filter := model.NewFilter()

	kind, err := s.askFilterKind()
	if err != nil {
		return filter, err
	}

	if kind == filterMonth || kind == filterBoth {
		month, err := s.askMonth()
		if err != nil {
			return filter, err
		}
		filter = filter.WithMonth(month)
	}
	if kind == filterDay || kind == filterBoth {
		day, err := s.askDay()
		if err != nil {
			return filter, err
		}
		filter = filter.WithDay(day)
	}
	return filter, nil
}
