package prompt

import (
	"fmt"
	"strconv"
)

// Int accepts base 10 integers
func Int(answer string) error {
	_, err := strconv.Atoi(answer)
	if err != nil {
		return fmt.Errorf("%q is not an integer", answer)
	}
	return nil
}

// Choice returns a validator accepting integers in [0, n)
func Choice(n int) func(string) error {
	return func(answer string) error {
		i, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("%q is not an integer", answer)
		}
		if i < 0 || i >= n {
			return fmt.Errorf("%d is not in [0, %d)", i, n)
		}
		return nil
	}
}

// Optional accepts an empty answer, and otherwise defers to validate
func Optional(validate func(string) error) func(string) error {
	return func(answer string) error {
		if answer == "" {
			return nil
		}
		return validate(answer)
	}
}
