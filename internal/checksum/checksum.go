// =============================================================================
// CSV to PDF Card Generator - Check Digit Module
// =============================================================================
//
// This module computes the weighted mod-10 check digit appended to every
// number before it is barcode-encoded. Positions are indexed 0-based from
// the LEFT of the string: even positions carry weight 1, odd positions carry
// weight 3. For the 12-digit payloads this program produces, the result is
// identical to the GS1 EAN-13 check digit.
//
// The functions here are pure; the check digit is never stored, it is
// recomputed on every use.
//
// =============================================================================

package checksum

import (
	"errors"
	"fmt"
)

// ErrInvalidNumber is returned when the input is empty or contains
// characters other than ASCII decimal digits.
var ErrInvalidNumber = errors.New("number must be a non-empty string of decimal digits")

// =============================================================================
// CHECK DIGIT COMPUTATION
// =============================================================================

// Compute returns the check digit (0-9) for the given digit string.
//
// PARAMETERS:
//   - number: The numeric payload, ASCII digits only.
//
// RETURNS:
//   - The check digit in the range [0, 9].
//   - ErrInvalidNumber if the input is empty or not all digits.
func Compute(number string) (int, error) {
	if number == "" {
		return 0, fmt.Errorf("empty input: %w", ErrInvalidNumber)
	}

	sumEven := 0 // positions 0, 2, 4, ...
	sumOdd := 0  // positions 1, 3, 5, ...
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("character %q at position %d: %w", c, i, ErrInvalidNumber)
		}
		d := int(c - '0')
		if i%2 == 0 {
			sumEven += d
		} else {
			sumOdd += d
		}
	}

	return (10 - (sumEven+3*sumOdd)%10) % 10, nil
}

// Append returns the encoded number: the payload with its check digit
// appended. This is the string actually given to the barcode encoder.
func Append(number string) (string, error) {
	digit, err := Compute(number)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", number, digit), nil
}
