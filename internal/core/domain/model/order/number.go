package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"scribeassist/internal/pkg/errs"
)

// NumberPrefix is the fixed marker every order number starts with.
const NumberPrefix = "SA"

// numberSuffixLength is the length of the random base36 tail.
const numberSuffixLength = 4

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var numberPattern = regexp.MustCompile(`^SA-[0-9A-Z]+-[0-9A-Z]{4}$`)

// Number is the short human-readable order identifier shown to customers,
// format "SA-<base36 timestamp>-<4 random base36 chars>", uppercase.
//
// The timestamp part makes numbers roughly sortable by creation time. The
// format is not collision-proof by construction: two calls in the same
// millisecond can only differ in the 4-char random tail. The uniqueness
// constraint at the persistence layer is the actual guarantee; generation is
// "practically unique, verified by storage", and callers retry on conflict.
type Number string

// GenerateNumber produces a new candidate order number from the given
// creation time.
func GenerateNumber(at time.Time) Number {
	timestamp := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))

	suffix := make([]byte, numberSuffixLength)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}

	return Number(fmt.Sprintf("%s-%s-%s", NumberPrefix, timestamp, suffix))
}

// NumberFromString validates a stored order number representation.
func NumberFromString(s string) (Number, error) {
	n := Number(s)
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// String returns the wire representation.
func (n Number) String() string {
	return string(n)
}

// Validate checks the "SA-<base36>-<4 base36>" shape.
func (n Number) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match %s", n, numberPattern),
		)
	}
	return nil
}
