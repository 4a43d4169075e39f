package order

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// AcademicLevel is the pricing tier of an order. It drives the base rate per
// page in the pricing engine.
type AcademicLevel int

const (
	// AcademicLevelUnknown represents an invalid or undefined level.
	AcademicLevelUnknown AcademicLevel = iota

	HighSchool
	Bachelor
	Master
	PhD
)

func getAcademicLevelStrings() map[AcademicLevel]string {
	return map[AcademicLevel]string{
		AcademicLevelUnknown: "unknown",
		HighSchool:           "high_school",
		Bachelor:             "bachelor",
		Master:               "master",
		PhD:                  "phd",
	}
}

// AcademicLevelFromString parses the wire representation of a level.
// Unrecognized values yield AcademicLevelUnknown and an error; callers that
// want the historical pricing fallback handle that themselves.
func AcademicLevelFromString(s string) (AcademicLevel, error) {
	for level, str := range getAcademicLevelStrings() {
		if str == s && level != AcademicLevelUnknown {
			return level, nil
		}
	}
	return AcademicLevelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"academic level",
		fmt.Errorf("%q is not a known academic level", s),
	)
}

// String returns the snake_case name used in APIs and storage.
func (l AcademicLevel) String() string {
	if s, ok := getAcademicLevelStrings()[l]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects AcademicLevelUnknown and out-of-range values.
func (l AcademicLevel) Validate() error {
	if l <= AcademicLevelUnknown || l > PhD {
		return errs.NewValueIsInvalidErrorWithCause(
			"academic level",
			fmt.Errorf("%d is not a valid academic level", l),
		)
	}
	return nil
}
