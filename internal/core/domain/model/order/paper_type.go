package order

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// PaperType classifies the kind of work an order asks for. It has no pricing
// effect; it exists for routing and reporting in the back office.
type PaperType int

const (
	PaperTypeUnknown PaperType = iota

	Essay
	ResearchPaper
	Dissertation
	Thesis
	Coursework
	OtherPaper
)

func getPaperTypeStrings() map[PaperType]string {
	return map[PaperType]string{
		PaperTypeUnknown: "unknown",
		Essay:            "essay",
		ResearchPaper:    "research_paper",
		Dissertation:     "dissertation",
		Thesis:           "thesis",
		Coursework:       "coursework",
		OtherPaper:       "other",
	}
}

// PaperTypeFromString parses the wire representation of a paper type.
func PaperTypeFromString(s string) (PaperType, error) {
	for pt, str := range getPaperTypeStrings() {
		if str == s && pt != PaperTypeUnknown {
			return pt, nil
		}
	}
	return PaperTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paper type",
		fmt.Errorf("%q is not a known paper type", s),
	)
}

// String returns the snake_case name used in APIs and storage.
func (p PaperType) String() string {
	if s, ok := getPaperTypeStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects PaperTypeUnknown and out-of-range values.
func (p PaperType) Validate() error {
	if p <= PaperTypeUnknown || p > OtherPaper {
		return errs.NewValueIsInvalidErrorWithCause(
			"paper type",
			fmt.Errorf("%d is not a valid paper type", p),
		)
	}
	return nil
}
