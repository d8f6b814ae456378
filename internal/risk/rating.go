package risk

import (
	"fmt"
	"strings"

	"github.com/netposture/core/internal/models"
)

type Rating string

const (
	RatingStrong   Rating = "strong"
	RatingModerate Rating = "moderate"
	RatingWeak     Rating = "weak"
	RatingCritical Rating = "critical"
)

func RatingFor(score int) Rating {
	switch {
	case score >= 80:
		return RatingStrong
	case score >= 60:
		return RatingModerate
	case score >= 40:
		return RatingWeak
	default:
		return RatingCritical
	}
}

// LocalScore renders the score in the shape the report view consumes.
func (s Score) LocalScore() models.LocalScore {
	details := make([]string, 0, len(s.Adjustments))
	for _, a := range s.Adjustments {
		details = append(details, fmt.Sprintf("%s %s %+g", a.Stage, a.Name, a.Delta))
	}

	findings := make([]string, 0, len(s.Findings))
	for _, code := range s.Findings {
		findings = append(findings, describeFinding(code))
	}

	return models.LocalScore{
		Value:           s.Value,
		WeightRatio:     s.Components.Nodes,
		ConnectionRatio: s.Components.Edges,
		ControlDetails:  details,
		Findings:        findings,
		FindingCodes:    append([]string(nil), s.Findings...),
	}
}

func describeFinding(code string) string {
	kind, subject, _ := strings.Cut(code, ":")
	switch kind {
	case "missing_category":
		return fmt.Sprintf("No asset covers the critical category %s", subject)
	case "below_recommended":
		return fmt.Sprintf("Category %s is below its recommended strength", subject)
	case "missing_control":
		return fmt.Sprintf("Required control %s is absent", subject)
	case "low_weight_assets":
		return fmt.Sprintf("%s assets have a low security weight", subject)
	default:
		return code
	}
}
