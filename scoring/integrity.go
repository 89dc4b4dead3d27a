package scoring

import (
	"fmt"
	"scorecard/repository"
)

type AlertType string

const (
	BelowParWithScratch AlertType = "below_par_with_scratch"
	ParWithScratch      AlertType = "par_with_scratch"
	ScoreReduction      AlertType = "score_reduction"
	RapidScoring        AlertType = "rapid_scoring"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

var severities = map[AlertType]Severity{
	BelowParWithScratch: SeverityHigh,
	ParWithScratch:      SeverityMedium,
	ScoreReduction:      SeverityMedium,
	RapidScoring:        SeverityLow,
}

func (a AlertType) Severity() Severity {
	return severities[a]
}

type Finding struct {
	Type    AlertType
	Message string
}

// InspectSubmission runs the per-submission heuristics. previous is the stored score
// for the same hole before this write, or nil. Findings never affect the write itself.
func InspectSubmission(par, strokes, scratches int, previous *repository.HoleScore) []Finding {
	findings := make([]Finding, 0)
	total := strokes + scratches
	if scratches > 0 && par > 0 {
		if total < par {
			findings = append(findings, Finding{
				Type:    BelowParWithScratch,
				Message: fmt.Sprintf("%d strokes with %d scratch(es) is below par %d", strokes, scratches, par),
			})
		} else if total == par {
			findings = append(findings, Finding{
				Type:    ParWithScratch,
				Message: fmt.Sprintf("%d strokes with %d scratch(es) equals par %d", strokes, scratches, par),
			})
		}
	}
	// A director's correction looks the same as a self-serving edit here.
	if previous != nil {
		previousTotal := previous.Strokes + previous.Scratches
		if total < previousTotal {
			findings = append(findings, Finding{
				Type:    ScoreReduction,
				Message: fmt.Sprintf("score lowered from %d to %d", previousTotal, total),
			})
		}
	}
	return findings
}
