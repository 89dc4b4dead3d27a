package scoring

import (
	"scorecard/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func types(findings []Finding) []AlertType {
	out := make([]AlertType, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Type)
	}
	return out
}

func TestInspectSubmissionScratchHeuristics(t *testing.T) {
	assert.Equal(t, []AlertType{ParWithScratch}, types(InspectSubmission(3, 2, 1, nil)))
	assert.Equal(t, []AlertType{BelowParWithScratch}, types(InspectSubmission(3, 1, 1, nil)))
	assert.Empty(t, InspectSubmission(3, 3, 1, nil))
	assert.Empty(t, InspectSubmission(3, 1, 0, nil), "no scratch, no scratch alert")
	assert.Empty(t, InspectSubmission(0, 0, 1, nil), "unset par is ignored")
	assert.Equal(t, SeverityHigh, BelowParWithScratch.Severity())
	assert.Equal(t, SeverityMedium, ParWithScratch.Severity())
}

func TestInspectSubmissionScoreReduction(t *testing.T) {
	previous := &repository.HoleScore{Par: 4, Strokes: 5, Scratches: 1, Penalties: 2}
	assert.Equal(t, []AlertType{ScoreReduction}, types(InspectSubmission(4, 5, 0, previous)))
	assert.Empty(t, InspectSubmission(4, 6, 0, previous), "equal total is not a reduction")
	assert.Empty(t, InspectSubmission(4, 7, 0, previous))

	both := InspectSubmission(4, 3, 1, previous)
	assert.Equal(t, []AlertType{ParWithScratch, ScoreReduction}, types(both))
}
