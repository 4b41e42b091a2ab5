package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportAnalysisPromptInterpolatesNameAndContent(t *testing.T) {
	prompt := ReportAnalysisPrompt("blood_work.pdf", "BP 120/80")

	assert.Contains(t, prompt, "blood_work.pdf")
	assert.Contains(t, prompt, "BP 120/80")
	assert.Contains(t, prompt, "**Summary**")
	assert.Contains(t, prompt, "**Key Metrics**")
	assert.Contains(t, prompt, "**Potential Concerns**")
	assert.Contains(t, prompt, "**Recommendations**")
}

func TestReportAnalysisPromptPassesContentThroughUnchanged(t *testing.T) {
	long := strings.Repeat("lab value 42; ", 10000)
	prompt := ReportAnalysisPrompt("big.txt", long)

	// No truncation or sanitization of interpolated content.
	assert.Contains(t, prompt, long)
}

func TestSymptomAdvicePromptInterpolatesMessage(t *testing.T) {
	prompt := SymptomAdvicePrompt("persistent headache and nausea")

	assert.Contains(t, prompt, `"persistent headache and nausea"`)
	assert.Contains(t, prompt, "**Symptoms:**")
	assert.Contains(t, prompt, "**Home Remedies:**")
	assert.Contains(t, prompt, "**Dietary Advice:**")
	assert.Contains(t, prompt, "**Other Relevant Information:**")
}

func TestPromptTemplatesAreDistinct(t *testing.T) {
	symptom := SymptomAdvicePrompt("sore throat")
	report := ReportAnalysisPrompt("report.pdf", "sore throat")

	assert.NotContains(t, symptom, "**Key Metrics**")
	assert.NotContains(t, report, "**Symptoms:**")
}
