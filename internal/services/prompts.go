package services

import "fmt"

// Prompt templates are fixed; only user content is interpolated. No
// truncation or sanitization happens here — input is passed through
// unchanged, however long.

const reportAnalysisTemplate = `Analyze the following medical report/text content from '%s' and provide:
1. **Summary**: Brief overview of the findings
2. **Key Metrics**: Important values and their significance
3. **Potential Concerns**: Any abnormal values or findings
4. **Recommendations**: Suggested next steps or actions

Report content: %s`

const symptomAdviceTemplate = `The user is describing a health issue. Provide comprehensive information based on their description, covering the following aspects clearly and concisely, using markdown for readability:
1.  **Symptoms:** List the symptoms associated with the described issue.
2.  **Possible Diseases/Conditions:** Suggest potential diseases or conditions that match the symptoms.
3.  **Home Remedies:** Suggest what action or food item can be taken at home to cure or feel better according to the disease.
4.  **Dietary Advice:** Recommend what can be eaten or avoided to help manage or cure the condition.
5.  **Medicines (General Advice):** Provide general types of over-the-counter or common medicines that might be used (stressing this is not medical advice and a doctor should be consulted).
6.  **Exercises/Activities:** Suggest exercises or activities that could be beneficial, or those to avoid.
7.  **Other Relevant Information:** Include any other important tips, precautions, or when to seek professional medical help.

User's health issue: "%s"`

// ReportAnalysisPrompt wraps extracted or plain text content (PDF, DOCX and
// text/plain uploads) in the report-analysis template.
func ReportAnalysisPrompt(fileName, content string) string {
	return fmt.Sprintf(reportAnalysisTemplate, fileName, content)
}

// SymptomAdvicePrompt wraps a free-form user message in the
// symptom-description template. Used when no file is attached.
func SymptomAdvicePrompt(message string) string {
	return fmt.Sprintf(symptomAdviceTemplate, message)
}
