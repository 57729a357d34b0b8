package report

import (
	"fmt"
	"io"
)

// insightsText is static narrative content. It is not derived from the
// computed statistics; it is illustrative commentary shipped with the
// report.
const insightsText = `Insights Summary:
  - The majority of employees fall into the "Fully Meets" performance
    category, with smaller groups above and below it.
  - Engagement survey results trend higher for employees with stronger
    performance scores, suggesting engagement and performance move
    together.
  - Salary shows a long right tail; a handful of highly paid roles sit
    well above the rest of the distribution.
  - Performance is broadly consistent across departments, with
    Production carrying the widest spread.
  - Performance distributions for male and female employees are
    comparable.

Recommendations:
  - Review the lowest-performing group for coaching or reassignment
    opportunities before the next review cycle.
  - Investigate drivers behind low engagement scores; they are the
    strongest early signal of slipping performance.
  - Track absence outliers individually rather than through
    department-level averages.`

// WriteInsights prints the static insight and recommendation block.
func WriteInsights(w io.Writer) {
	fmt.Fprintln(w, insightsText)
}
