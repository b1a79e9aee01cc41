package design

import (
	"fmt"
	"strings"
)

// genericRationale is returned when no intent signal triggered a clause.
const genericRationale = "Design choices selected to match emotional intent"

// Explain produces a short justification for the resolved choices, one clause
// per triggered intent signal, in dimension declaration order. Pure function.
func Explain(choices Choices, intent Intent) string {
	weight := strings.ToLower(intent.WeightFeeling)
	color := strings.ToLower(intent.ColorFeeling)
	size := strings.ToLower(intent.SizeImplication)

	var clauses []string
	if strings.Contains(weight, "droop") {
		clauses = append(clauses, fmt.Sprintf("The %s head shape conveys drooping and introspection", choices.HeadShape))
	}
	if strings.Contains(weight, "weighted") || strings.Contains(weight, "heavy") {
		clauses = append(clauses, fmt.Sprintf("The %s proportion grounds the character's weight", choices.BodyProportion))
	}
	if strings.Contains(color, "muted") {
		clauses = append(clauses, fmt.Sprintf("The %s palette reflects muted emotional tone", choices.ColorTriad))
	}
	if strings.Contains(size, "small") {
		clauses = append(clauses, fmt.Sprintf("The %s reflects vulnerability and intimacy", choices.SizeCategory))
	}

	if len(clauses) == 0 {
		return genericRationale
	}
	return strings.Join(clauses, "; ")
}
