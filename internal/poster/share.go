package poster

import (
	"fmt"

	"dsaposter/internal/config"
)

// ComposeShareText formats the share message. It depends only on p.
func ComposeShareText(p config.PosterConfig) string {
	return fmt.Sprintf("🚀 Day %d – %s\nProblem: %s\nDeadline: Today %s\nJoin explainer at %s!",
		p.Day, p.Title, p.ProblemTitle, p.Deadline.Label(), p.Explainer.Label())
}

// DeadlineLabel is the caption of the deadline countdown.
func DeadlineLabel(p config.PosterConfig) string {
	return "⏳ Deadline – Today " + p.Deadline.Label()
}

// ExplainerLabel is the caption of the explainer countdown.
func ExplainerLabel(p config.PosterConfig) string {
	return "📖 Explanation – Today " + p.Explainer.Label()
}
