package logging

// ActivityEvent names a user-visible poster action.
type ActivityEvent string

const (
	ActivityReveal  ActivityEvent = "reveal"
	ActivityHide    ActivityEvent = "hide"
	ActivityShare   ActivityEvent = "share"
	ActivityDone    ActivityEvent = "done"
	ActivityUndone  ActivityEvent = "undone"
	ActivityReload  ActivityEvent = "reload"
	ActivityReached ActivityEvent = "reached"
)

// Activity records one action in the activity log. keysAndValues are
// alternating field names and values, as for zap's Infow.
//
// The activity log follows the same debug-mode and category switches as
// every other category, so it is silent unless logging is enabled.
func Activity(event ActivityEvent, keysAndValues ...interface{}) {
	l := Get(CategoryActivity)
	if l.logger == nil {
		return
	}
	l.logger.Infow(string(event), append([]interface{}{"event", string(event)}, keysAndValues...)...)
}
