package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Reward engine metric names
const (
	MetricNameSpinsStarted       = "spins_started_total"
	MetricNameSpinsSettled       = "spins_settled_total"
	MetricNameRewardsClaimed     = "rewards_claimed_total"
	MetricNameRewardsForfeited   = "rewards_forfeited_total"
	MetricNamePointsCredited     = "points_credited_total"
	MetricNamePointsDebited      = "points_debited_total"
	MetricNameRegistrations      = "event_registrations_total"
	MetricNameItemsRedeemed      = "items_redeemed_total"
	MetricNameValidationFailures = "validation_failures_total"
	MetricNameChatRequests       = "chat_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Reward engine metric help text
const (
	HelpTextSpinsStarted       = "Total number of bonus spins started"
	HelpTextSpinsSettled       = "Total number of bonus spins settled to a prize"
	HelpTextRewardsClaimed     = "Total number of pending rewards claimed"
	HelpTextRewardsForfeited   = "Total number of pending rewards forfeited"
	HelpTextPointsCredited     = "Total bonus points credited to ledgers"
	HelpTextPointsDebited      = "Total bonus points debited from ledgers"
	HelpTextRegistrations      = "Total number of festival event registrations"
	HelpTextItemsRedeemed      = "Total number of reward items redeemed"
	HelpTextValidationFailures = "Total number of user-correctable validation failures"
	HelpTextChatRequests       = "Total number of festival assistant requests"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelType      = "type"
	LabelCategory  = "category"
	LabelItem      = "item"
	LabelPrize     = "prize"
	LabelComponent = "component"
	LabelStatus    = "status"
)

// Chat request status label values
const (
	ChatStatusOK       = "ok"
	ChatStatusError    = "error"
	ChatStatusDisabled = "disabled"
)
