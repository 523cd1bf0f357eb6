package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Bonus Game Metrics
var (
	SpinsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsStarted,
			Help: HelpTextSpinsStarted,
		},
	)

	SpinsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsSettled,
			Help: HelpTextSpinsSettled,
		},
		[]string{LabelPrize},
	)

	RewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
	)

	RewardsForfeited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsForfeited,
			Help: HelpTextRewardsForfeited,
		},
	)
)

// Ledger Metrics
var (
	PointsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsCredited,
			Help: HelpTextPointsCredited,
		},
	)

	PointsDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsDebited,
			Help: HelpTextPointsDebited,
		},
	)
)

// Registration and Redemption Metrics
var (
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRegistrations,
			Help: HelpTextRegistrations,
		},
		[]string{LabelCategory},
	)

	ItemsRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRedeemed,
			Help: HelpTextItemsRedeemed,
		},
		[]string{LabelItem},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailures,
			Help: HelpTextValidationFailures,
		},
		[]string{LabelComponent},
	)
)

// Chat Metrics
var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatRequests,
			Help: HelpTextChatRequests,
		},
		[]string{LabelStatus},
	)
)
