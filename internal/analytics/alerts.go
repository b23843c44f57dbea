package analytics

import (
	"fmt"
	"sort"
	"strings"

	money "github.com/Rhymond/go-money"

	"pnl_tracker/internal/domain"
)

// AlertSettings holds the thresholds the smart alert rules compare against.
type AlertSettings struct {
	Goals         []float64
	GoalProximity float64
	StreakWindow  int
	MinStreak     int
	LargeLoss     float64
	Milestones    []float64
	MilestoneBand float64
	ROIMin        float64
	ROIMax        float64
}

func DefaultAlertSettings() AlertSettings {
	return AlertSettings{
		Goals:         []float64{5000, 10000, 15000, 25000, 50000, 100000},
		GoalProximity: 0.05,
		StreakWindow:  7,
		MinStreak:     3,
		LargeLoss:     500,
		Milestones:    []float64{1000, 2500, 5000, 7500, 10000, 15000, 20000, 25000, 50000, 100000},
		MilestoneBand: 0.02,
		ROIMin:        10,
		ROIMax:        100,
	}
}

// AlertInput is what every rule sees. Recent is ordered oldest first.
type AlertInput struct {
	Stats    domain.Stats
	Recent   []domain.DerivedEntry
	Currency string
}

// AlertRule pairs a predicate with the message it produces. Evaluate reports false when the rule
// does not fire; Name and Priority are stamped onto the alert by EvaluateAlerts.
type AlertRule struct {
	Name     string
	Priority domain.AlertPriority
	Evaluate func(in AlertInput) (domain.Alert, bool)
}

// DefaultAlertRules builds the standard rule battery from settings.
func DefaultAlertRules(s AlertSettings) []AlertRule {
	goals := sortedCopy(s.Goals)
	milestones := sortedCopy(s.Milestones)

	return []AlertRule{
		{Name: "goal_close", Priority: domain.AlertPriorityHigh, Evaluate: goalCloseRule(goals, s.GoalProximity)},
		{Name: "goal_achieved", Priority: domain.AlertPriorityMedium, Evaluate: goalAchievedRule(goals)},
		{Name: "win_streak", Priority: domain.AlertPriorityMedium, Evaluate: winStreakRule(s.StreakWindow, s.MinStreak)},
		{Name: "recovery", Priority: domain.AlertPriorityMedium, Evaluate: recoveryRule},
		{Name: "large_loss", Priority: domain.AlertPriorityHigh, Evaluate: largeLossRule(s.LargeLoss)},
		{Name: "milestone", Priority: domain.AlertPriorityMedium, Evaluate: milestoneRule(milestones, s.MilestoneBand)},
		{Name: "roi_double_digit", Priority: domain.AlertPriorityLow, Evaluate: roiRule(s.ROIMin, s.ROIMax)},
	}
}

// EvaluateAlerts runs every rule independently and orders the results by priority. Alerts of equal
// priority keep rule order.
func EvaluateAlerts(rules []AlertRule, in AlertInput) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(rules))
	for _, rule := range rules {
		if rule.Evaluate == nil {
			continue
		}
		alert, ok := rule.Evaluate(in)
		if !ok {
			continue
		}
		alert.Rule = rule.Name
		alert.Priority = rule.Priority
		alerts = append(alerts, alert)
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority.Rank() > alerts[j].Priority.Rank()
	})
	return alerts
}

func goalCloseRule(goals []float64, proximity float64) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		balance := in.Stats.TotalBalance
		if balance <= 0 {
			return domain.Alert{}, false
		}
		for _, goal := range goals {
			if balance >= goal {
				continue
			}
			if balance < goal*(1-proximity) {
				return domain.Alert{}, false
			}
			remaining := sub(goal, balance)
			return domain.Alert{
				Kind:    domain.AlertKindInfo,
				Title:   "Close to goal",
				Message: fmt.Sprintf("Only %s left to reach %s.", formatMoney(remaining, in.Currency), formatMoney(goal, in.Currency)),
				Value:   remaining,
			}, true
		}
		return domain.Alert{}, false
	}
}

func goalAchievedRule(goals []float64) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		balance := in.Stats.TotalBalance
		reached := -1.0
		for _, goal := range goals {
			if balance >= goal {
				reached = goal
			}
		}
		if reached < 0 {
			return domain.Alert{}, false
		}
		excess := sub(balance, reached)
		return domain.Alert{
			Kind:    domain.AlertKindSuccess,
			Title:   "Goal achieved",
			Message: fmt.Sprintf("%s goal reached, %s above target.", formatMoney(reached, in.Currency), formatMoney(excess, in.Currency)),
			Value:   excess,
		}, true
	}
}

func winStreakRule(window, minStreak int) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		recent := in.Recent
		if window > 0 && len(recent) > window {
			recent = recent[len(recent)-window:]
		}
		streak := 0
		for i := len(recent) - 1; i >= 0; i-- {
			if !recent[i].HasPrevious || recent[i].PnLPercentage <= 0 {
				break
			}
			streak++
		}
		if streak < minStreak {
			return domain.Alert{}, false
		}
		return domain.Alert{
			Kind:    domain.AlertKindSuccess,
			Title:   "Winning streak",
			Message: fmt.Sprintf("%d green days in a row.", streak),
			Value:   float64(streak),
		}, true
	}
}

func recoveryRule(in AlertInput) (domain.Alert, bool) {
	st := in.Stats
	baseline := 0.0
	switch {
	case st.HasCapital:
		baseline = st.TotalCapitalDeposited
	case st.HasStartingBalance:
		baseline = st.TotalStartingBalance
	}
	if baseline <= 0 || st.DailyPnL <= 0 || st.TotalBalance >= baseline {
		return domain.Alert{}, false
	}
	recovered := percentOf(st.TotalBalance, baseline)
	return domain.Alert{
		Kind:    domain.AlertKindInfo,
		Title:   "Recovery in progress",
		Message: fmt.Sprintf("Up %s today; balance is back to %.2f%% of %s.", formatMoney(st.DailyPnL, in.Currency), recovered, formatMoney(baseline, in.Currency)),
		Value:   recovered,
	}, true
}

func largeLossRule(threshold float64) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		if in.Stats.DailyPnL >= -threshold {
			return domain.Alert{}, false
		}
		return domain.Alert{
			Kind:    domain.AlertKindWarning,
			Title:   "Large daily loss",
			Message: fmt.Sprintf("Portfolio lost %s (%.2f%%) since the previous entry.", formatMoney(-in.Stats.DailyPnL, in.Currency), in.Stats.DailyPnLPercentage),
			Value:   in.Stats.DailyPnL,
		}, true
	}
}

func milestoneRule(milestones []float64, band float64) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		balance := in.Stats.TotalBalance
		for i := len(milestones) - 1; i >= 0; i-- {
			m := milestones[i]
			if balance >= m && balance < m*(1+band) {
				return domain.Alert{
					Kind:    domain.AlertKindSuccess,
					Title:   "Milestone crossed",
					Message: fmt.Sprintf("Portfolio just passed %s.", formatMoney(m, in.Currency)),
					Value:   m,
				}, true
			}
		}
		return domain.Alert{}, false
	}
}

func roiRule(lo, hi float64) func(AlertInput) (domain.Alert, bool) {
	return func(in AlertInput) (domain.Alert, bool) {
		roi := in.Stats.ROIVsCapital
		if !in.Stats.HasCapital || roi < lo || roi >= hi {
			return domain.Alert{}, false
		}
		return domain.Alert{
			Kind:    domain.AlertKindSuccess,
			Title:   "Double-digit ROI",
			Message: fmt.Sprintf("Return on deposited capital is %.2f%%.", roi),
			Value:   roi,
		}, true
	}
}

// formatMoney renders amount in the display currency, falling back to a plain number for codes
// go-money does not know.
func formatMoney(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || money.GetCurrency(code) == nil {
		return fmt.Sprintf("%.2f", amount)
	}
	return money.NewFromFloat(amount, code).Display()
}

func sortedCopy(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	return out
}
