package analytics

import (
	"testing"

	"pnl_tracker/internal/domain"
)

func findAlert(alerts []domain.Alert, rule string) (domain.Alert, bool) {
	for _, a := range alerts {
		if a.Rule == rule {
			return a, true
		}
	}
	return domain.Alert{}, false
}

func derivedSeries(pcts ...float64) []domain.DerivedEntry {
	out := make([]domain.DerivedEntry, 0, len(pcts))
	for i, p := range pcts {
		out = append(out, domain.DerivedEntry{HasPrevious: i > 0, PnLPercentage: p})
	}
	return out
}

func TestGoalRules(t *testing.T) {
	rules := DefaultAlertRules(DefaultAlertSettings())

	alerts := EvaluateAlerts(rules, AlertInput{Stats: domain.Stats{TotalBalance: 9700}, Currency: "EUR"})
	nearGoal, ok := findAlert(alerts, "goal_close")
	if !ok {
		t.Fatalf("expected goal_close alert, got %+v", alerts)
	}
	if nearGoal.Value != 300 || nearGoal.Priority != domain.AlertPriorityHigh {
		t.Fatalf("unexpected goal_close alert %+v", nearGoal)
	}
	achieved, ok := findAlert(alerts, "goal_achieved")
	if !ok || achieved.Value != 4700 {
		t.Fatalf("expected goal_achieved with 4700 excess over 5000, got %+v", achieved)
	}

	alerts = EvaluateAlerts(rules, AlertInput{Stats: domain.Stats{TotalBalance: 7000}})
	if _, ok := findAlert(alerts, "goal_close"); ok {
		t.Fatalf("7000 is not within 5%% of 10000")
	}
}

func TestWinStreakRule(t *testing.T) {
	rules := DefaultAlertRules(DefaultAlertSettings())

	in := AlertInput{Recent: derivedSeries(0, -1, 2, 1.5, 0.3, 4)}
	streak, ok := findAlert(EvaluateAlerts(rules, in), "win_streak")
	if !ok || streak.Value != 4 {
		t.Fatalf("expected a 4 day streak, got %+v (ok=%v)", streak, ok)
	}

	in = AlertInput{Recent: derivedSeries(0, 1, 2, -0.5, 3, 4)}
	if _, ok := findAlert(EvaluateAlerts(rules, in), "win_streak"); ok {
		t.Fatalf("a 2 day run must not fire")
	}

	// Only the trailing 7 entries are considered.
	in = AlertInput{Recent: derivedSeries(0, 1, 1, 1, 1, 1, 1, 1, 1, 1)}
	streak, _ = findAlert(EvaluateAlerts(rules, in), "win_streak")
	if streak.Value != 7 {
		t.Fatalf("expected streak capped to window of 7, got %v", streak.Value)
	}
}

func TestRecoveryAndLossRules(t *testing.T) {
	rules := DefaultAlertRules(DefaultAlertSettings())

	stats := domain.Stats{TotalBalance: 800, DailyPnL: 50, TotalCapitalDeposited: 1000, HasCapital: true}
	rec, ok := findAlert(EvaluateAlerts(rules, AlertInput{Stats: stats}), "recovery")
	if !ok || rec.Value != 80 {
		t.Fatalf("expected recovery at 80%%, got %+v (ok=%v)", rec, ok)
	}

	stats = domain.Stats{TotalBalance: 4000, DailyPnL: -750, DailyPnLPercentage: -15.79}
	alerts := EvaluateAlerts(rules, AlertInput{Stats: stats})
	loss, ok := findAlert(alerts, "large_loss")
	if !ok || loss.Kind != domain.AlertKindWarning {
		t.Fatalf("expected large loss warning, got %+v", alerts)
	}
	if _, ok := findAlert(alerts, "recovery"); ok {
		t.Fatalf("recovery must not fire on a losing day")
	}
}

func TestMilestoneAndROIRules(t *testing.T) {
	rules := DefaultAlertRules(DefaultAlertSettings())

	stats := domain.Stats{TotalBalance: 10150, TotalCapitalDeposited: 9000, HasCapital: true, ROIVsCapital: 12.78}
	alerts := EvaluateAlerts(rules, AlertInput{Stats: stats})

	milestone, ok := findAlert(alerts, "milestone")
	if !ok || milestone.Value != 10000 {
		t.Fatalf("expected 10000 milestone, got %+v", milestone)
	}
	if _, ok := findAlert(alerts, "roi_double_digit"); !ok {
		t.Fatalf("expected roi alert, got %+v", alerts)
	}

	stats.TotalBalance = 10500
	if _, ok := findAlert(EvaluateAlerts(rules, AlertInput{Stats: stats}), "milestone"); ok {
		t.Fatalf("10500 is outside the 2%% band above 10000")
	}
}

func TestEvaluateAlertsOrdersByPriority(t *testing.T) {
	fire := func(title string) func(AlertInput) (domain.Alert, bool) {
		return func(AlertInput) (domain.Alert, bool) { return domain.Alert{Title: title}, true }
	}
	rules := []AlertRule{
		{Name: "a", Priority: domain.AlertPriorityLow, Evaluate: fire("a")},
		{Name: "b", Priority: domain.AlertPriorityHigh, Evaluate: fire("b")},
		{Name: "c", Priority: domain.AlertPriorityMedium, Evaluate: fire("c")},
		{Name: "d", Priority: domain.AlertPriorityHigh, Evaluate: fire("d")},
		{Name: "skip", Priority: domain.AlertPriorityHigh},
	}
	alerts := EvaluateAlerts(rules, AlertInput{})

	want := []string{"b", "d", "c", "a"}
	if len(alerts) != len(want) {
		t.Fatalf("expected %d alerts, got %d", len(want), len(alerts))
	}
	for i, name := range want {
		if alerts[i].Rule != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, alerts[i].Rule)
		}
	}
}

func TestFormatMoneyFallback(t *testing.T) {
	if got := formatMoney(12.5, "XYZ"); got != "12.50" {
		t.Fatalf("expected plain fallback, got %q", got)
	}
	if got := formatMoney(12.5, ""); got != "12.50" {
		t.Fatalf("expected plain fallback, got %q", got)
	}
}
