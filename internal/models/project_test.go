package models

import (
	"testing"
	"time"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name      string
		target    int
		collected int
		want      int
	}{
		{"half way", 20000, 10000, 50},
		{"rounding", 30000, 10000, 33},
		{"overfunded clamps to 100", 10000, 25000, 100},
		{"zero target", 0, 5000, 0},
		{"negative target", -100, 5000, 0},
		{"nothing collected", 10000, 0, 0},
	}
	for _, c := range cases {
		p := Project{TargetAmount: c.target, CollectedAmount: c.collected}
		if got := p.Progress(); got != c.want {
			t.Errorf("%s: Progress() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDaysLeftAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// 明天截止算 1 天
	tomorrow := now.Add(24 * time.Hour)
	p := Project{Deadline: &tomorrow}
	if got := p.DaysLeftAt(now); got != 1 {
		t.Errorf("deadline tomorrow: got %d days, want 1", got)
	}

	// 不足一天也向上取整为 1
	soon := now.Add(2 * time.Hour)
	p = Project{Deadline: &soon}
	if got := p.DaysLeftAt(now); got != 1 {
		t.Errorf("deadline in 2h: got %d days, want 1", got)
	}

	// 已过期归零，不出现负数
	past := now.Add(-48 * time.Hour)
	p = Project{Deadline: &past}
	if got := p.DaysLeftAt(now); got != 0 {
		t.Errorf("expired deadline: got %d days, want 0", got)
	}

	// 没有截止日期时展示占位天数
	p = Project{}
	if p.HasDeadline() {
		t.Error("HasDeadline() = true for nil deadline")
	}
	if got := p.DaysLeftAt(now); got != DefaultDaysLeft {
		t.Errorf("nil deadline: got %d days, want %d", got, DefaultDaysLeft)
	}
}

func TestSupporterDisplayName(t *testing.T) {
	name := "Ivan"
	s := Supporter{SupporterName: &name}
	if got := s.DisplayName(); got != "Ivan" {
		t.Errorf("DisplayName() = %q, want Ivan", got)
	}

	anon := Supporter{IsAnonymous: true}
	if got := anon.DisplayName(); got != "Anonymous" {
		t.Errorf("anonymous DisplayName() = %q, want Anonymous", got)
	}

	empty := Supporter{}
	if got := empty.DisplayName(); got != "Anonymous" {
		t.Errorf("nil name DisplayName() = %q, want Anonymous", got)
	}
}
