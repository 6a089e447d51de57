package domain

import "testing"

func TestStage_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Stage
		want     bool
	}{
		{StageNotStarted, StagePreparing, true},
		{StagePreparing, StageEnRouteToPickup, true},
		{StageEnRouteToPickup, StageEnRouteToDelivery, true},
		{StageEnRouteToDelivery, StageDelivered, true},
		{StagePreparing, StageDelivered, false},
		{StageDelivered, StagePreparing, false},
		{StageEnRouteToPickup, StagePreparing, false},
		{StageDelivered, StageDelivered, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestStage_Terminal(t *testing.T) {
	for _, st := range []Stage{StageNotStarted, StagePreparing, StageEnRouteToPickup, StageEnRouteToDelivery} {
		if st.Terminal() {
			t.Errorf("%s must not be terminal", st)
		}
	}
	if !StageDelivered.Terminal() {
		t.Error("delivered must be terminal")
	}
}

func TestStageForProgress(t *testing.T) {
	cases := map[int]Stage{
		0:   StagePreparing,
		24:  StagePreparing,
		25:  StagePreparing,
		49:  StagePreparing,
		50:  StageEnRouteToPickup,
		74:  StageEnRouteToPickup,
		75:  StageEnRouteToDelivery,
		99:  StageEnRouteToDelivery,
		100: StageDelivered,
	}
	for progress, want := range cases {
		if got := StageForProgress(progress); got != want {
			t.Errorf("progress %d: expected %s, got %s", progress, want, got)
		}
	}
}

func TestMilestones_Ascending(t *testing.T) {
	last := 0
	for _, m := range Milestones {
		if m.Progress <= last {
			t.Fatalf("milestones out of order at %d", m.Progress)
		}
		last = m.Progress
	}
	if last != MaxProgress {
		t.Fatalf("final milestone must be %d, got %d", MaxProgress, last)
	}
}

func TestTimeline_MarksReachedStages(t *testing.T) {
	views := Timeline(StageEnRouteToPickup)
	if len(views) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(views))
	}
	if !views[0].Completed || views[0].Active {
		t.Errorf("preparing should be completed and inactive: %+v", views[0])
	}
	if !views[1].Completed || !views[1].Active {
		t.Errorf("current stage should be active: %+v", views[1])
	}
	if views[2].Completed || views[3].Completed {
		t.Errorf("future stages must not be completed: %+v", views[2:])
	}

	for _, v := range Timeline(StageNotStarted) {
		if v.Completed || v.Active {
			t.Errorf("nothing is reached before start: %+v", v)
		}
	}
}
