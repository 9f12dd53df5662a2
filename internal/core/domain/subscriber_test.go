package domain

import (
	"testing"
	"time"
)

// TestSubscribeTwice ensures a repeated subscribe is idempotent: the first
// call creates the record, the second changes nothing.
func TestSubscribeTwice(t *testing.T) {
	now := time.Now().UTC()
	in := Intent{Action: ActionSubscribe, Email: "a@example.com", Source: "website"}

	rec, out := Apply(nil, in, now)
	if out != OutcomeSubscribed {
		t.Fatalf("first subscribe: got %q, want %q", out, OutcomeSubscribed)
	}
	if rec == nil || rec.Status != StatusSubscribed {
		t.Fatalf("first subscribe produced record %+v", rec)
	}
	if rec.Source != "website" {
		t.Fatalf("source not recorded: %q", rec.Source)
	}
	if rec.SubscribedAt == nil || !rec.SubscribedAt.Equal(now) {
		t.Fatalf("subscribedAt not set to now: %v", rec.SubscribedAt)
	}

	next, out := Apply(rec, in, now.Add(time.Minute))
	if out != OutcomeAlreadySubscribed {
		t.Fatalf("second subscribe: got %q, want %q", out, OutcomeAlreadySubscribed)
	}
	if next != nil {
		t.Fatalf("second subscribe must not produce a write, got %+v", next)
	}
}

// TestFullLifecycle walks subscribe -> unsubscribe -> subscribe and checks
// the outcome sequence plus the cleared unsubscribe fields at the end.
func TestFullLifecycle(t *testing.T) {
	t0 := time.Now().UTC()
	email := "b@example.com"

	rec, out := Apply(nil, Intent{Action: ActionSubscribe, Email: email, Source: "website"}, t0)
	if out != OutcomeSubscribed {
		t.Fatalf("step 1: got %q, want %q", out, OutcomeSubscribed)
	}

	t1 := t0.Add(time.Hour)
	rec, out = Apply(rec, Intent{Action: ActionUnsubscribe, Email: email, Reason: "too noisy"}, t1)
	if out != OutcomeUnsubscribed {
		t.Fatalf("step 2: got %q, want %q", out, OutcomeUnsubscribed)
	}
	if rec.Status != StatusUnsubscribed {
		t.Fatalf("step 2: status %q", rec.Status)
	}
	if rec.UnsubscribedAt == nil || !rec.UnsubscribedAt.Equal(t1) {
		t.Fatalf("step 2: unsubscribedAt %v", rec.UnsubscribedAt)
	}
	if rec.UnsubscribeReason == nil || *rec.UnsubscribeReason != "too noisy" {
		t.Fatalf("step 2: reason %v", rec.UnsubscribeReason)
	}

	t2 := t1.Add(time.Hour)
	rec, out = Apply(rec, Intent{Action: ActionSubscribe, Email: email, Source: "import"}, t2)
	if out != OutcomeResubscribed {
		t.Fatalf("step 3: got %q, want %q", out, OutcomeResubscribed)
	}
	if rec.Status != StatusSubscribed {
		t.Fatalf("step 3: status %q", rec.Status)
	}
	if rec.SubscribedAt == nil || !rec.SubscribedAt.Equal(t2) {
		t.Fatalf("step 3: subscribedAt not refreshed: %v", rec.SubscribedAt)
	}
	if rec.UnsubscribedAt != nil || rec.UnsubscribeReason != nil {
		t.Fatalf("step 3: unsubscribe fields not cleared: %v %v", rec.UnsubscribedAt, rec.UnsubscribeReason)
	}
	// source belongs to the first subscribe and survives resubscribes
	if rec.Source != "website" {
		t.Fatalf("step 3: source overwritten to %q", rec.Source)
	}
}

// TestUnsubscribeUnknown ensures unsubscribing a never-seen email is a pure
// no-op: no record is created, nothing needs writing.
func TestUnsubscribeUnknown(t *testing.T) {
	rec, out := Apply(nil, Intent{Action: ActionUnsubscribe, Email: "ghost@example.com"}, time.Now())
	if out != OutcomeAlreadyUnsubscribed {
		t.Fatalf("got %q, want %q", out, OutcomeAlreadyUnsubscribed)
	}
	if rec != nil {
		t.Fatalf("unsubscribe of unknown address created a record: %+v", rec)
	}
}

// TestUnsubscribeTwice ensures the second unsubscribe keeps the original
// reason and timestamp instead of overwriting them.
func TestUnsubscribeTwice(t *testing.T) {
	t0 := time.Now().UTC()
	rec, _ := Apply(nil, Intent{Action: ActionSubscribe, Email: "c@example.com"}, t0)
	rec, _ = Apply(rec, Intent{Action: ActionUnsubscribe, Email: "c@example.com", Reason: "first"}, t0.Add(time.Minute))

	next, out := Apply(rec, Intent{Action: ActionUnsubscribe, Email: "c@example.com", Reason: "second"}, t0.Add(time.Hour))
	if out != OutcomeAlreadyUnsubscribed {
		t.Fatalf("got %q, want %q", out, OutcomeAlreadyUnsubscribed)
	}
	if next != nil {
		t.Fatalf("repeated unsubscribe must not produce a write, got %+v", next)
	}
	if *rec.UnsubscribeReason != "first" {
		t.Fatalf("original reason lost: %q", *rec.UnsubscribeReason)
	}
}

// TestOutcomeChanged pins which outcomes count as mutations.
func TestOutcomeChanged(t *testing.T) {
	changed := map[Outcome]bool{
		OutcomeSubscribed:          true,
		OutcomeResubscribed:        true,
		OutcomeUnsubscribed:        true,
		OutcomeAlreadySubscribed:   false,
		OutcomeAlreadyUnsubscribed: false,
	}
	for out, want := range changed {
		if out.Changed() != want {
			t.Fatalf("%q.Changed() = %v, want %v", out, out.Changed(), want)
		}
	}
}
