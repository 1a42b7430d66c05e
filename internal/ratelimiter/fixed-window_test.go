package ratelimiter

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("1.2.3.4")
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	ok, retry := rl.Allow("1.2.3.4")
	if ok {
		t.Fatal("fourth request should be limited")
	}
	if retry != time.Minute {
		t.Fatalf("retry window: got %v", retry)
	}
}

func TestClientsAreIndependent(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	if ok, _ := rl.Allow("a"); !ok {
		t.Fatal("first client should pass")
	}
	if ok, _ := rl.Allow("b"); !ok {
		t.Fatal("second client should pass")
	}
	if ok, _ := rl.Allow("a"); ok {
		t.Fatal("first client should now be limited")
	}
}
