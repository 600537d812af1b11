package config

import "testing"

func TestParseAdminIDs(t *testing.T) {
	ids := ParseAdminIDs("123, 456,abc, ,789")

	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d (%v)", len(ids), ids)
	}
	for _, want := range []int64{123, 456, 789} {
		if !ids[want] {
			t.Errorf("missing id %d", want)
		}
	}
	if ids[0] {
		t.Error("unexpected zero id")
	}
}

func TestParseAdminIDsEmpty(t *testing.T) {
	if ids := ParseAdminIDs(""); len(ids) != 0 {
		t.Errorf("expected empty set, got %v", ids)
	}
}
