package roster

import "testing"

func TestNewViewDedupesAndSorts(t *testing.T) {
	v := NewView([]string{"bob", "alice", "bob", ""})

	if v.Len() != 2 {
		t.Fatalf("expected 2 participants, got %d", v.Len())
	}
	ids := v.IDs()
	if ids[0] != "alice" || ids[1] != "bob" {
		t.Fatalf("expected stable sorted order, got %v", ids)
	}
}

func TestViewContains(t *testing.T) {
	v := NewView([]string{"alice"})

	if !v.Contains("alice") {
		t.Fatal("expected alice in roster")
	}
	if v.Contains("bob") {
		t.Fatal("bob should not be in roster")
	}
}

func TestEmptyView(t *testing.T) {
	v := NewView(nil)
	if !v.Empty() {
		t.Fatal("expected empty view")
	}

	var nilView *View
	if !nilView.Empty() {
		t.Fatal("nil view must report empty")
	}
	if nilView.Contains("alice") {
		t.Fatal("nil view must not contain anyone")
	}
	if nilView.IDs() != nil {
		t.Fatal("nil view IDs must be nil")
	}
}

func TestIDsReturnsCopy(t *testing.T) {
	v := NewView([]string{"alice", "bob"})
	ids := v.IDs()
	ids[0] = "mallory"

	if v.IDs()[0] != "alice" {
		t.Fatal("mutating the returned slice must not affect the view")
	}
}
