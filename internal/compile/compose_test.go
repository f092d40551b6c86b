package compile

import (
	"testing"

	"github.com/lcampos/quill/internal/workspace"
)

func TestComposeEmpty(t *testing.T) {
	if got := Compose(nil); got != nil {
		t.Errorf("Compose(nil) = %v, want nil", got)
	}
	if got := Compose([]*workspace.Filter{}); got != nil {
		t.Errorf("Compose([]) = %v, want nil", got)
	}
}

func TestComposeSingleLeafReturnedBare(t *testing.T) {
	leaf := workspace.Leaf("Status", workspace.TypeStatus, "equals", "Done")
	got := Compose([]*workspace.Filter{leaf})
	if got != leaf {
		t.Errorf("Compose([x]) should return x itself, got %v", got)
	}
	if got.IsConjunction() {
		t.Error("single leaf must not be wrapped in and")
	}
}

func TestComposeManyPreservesOrder(t *testing.T) {
	a := workspace.Leaf("A", workspace.TypeSelect, "equals", "1")
	b := workspace.Leaf("B", workspace.TypeSelect, "equals", "2")
	c := workspace.Leaf("C", workspace.TypeSelect, "equals", "3")

	got := Compose([]*workspace.Filter{a, b, c})
	if !got.IsConjunction() {
		t.Fatal("expected a conjunction")
	}
	if len(got.And) != 3 || got.And[0] != a || got.And[1] != b || got.And[2] != c {
		t.Errorf("conjunction must preserve input order, got %v", got.And)
	}
}
