package wbs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLevel(t *testing.T) {
	root := dummyTree(t)
	tests := []struct {
		name string
		want int
	}{
		{"b", 1},
		{"a.2.1", 3},
		{"c.1", 2},
	}
	if root.Level() != 0 {
		t.Errorf("root Level() = %d, want 0", root.Level())
	}
	for _, tt := range tests {
		if got := mustFind(t, root, tt.name).Level(); got != tt.want {
			t.Errorf("%q Level() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTop(t *testing.T) {
	root := dummyTree(t)
	if _, err := root.Top(); !errors.Is(err, ErrTreeNavigation) {
		t.Errorf("root Top() err = %v, want %v", err, ErrTreeNavigation)
	}
	tests := []struct {
		name string
		want string
	}{
		{"a", "a"},
		{"a.2.1", "a"},
		{"c.1", "c"},
	}
	for _, tt := range tests {
		top, err := mustFind(t, root, tt.name).Top()
		if err != nil {
			t.Errorf("%q Top(): %v", tt.name, err)
			continue
		}
		if top.Name() != tt.want {
			t.Errorf("%q Top() = %q, want %q", tt.name, top.Name(), tt.want)
		}
	}
}

func TestRoot(t *testing.T) {
	root := dummyTree(t)
	for x := range root.All() {
		if x.Root() != root {
			t.Errorf("%q Root() = %v, want tree root", x.Name(), x.Root())
		}
	}
	if root.Root() != root {
		t.Errorf("root Root() is not itself")
	}
	lone := New("lone")
	if lone.Root() != lone {
		t.Errorf("detached node Root() is not itself")
	}
}

func TestAncestors(t *testing.T) {
	empty := NewRoot()
	if got := empty.Ancestors(); len(got) != 0 {
		t.Errorf("empty Ancestors() = %v", names(got))
	}
	if got := empty.GetAncestors(true); len(got) != 0 {
		t.Errorf("empty GetAncestors(true) = %v", names(got))
	}

	root := dummyTree(t)
	tests := []struct {
		name        string
		includeSelf bool
		want        []string
	}{
		{"c", false, []string{}},
		{"c", true, []string{"c"}},
		{"c.1", true, []string{"c.1", "c"}},
		{"c.1", false, []string{"c"}},
		{"a.2.1", false, []string{"a.2", "a"}},
		{"a.2.1", true, []string{"a.2.1", "a.2", "a"}},
	}
	if got := root.GetAncestors(true); len(got) != 0 {
		t.Errorf("root GetAncestors(true) = %v", names(got))
	}
	for _, tt := range tests {
		got := names(mustFind(t, root, tt.name).GetAncestors(tt.includeSelf))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q GetAncestors(%t) mismatch (-want +got):\n%s", tt.name, tt.includeSelf, diff)
		}
	}
	c1 := mustFind(t, root, "c.1")
	if diff := cmp.Diff(names(c1.GetAncestors(false)), names(c1.Ancestors())); diff != "" {
		t.Errorf("Ancestors() differs from GetAncestors(false):\n%s", diff)
	}
}

func TestIsEmpty(t *testing.T) {
	root := NewRoot()
	if !root.IsEmpty() {
		t.Errorf("new root IsEmpty() = false")
	}
	son, _ := root.AddChildNamed("son")
	if root.IsEmpty() || son.IsEmpty() {
		t.Errorf("IsEmpty() = true after adding a child")
	}
}

func TestPath(t *testing.T) {
	root := dummyTree(t)
	if got := root.Path(); len(got) != 0 {
		t.Errorf("root Path() = %v, want empty", got)
	}
	leaf := mustFind(t, root, "a.2.1")
	if diff := cmp.Diff([]string{"a", "a.2", "a.2.1"}, leaf.Path()); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}

	got, err := root.GetPath(leaf.Path()...)
	if err != nil {
		t.Fatal(err)
	}
	if got != leaf {
		t.Errorf("GetPath(%v) = %v", leaf.Path(), got)
	}
	if got, err := root.GetPath(); err != nil || got != root {
		t.Errorf("GetPath() = %v, %v, want root", got, err)
	}
	if _, err := root.GetPath("a", "c.1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPath(a, c.1) err = %v, want %v", err, ErrNotFound)
	}
}
