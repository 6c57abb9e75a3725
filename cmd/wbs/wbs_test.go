package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs"
)

const testPlan = `
items:
- name: design
  attrs: {owner: arch}
  items: [schema, api]
- name: build
  items:
  - name: deploy
    kind: task
    items: [canary]
`

func writePlan(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func plainMain() *MainConfig {
	return &MainConfig{NoColor: true}
}

func TestTree(t *testing.T) {
	file := writePlan(t, testPlan)
	tests := []struct {
		name string
		cfg  *TreeConfig
		args []string
		want string
	}{
		{
			"all",
			&TreeConfig{MainConfig: plainMain(), Depth: -1},
			[]string{file},
			"\\\n  \\design\n    \\schema\n    \\api\n  \\build\n    \\deploy\n      \\canary\n",
		},
		{
			"depth",
			&TreeConfig{MainConfig: plainMain(), Depth: 1},
			[]string{file},
			"\\\n  \\design\n  \\build\n",
		},
		{
			"subtree with kinds",
			&TreeConfig{MainConfig: plainMain(), Depth: -1, Kind: true},
			[]string{file, "/build/deploy"},
			"\\deploy [task]\n  \\canary [breakdown]\n",
		},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := tree(tt.cfg, buf, tt.args); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if buf.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, buf.String(), tt.want)
		}
	}
	if err := tree(&TreeConfig{MainConfig: plainMain()}, bytes.NewBuffer(nil), nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("no args: err = %v, want %v", err, cli.ErrUsage)
	}
}

func TestFind(t *testing.T) {
	file := writePlan(t, testPlan)
	tests := []struct {
		name string
		cfg  *FindConfig
		want string
		err  error
	}{
		{"by name", &FindConfig{MainConfig: plainMain(), Name: "api"}, "/design/api\n", nil},
		{"by query", &FindConfig{MainConfig: plainMain(), Query: `kind == "task"`}, "/build/deploy\n", nil},
		{"attrs", &FindConfig{MainConfig: plainMain(), Query: `attrs.owner == "arch"`}, "/design\n", nil},
		{"children", &FindConfig{MainConfig: plainMain(), Name: "canary", From: "/build", Children: true}, "", wbs.ErrNotFound},
		{"miss", &FindConfig{MainConfig: plainMain(), Name: "nope"}, "", wbs.ErrNotFound},
		{"query error", &FindConfig{MainConfig: plainMain(), Query: `1 % (level - level) == 0`}, "", wbs.ErrFunctionEvaluation},
		{"skip errors", &FindConfig{MainConfig: plainMain(), Query: `1 % (level - level) == 0`, SkipErrors: true}, "", wbs.ErrNotFound},
		{"both", &FindConfig{MainConfig: plainMain(), Name: "a", Query: "leaf"}, "", cli.ErrUsage},
		{"neither", &FindConfig{MainConfig: plainMain()}, "", cli.ErrUsage},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		err := find(tt.cfg, buf, []string{file})
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%s: err = %v, want %v", tt.name, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if buf.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, buf.String(), tt.want)
		}
	}
}

func TestAncestors(t *testing.T) {
	file := writePlan(t, testPlan)
	buf := bytes.NewBuffer(nil)
	cfg := &AncestorsConfig{MainConfig: plainMain(), Self: true}
	if err := ancestors(cfg, buf, []string{file, "build/deploy/canary"}); err != nil {
		t.Fatal(err)
	}
	want := "/build/deploy/canary\n/build/deploy\n/build\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if err := ancestors(cfg, buf, []string{file, "build/nope"}); !errors.Is(err, wbs.ErrNotFound) {
		t.Errorf("bad path: err = %v, want %v", err, wbs.ErrNotFound)
	}
}

func TestAdd(t *testing.T) {
	file := writePlan(t, testPlan)
	buf := bytes.NewBuffer(nil)
	cfg := &AddConfig{MainConfig: plainMain()}
	if err := add(cfg, buf, []string{file, "/design/api/v2", "/ops"}); err != nil {
		t.Fatal(err)
	}
	want := "\\\n  \\design\n    \\schema\n    \\api\n      \\v2\n  \\build\n    \\deploy\n      \\canary\n  \\ops\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if err := add(cfg, buf, []string{file, "/ops/schema"}); !errors.Is(err, wbs.ErrDuplicate) {
		t.Errorf("duplicate: err = %v, want %v", err, wbs.ErrDuplicate)
	}
}

func TestCheck(t *testing.T) {
	file := writePlan(t, testPlan)
	buf := bytes.NewBuffer(nil)
	if err := check(&CheckConfig{MainConfig: plainMain()}, buf, []string{file}); err != nil {
		t.Fatal(err)
	}
	want := file + ": 6 nodes, depth 3\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	bad := writePlan(t, "items: [a, a]\n")
	if err := check(&CheckConfig{MainConfig: plainMain()}, buf, []string{bad}); !errors.Is(err, wbs.ErrDuplicate) {
		t.Errorf("bad plan: err = %v, want %v", err, wbs.ErrDuplicate)
	}
}

func TestDiff(t *testing.T) {
	a := writePlan(t, testPlan)
	b := writePlan(t, "items:\n- name: design\n  items: [schema]\n- build\n")
	cfg := &DiffConfig{MainConfig: plainMain()}

	buf := bytes.NewBuffer(nil)
	if err := diff(cfg, buf, []string{a, a}); err != nil {
		t.Errorf("same plan: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("same plan printed %q", buf.String())
	}

	if err := diff(cfg, buf, []string{a, b}); err == nil {
		t.Errorf("different plans: no error")
	}
	want := "  \\\n    \\design\n      \\schema\n-     \\api\n    \\build\n-     \\deploy\n-       \\canary\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
