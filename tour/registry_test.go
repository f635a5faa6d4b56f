package tour

import (
	"context"
	"strings"
	"testing"
)

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("expected %q to contain %q", haystack, needle)
	}
}

func assertEqual[T comparable](t *testing.T, want, got T) {
	t.Helper()
	if want != got {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func noopRoutine(name string) Routine {
	return Routine{
		Name:    name,
		Summary: "Noop " + name,
		Run:     func(ctx context.Context, p *Printer) error { return nil },
	}
}

func TestRegister(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	if err := Register(noopRoutine("first-demo")); err != nil {
		t.Fatalf("register: %v", err)
	}
	r, ok := Lookup("first-demo")
	if !ok {
		t.Fatal("expected routine to be registered")
	}
	assertEqual(t, "Noop first-demo", r.Summary)
}

func TestRegister_DuplicateName(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	MustRegister(noopRoutine("dup"))
	err := Register(noopRoutine("dup"))
	if err == nil {
		t.Fatal("expected error on duplicate name")
	}
	assertContains(t, err.Error(), "already registered")
}

func TestRegister_InvalidName(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	for _, name := range []string{"", "Bad Name", "UPPER", "trailing-", "-leading"} {
		if err := Register(noopRoutine(name)); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestRegister_NilRun(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	err := Register(Routine{Name: "no-run"})
	if err == nil {
		t.Fatal("expected error for nil Run")
	}
}

func TestRoutines_PreservesOrder(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	names := []string{"zeta", "alpha", "mid-one"}
	for _, n := range names {
		MustRegister(noopRoutine(n))
	}

	routines := Routines()
	if len(routines) != len(names) {
		t.Fatalf("expected %d routines, got %d", len(names), len(routines))
	}
	for i, n := range names {
		assertEqual(t, n, routines[i].Name)
	}
}

func TestLookup_Missing(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	if _, ok := Lookup("nope"); ok {
		t.Fatal("expected lookup miss")
	}
}
