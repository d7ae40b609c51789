package ggart

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gg"
)

func nopDraw(*gg.Context, *rand.Rand) error { return nil }

func TestRegistryRegister(t *testing.T) {
	r := newRegistry()
	if err := r.register(Design{Collection: "c", Name: "a", Draw: nopDraw}); err != nil {
		t.Fatalf("register() = %v", err)
	}

	tests := []struct {
		name string
		d    Design
		want error
	}{
		{"duplicate", Design{Collection: "c", Name: "a", Draw: nopDraw}, ErrDuplicateDesign},
		{"empty name", Design{Collection: "c", Draw: nopDraw}, ErrInvalidDesign},
		{"empty collection", Design{Name: "a", Draw: nopDraw}, ErrInvalidDesign},
		{"nil draw", Design{Collection: "c", Name: "b"}, ErrInvalidDesign},
		{"animated without frames func", Design{Collection: "c", Name: "b", Draw: nopDraw, Frames: 3}, ErrInvalidDesign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.register(tt.d); !errors.Is(err, tt.want) {
				t.Errorf("register() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistryOrder(t *testing.T) {
	r := newRegistry()
	for _, id := range [][2]string{{"zeta", "1"}, {"alpha", "2"}, {"alpha", "1"}} {
		if err := r.register(Design{Collection: id[0], Name: id[1], Draw: nopDraw}); err != nil {
			t.Fatal(err)
		}
	}
	names := r.names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("names() = %v, want [alpha zeta]", names)
	}
	list := r.list("alpha")
	if len(list) != 2 || list[0].Name != "2" || list[1].Name != "1" {
		t.Errorf("list(alpha) not in registration order: %v", list)
	}
	if _, ok := r.lookup("alpha", "1"); !ok {
		t.Error("lookup(alpha, 1) = false, want true")
	}
	if _, ok := r.lookup("alpha", "3"); ok {
		t.Error("lookup(alpha, 3) = true, want false")
	}
}

func TestSelect(t *testing.T) {
	MustRegister(
		Design{Collection: "select-test", Name: "one-a", Draw: nopDraw},
		Design{Collection: "select-test", Name: "one-b", Draw: nopDraw},
		Design{Collection: "select-test", Name: "two", Draw: nopDraw},
	)

	tests := []struct {
		patterns []string
		want     int
	}{
		{[]string{"select-test"}, 3},
		{[]string{"select-test/two"}, 1},
		{[]string{"select-test/one*"}, 2},
		{[]string{"select-test/one*", "select-test"}, 3},
		{[]string{"select-test/*"}, 3},
	}
	for _, tt := range tests {
		got, err := Select(tt.patterns...)
		if err != nil {
			t.Errorf("Select(%v) error = %v", tt.patterns, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("Select(%v) = %d designs, want %d", tt.patterns, len(got), tt.want)
		}
	}

	for _, bad := range []string{"no-such-collection", "select-test/three", "select-test/x*"} {
		if _, err := Select(bad); !errors.Is(err, ErrUnknownDesign) {
			t.Errorf("Select(%q) error = %v, want ErrUnknownDesign", bad, err)
		}
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	MustRegister(Design{Collection: "panic-test", Name: "x", Draw: nopDraw})
	defer func() {
		if recover() == nil {
			t.Error("MustRegister did not panic on duplicate")
		}
	}()
	MustRegister(Design{Collection: "panic-test", Name: "x", Draw: nopDraw})
}
