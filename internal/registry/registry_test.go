package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-animate/internal/anim"
)

type stubScene struct {
	id        string
	populated int
}

func (s *stubScene) ID() string          { return s.id }
func (s *stubScene) Title() string       { return strings.ToUpper(s.id) }
func (s *stubScene) Description() string { return "stub " + s.id }

func (s *stubScene) Populate(a *anim.Animation) error {
	s.populated++
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", func() Scene { return &stubScene{id: "test-zeta"} })
	Register("test-alpha", func() Scene { return &stubScene{id: "test-alpha"} })

	if !Exists("test-alpha") {
		t.Error("Exists(test-alpha) = false, expected true")
	}
	if Exists("test-missing") {
		t.Error("Exists(test-missing) = true, expected false")
	}

	s, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "test-zeta" {
		t.Errorf("ID() = %q, expected %q", s.ID(), "test-zeta")
	}

	other, _ := Create("test-zeta")
	if other == s {
		t.Error("Create() should return a fresh instance every call")
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of an unknown scene should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-list-b", func() Scene { return &stubScene{id: "test-list-b"} })
	Register("test-list-a", func() Scene { return &stubScene{id: "test-list-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test-list-a" {
			found = true
			if info.Title != "TEST-LIST-A" || info.Description != "stub test-list-a" {
				t.Errorf("Info = %+v, expected title and description from the scene", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing test-list-a")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	f := func() Scene { return &stubScene{id: "test-dup"} }
	if err := TryRegister("test-dup", f); err != nil {
		t.Fatalf("First TryRegister() failed: %v", err)
	}
	if err := TryRegister("test-dup", f); err == nil {
		t.Error("Second TryRegister() should fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate should panic")
		}
	}()
	Register("test-dup", f)
}
