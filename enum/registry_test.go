package enum

import (
	"reflect"
	"sync"
	"testing"
)

func registerFixture(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	if err := RegisterIn[AccessLevel](r, map[AccessLevel]string{
		Read:  "Read",
		Write: "Write",
		Admin: "Admin",
	}); err != nil {
		t.Fatal("failed to register fixture:", err)
	}
	return r
}

func TestRegistryHandles(t *testing.T) {
	r := registerFixture(t)

	testCases := []struct {
		name   string
		typ    reflect.Type
		expect bool
	}{
		{name: "enum type", typ: reflect.TypeOf(AccessLevel(0)), expect: true},
		{name: "optional shape", typ: reflect.TypeOf(Optional[AccessLevel]{}), expect: true},
		{name: "underlying type", typ: reflect.TypeOf(uint8(0)), expect: false},
		{name: "unrelated type", typ: reflect.TypeOf(""), expect: false},
		{name: "foreign optional", typ: reflect.TypeOf(Optional[int]{}), expect: false},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			if actual := r.Handles(c.typ); actual != c.expect {
				t.Errorf("expected Handles(%s) to be %v, but got %v", c.typ, c.expect, actual)
			}
		})
	}
}

func TestRegistryResolve(t *testing.T) {
	r := registerFixture(t)

	t.Run("enum type", func(t *testing.T) {
		c, err := r.Resolve(reflect.TypeOf(AccessLevel(0)))
		if err != nil {
			t.Fatal("failed to resolve:", err)
		}
		if c == nil || c.Type() != reflect.TypeOf(AccessLevel(0)) {
			t.Error("expected the plain codec bound to AccessLevel")
		}
	})

	t.Run("optional shape", func(t *testing.T) {
		c, err := r.Resolve(reflect.TypeOf(Optional[AccessLevel]{}))
		if err != nil {
			t.Fatal("failed to resolve:", err)
		}
		if c == nil || c.Type() != reflect.TypeOf(Optional[AccessLevel]{}) {
			t.Error("expected the optional codec bound to Optional[AccessLevel]")
		}
	})

	t.Run("not applicable", func(t *testing.T) {
		c, err := r.Resolve(reflect.TypeOf(0))
		if err != nil {
			t.Fatal("expected no error for an unregistered type, but got:", err)
		}
		if c != nil {
			t.Error("expected a nil codec for an unregistered type")
		}
	})
}

func TestRegistryLazyBuild(t *testing.T) {
	r := registerFixture(t)

	if n := r.Builds(); n != 0 {
		t.Fatalf("expected no table builds before first resolve, but got %d", n)
	}

	if _, err := r.Resolve(reflect.TypeOf(AccessLevel(0))); err != nil {
		t.Fatal("failed to resolve:", err)
	}
	if n := r.Builds(); n != 1 {
		t.Fatalf("expected 1 table build after first resolve, but got %d", n)
	}

	// Both shapes share the one table.
	if _, err := r.Resolve(reflect.TypeOf(Optional[AccessLevel]{})); err != nil {
		t.Fatal("failed to resolve:", err)
	}
	if n := r.Builds(); n != 1 {
		t.Fatalf("expected the optional shape to reuse the table, but got %d builds", n)
	}
}

func TestRegistryBuildOnce(t *testing.T) {
	r := registerFixture(t)

	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			c, err := r.Resolve(reflect.TypeOf(AccessLevel(0)))
			if err != nil || c == nil {
				t.Error("failed to resolve concurrently:", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if n := r.Builds(); n != 1 {
		t.Errorf("expected exactly 1 table build under concurrent first use, but got %d", n)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := registerFixture(t)

	err := RegisterIn[AccessLevel](r, map[AccessLevel]string{Read: "Read"})
	if err == nil {
		t.Error("expected a duplicate registration to fail, but it did not")
	}
}

func TestRegistryBuildFailure(t *testing.T) {
	type Broken uint8

	r := NewRegistry()
	// Registration defers validation to the lazy build.
	if err := RegisterIn[Broken](r, map[Broken]string{0: "Same", 1: "Same"}); err != nil {
		t.Fatal("failed to register:", err)
	}

	// The invalid member list surfaces on resolve, every time.
	for i := 0; i < 2; i++ {
		if _, err := r.Resolve(reflect.TypeOf(Broken(0))); err == nil {
			t.Fatal("expected resolving a broken member list to fail")
		}
	}

	if n := r.Builds(); n != 0 {
		t.Errorf("expected a failed build to not be counted, but got %d", n)
	}
}

func TestRegistryTypes(t *testing.T) {
	r := registerFixture(t)

	types := r.Types()
	if len(types) != 1 || types[0] != reflect.TypeOf(AccessLevel(0)) {
		t.Errorf("expected the enum types only, but got %v", types)
	}
}

func TestRegistryIsolation(t *testing.T) {
	// Registrations in one registry must not leak into another.
	r := NewRegistry()
	if r.Handles(reflect.TypeOf(AccessLevel(0))) {
		t.Error("expected a fresh registry to not handle the fixture type")
	}
	if !Default.Handles(reflect.TypeOf(AccessLevel(0))) {
		t.Error("expected the Default registry to handle the fixture type")
	}
}
