package modkit

import (
	"testing"

	phttp "chardetcompat/internal/platform/net/http"
	kit "chardetcompat/internal/platform/testkit"
)

// FooPort is a tiny test interface that our Ports() payloads can implement
type FooPort interface {
	Foo() int
}

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()
	if _, ok := PortsOf[FooPort](fakeModule{name: "nil"}); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectInterfaceMatch(t *testing.T) {
	t.Parallel()
	got, ok := PortsOf[FooPort](fakeModule{name: "direct", ports: FooPort(fooImpl{v: 42})})
	if !ok || got.Foo() != 42 {
		t.Fatalf("direct match failed: ok=%v", ok)
	}
}

func TestPortsOf_StructBundle(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Bar int
		Foo FooPort
		baz FooPort
	}
	m := fakeModule{name: "bundle", ports: Ports{Bar: 1, Foo: fooImpl{v: 7}, baz: fooImpl{v: 9}}}
	got, ok := PortsOf[FooPort](m)
	if !ok || got.Foo() != 7 {
		t.Fatalf("expected exported field Foo=7, ok=%v", ok)
	}

	// pointers to bundles are walked too
	mp := fakeModule{name: "ptr", ports: &Ports{Foo: fooImpl{v: 3}}}
	if got, ok := PortsOf[FooPort](mp); !ok || got.Foo() != 3 {
		t.Fatalf("expected pointer bundle to resolve, ok=%v", ok)
	}

	// unexported only never resolves
	type hidden struct{ foo FooPort }
	if _, ok := PortsOf[FooPort](fakeModule{name: "h", ports: hidden{foo: fooImpl{}}}); ok {
		t.Fatalf("unexported fields must not resolve")
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()
	m := fakeModule{name: "detect", ports: 5}
	kit.MustPanic(t, func() { _ = MustPortsOf[FooPort](m) })

	m.ports = fooImpl{v: 1}
	if MustPortsOf[FooPort](m).Foo() != 1 {
		t.Fatalf("unexpected port value")
	}
}
