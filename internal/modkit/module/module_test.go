package module

import (
	"testing"

	phttp "clubhouse/internal/platform/net/http"
	"clubhouse/internal/platform/testkit"
)

type Formatter interface{ Format() string }
type Checker interface{ Check() bool }

type fmtImpl struct{}

func (fmtImpl) Format() string { return "วันเสาร์" }

type bundle struct {
	Formatter Formatter
	hidden    Checker
}

type Shared struct{ Formatter Formatter }

type outer struct {
	Name string
	Shared
}

type fake struct {
	name  string
	ports any
}

func (f fake) MountRoutes(phttp.Router) {}
func (f fake) Ports() any               { return f.ports }
func (f fake) Name() string             { return f.name }

var _ Module = fake{}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil ports", nil, false},
		{"direct", fmtImpl{}, true},
		{"struct field", bundle{Formatter: fmtImpl{}}, true},
		{"pointer to struct", &bundle{Formatter: fmtImpl{}}, true},
		{"nil pointer", (*bundle)(nil), false},
		{"nil interface field", bundle{}, false},
		{"embedded", outer{Name: "x", Shared: Shared{Formatter: fmtImpl{}}}, true},
		{"no match", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[Formatter](fake{name: "thaidate", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if ok && got.Format() != "วันเสาร์" {
				t.Fatalf("got %q", got.Format())
			}
		})
	}

	// unexported fields are not walked
	if _, ok := PortsOf[Checker](fake{ports: bundle{}}); ok {
		t.Fatal("unexported field should be skipped")
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	m := fake{name: "thaidate", ports: bundle{Formatter: fmtImpl{}}}
	if MustPortsOf[Formatter](m) == nil {
		t.Fatal("nil port")
	}
	testkit.MustPanicWith(t, "thaidate", func() { _ = MustPortsOf[Checker](m) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("thaidate", fmtImpl{})
	Register("meta", nil)
	Register("thaidate-set", &bundle{Formatter: fmtImpl{}})

	if _, ok := PortsAs[Formatter]("thaidate"); !ok {
		t.Fatal("thaidate ports missing")
	}
	if _, ok := PortsAs[Checker]("thaidate"); ok {
		t.Fatal("wrong type should not assert")
	}
	if _, ok := PortsAs[Formatter]("meta"); ok {
		t.Fatal("nil ports should not be registered")
	}
	if _, ok := PortsAs[Formatter]("thaidate-set"); !ok {
		t.Fatal("port inside a registered struct not found")
	}
	if _, ok := PortsAs[Formatter]("missing"); ok {
		t.Fatal("unregistered name found")
	}
	if got := Names(); len(got) != 2 || got[0] != "thaidate" || got[1] != "thaidate-set" {
		t.Fatalf("names %v", got)
	}
}
