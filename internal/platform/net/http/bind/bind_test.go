package bind

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	perr "clubhouse/internal/platform/errors"
	pnet "clubhouse/internal/platform/net"
)

type member struct {
	Name string `json:"name" validate:"notblank"`
}

type payload struct {
	Title   string   `json:"title" validate:"required,max=10"`
	Count   int      `json:"count" validate:"min=1"`
	Members []member `json:"members" validate:"required,min=1,dive"`
	Ignored string   `json:"-"`
}

func (payload) ValidationMessage(field, tag string, lang pnet.Lang) string {
	if field == "title" && tag == "required" && lang == pnet.LangThai {
		return "กรุณาระบุชื่อ"
	}
	return ""
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	t.Parallel()
	got, err := ParseJSON[payload](post(`{"title":"U12","count":3,"members":[{"name":"Som"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "U12" || got.Count != 3 || len(got.Members) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_BodyErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		req  *http.Request
	}{
		{"empty", httptest.NewRequest(http.MethodPost, "/", http.NoBody)},
		{"invalid", post(`{`)},
		{"unknown field", post(`{"title":"x","count":1,"members":[{"name":"a"}],"extra":1}`)},
		{"trailing", post(`{"title":"x","count":1,"members":[{"name":"a"}]} {}`)},
	}
	for _, c := range cases {
		_, err := ParseJSON[payload](c.req)
		if perr.CodeOf(err) != perr.ErrorCodeJSON {
			t.Fatalf("%s: expected json code, got %v (%v)", c.name, perr.CodeOf(err), err)
		}
	}
}

func TestParseJSON_Options(t *testing.T) {
	t.Parallel()
	type note struct {
		Note string `json:"note"`
	}

	got, err := ParseJSON[note](httptest.NewRequest(http.MethodPost, "/", http.NoBody), JSONOptions{AllowEmptyBody: true})
	if err != nil || got != (note{}) {
		t.Fatalf("empty allowed: %+v %v", got, err)
	}

	got, err = ParseJSON[note](post(`{"note":"a","x":1}`), JSONOptions{})
	if err != nil || got.Note != "a" {
		t.Fatalf("unknown allowed: %+v %v", got, err)
	}

	_, err = ParseJSON[note](post(`{"note":"`+strings.Repeat("a", 64)+`"}`), JSONOptions{MaxBytes: 8})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("max bytes: %v", err)
	}
}

func TestParseJSON_ValidationFieldsThai(t *testing.T) {
	t.Parallel()
	_, err := ParseJSON[payload](post(`{"title":"","count":0,"members":[{"name":"  "}]}`))

	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := e.Fields()
	if fields["title"] != "กรุณาระบุชื่อ" {
		t.Fatalf("custom message not used: %q", fields["title"])
	}
	if _, ok := fields["count"]; !ok {
		t.Fatalf("count missing: %v", fields)
	}
	if msg := fields["members[0].name"]; msg != "โปรดระบุ name" {
		t.Fatalf("nested field message = %q (all %v)", msg, fields)
	}
	if e.Field() != "title" || e.Message() != "กรุณาระบุชื่อ" {
		t.Fatalf("headline = %q %q", e.Field(), e.Message())
	}
}

func TestParseJSON_ValidationEnglish(t *testing.T) {
	t.Parallel()
	req := post(`{"title":"","count":1,"members":[{"name":"a"}]}`)
	req = req.WithContext(pnet.WithLang(req.Context(), pnet.LangEnglish))

	_, err := ParseJSON[payload](req)
	e, _ := perr.As(err)
	if e == nil || e.Fields()["title"] != "title is a required field" {
		t.Fatalf("english message = %v", err)
	}
}

func TestJSONName(t *testing.T) {
	t.Parallel()
	type s struct {
		A string `json:"a,omitempty"`
		B string `json:"-"`
		C string
	}
	typ := func(name string) string {
		sf, _ := reflect.TypeOf(s{}).FieldByName(name)
		return jsonName(sf)
	}
	if typ("A") != "a" || typ("B") != "B" || typ("C") != "C" {
		t.Fatalf("jsonName mismatch: %q %q %q", typ("A"), typ("B"), typ("C"))
	}
}

// not parallel: registering mutates the shared validator
func TestRegisterValidation_CustomTag(t *testing.T) {
	type shirt struct {
		Size string `json:"size" validate:"kitsize"`
	}
	err := RegisterValidation("kitsize", func(fl FieldLevel) bool {
		switch fl.Field().String() {
		case "S", "M", "L":
			return true
		}
		return false
	}, "{0} ต้องเป็น S M หรือ L", "{0} must be S, M or L")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err = ParseJSON[shirt](post(`{"size":"XL"}`))
	e, _ := perr.As(err)
	if e == nil || e.Fields()["size"] != "size ต้องเป็น S M หรือ L" {
		t.Fatalf("custom tag message = %v", err)
	}
	if _, err := ParseJSON[shirt](post(`{"size":"M"}`)); err != nil {
		t.Fatalf("valid size rejected: %v", err)
	}
}
