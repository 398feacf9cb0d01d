package testkit

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"testing"
)

func TestPanicAssertions(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
	MustPanicWith(t, "bad month", func() { panic(errors.New("thaidate: bad month 13")) })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "alpha beta gamma", "beta")
}

func TestServeAndDecode(t *testing.T) {
	t.Parallel()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"method":"` + r.Method + `","lang":"` + r.Header.Get("Accept-Language") + `","len":` + strconv.Itoa(len(b)) + `}`))
	})

	rec := Serve(t, h, http.MethodPost, "/x", map[string]string{"a": "b"}, "Accept-Language", "en")
	got := Decode[struct {
		Method string `json:"method"`
		Lang   string `json:"lang"`
		Len    int    `json:"len"`
	}](t, rec)
	if got.Method != "POST" || got.Lang != "en" || got.Len != len(`{"a":"b"}`+"\n") {
		t.Fatalf("got %+v", got)
	}

	rec = Serve(t, h, http.MethodPost, "/x", `{"raw":1}`)
	if Decode[map[string]any](t, rec)["len"] != float64(9) {
		t.Fatalf("raw string body not sent as is: %s", rec.Body.String())
	}
}
