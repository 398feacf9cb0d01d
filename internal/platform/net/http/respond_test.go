package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "clubhouse/internal/platform/errors"
	pnet "clubhouse/internal/platform/net"
	phttp "clubhouse/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestHandle_SuccessShapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		resp phttp.Response
		code int
	}{
		{"ok", phttp.OK(map[string]string{"a": "b"}), http.StatusOK},
		{"created", phttp.Created(map[string]int{"id": 7}), http.StatusCreated},
		{"zero status", phttp.Response{Body: "x"}, http.StatusOK},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.Handle(func(*http.Request) phttp.Response { return c.resp })(rec, reqWithReqID("GET", "/", "rid-1"))
		if rec.Code != c.code {
			t.Fatalf("%s: code = %d", c.name, rec.Code)
		}
		env := decode(t, rec)
		if env.StatusCode != c.code || env.RequestID != "rid-1" || env.Data == nil || env.Code != nil {
			t.Fatalf("%s: bad envelope %+v", c.name, env)
		}
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	resp := phttp.NoContent()
	resp.Header = http.Header{"X-Extra": {"1"}}
	phttp.Handle(func(*http.Request) phttp.Response { return resp })(rec, httptest.NewRequest("DELETE", "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("no content: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("header not copied")
	}
}

func TestHandle_List(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.List([]int{1, 2}, 2, 50) })(rec, httptest.NewRequest("GET", "/", nil))
	env := decode(t, rec)
	if env.Page == nil || env.Page.Total != 2 || env.Page.Limit != 50 {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestHandle_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{"not found", perr.NotFoundf("schedule %s", "x"), http.StatusNotFound, perr.ErrorCodeNotFound, "schedule x"},
		{"invalid", perr.InvalidArgf("bad"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "bad"},
		{"foreign", errors.New("dial tcp: secret"), http.StatusInternalServerError, perr.ErrorCodeUnknown, "Internal Server Error"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(c.err) })(rec, reqWithReqID("GET", "/", "rid-e"))
		if rec.Code != c.status {
			t.Fatalf("%s: status = %d", c.name, rec.Code)
		}
		env := decode(t, rec)
		if env.Code == nil || *env.Code != c.code || env.Error != c.msg || env.RequestID != "rid-e" {
			t.Fatalf("%s: envelope %+v", c.name, env)
		}
	}
}

func TestRespondError_ValidationFields(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	err := perr.WithField(perr.Validation("กรุณาระบุสถานที่", map[string]string{"location": "กรุณาระบุสถานที่"}), "location")
	phttp.RespondError(rec, httptest.NewRequest("POST", "/", nil), err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Field != "location" || env.Fields["location"] != "กรุณาระบุสถานที่" {
		t.Fatalf("envelope %+v", env)
	}
}
