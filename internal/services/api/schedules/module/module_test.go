package module_test

import (
	"net/http"
	"testing"

	"clubhouse/internal/core/thaidate"
	modkit "clubhouse/internal/modkit"
	"clubhouse/internal/modkit/module"
	"clubhouse/internal/modkit/swaggerkit"
	phttp "clubhouse/internal/platform/net/http"
	"clubhouse/internal/platform/net/middleware"
	"clubhouse/internal/platform/testkit"
	"clubhouse/internal/services/api/schedules/domain"
	schedmod "clubhouse/internal/services/api/schedules/module"
	tdmod "clubhouse/internal/services/api/thaidate/module"

	"github.com/go-chi/chi/v5"
)

var now = thaidate.MustCivilInstant(2026, 10, 17, 14, 30)

func mount(t *testing.T, opts ...modkit.Option) (http.Handler, modkit.Module) {
	t.Helper()
	m := schedmod.New(modkit.Deps{Clock: thaidate.FixedClock(now)}, opts...)
	mux := chi.NewRouter()
	mux.Use(middleware.RequestContext)
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux, m
}

type one struct {
	Data domain.Schedule `json:"data"`
}

type many struct {
	Data []domain.Schedule `json:"data"`
	Page phttp.Page        `json:"page"`
}

const body = `{
	"title": "ฝึกซ้อมทีม U12",
	"date": "18/10/2569",
	"time": "16:30",
	"location": "สนามหญ้าเทียม 2",
	"max_participants": 5,
	"participants": [{"name": "สมชาย"}]
}`

func TestLifecycle(t *testing.T) {
	t.Parallel()
	h, _ := mount(t)

	rec := testkit.Serve(t, h, http.MethodPost, "/schedules", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status %d %s", rec.Code, rec.Body)
	}
	created := testkit.Decode[one](t, rec).Data
	if created.WhenText == "" || created.Date != "18/10/2569" || created.Status != "upcoming" {
		t.Fatalf("created %+v", created)
	}
	path := "/schedules/" + created.ID.String()

	rec = testkit.Serve(t, h, http.MethodGet, path, nil)
	if rec.Code != http.StatusOK || testkit.Decode[one](t, rec).Data.ID != created.ID {
		t.Fatalf("get %d %s", rec.Code, rec.Body)
	}

	rec = testkit.Serve(t, h, http.MethodGet, "/schedules?status=upcoming&limit=10", nil)
	list := testkit.Decode[many](t, rec)
	if rec.Code != http.StatusOK || len(list.Data) != 1 || list.Page.Total != 1 || list.Page.Limit != 10 {
		t.Fatalf("list %d %s", rec.Code, rec.Body)
	}

	rec = testkit.Serve(t, h, http.MethodPatch, path+"/status", `{"status":"cancelled"}`)
	if rec.Code != http.StatusOK || testkit.Decode[one](t, rec).Data.Status != "cancelled" {
		t.Fatalf("cancel %d %s", rec.Code, rec.Body)
	}
	rec = testkit.Serve(t, h, http.MethodPatch, path+"/status", `{"status":"completed"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("cancelled is terminal, got %d", rec.Code)
	}

	rec = testkit.Serve(t, h, http.MethodDelete, path, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete %d", rec.Code)
	}
	rec = testkit.Serve(t, h, http.MethodGet, path, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete %d", rec.Code)
	}
}

func TestCreate_ThaiMessages(t *testing.T) {
	t.Parallel()
	h, _ := mount(t)

	cases := []struct {
		name, body, field, msg string
	}{
		{"missing title", `{"date":"18/10/2569","time":"16:30","location":"x","max_participants":1,"participants":[{"name":"a"}]}`, "title", domain.MsgTitleRequired},
		{"no participants", `{"title":"t","date":"18/10/2569","time":"16:30","location":"x","max_participants":1,"participants":[]}`, "participants", domain.MsgParticipantsRequired},
		{"past date", `{"title":"t","date":"01/01/2569","time":"16:30","location":"x","max_participants":1,"participants":[{"name":"a"}]}`, "date", thaidate.MsgBadDate},
		{"over max", `{"title":"t","date":"18/10/2569","time":"16:30","location":"x","max_participants":1,"participants":[{"name":"a"},{"name":"b"}]}`, "participants", domain.MsgTooManyParticipants},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testkit.Serve(t, h, http.MethodPost, "/schedules", tc.body)
			env := testkit.Decode[phttp.Envelope](t, rec)
			if rec.Code != http.StatusBadRequest || env.Field != tc.field || env.Error != tc.msg {
				t.Fatalf("%d %+v", rec.Code, env)
			}
		})
	}
}

func TestList_BadQuery(t *testing.T) {
	t.Parallel()
	h, _ := mount(t)

	cases := []struct {
		query string
		want  int
	}{
		{"?limit=abc", http.StatusUnprocessableEntity},
		{"?limit=0", http.StatusUnprocessableEntity},
		{"?limit=201", http.StatusBadRequest},
		{"?status=archived", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := testkit.Serve(t, h, http.MethodGet, "/schedules"+tc.query, nil)
		if rec.Code != tc.want {
			t.Fatalf("%s: status %d %s", tc.query, rec.Code, rec.Body)
		}
	}
	rec := testkit.Serve(t, h, http.MethodGet, "/schedules/not-a-uuid", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad id status %d", rec.Code)
	}
}

func TestCalendarFromThaidatePorts(t *testing.T) {
	t.Parallel()
	// thaidate runs a day later, so tomorrow's booking becomes too soon
	later := thaidate.MustCivilInstant(2026, 10, 18, 16, 0)
	td := tdmod.New(modkit.Deps{Clock: thaidate.FixedClock(later)})
	h, _ := mount(t, modkit.WithPorts(module.MustPortsOf[domain.Calendar](td)))

	rec := testkit.Serve(t, h, http.MethodPost, "/schedules", body)
	env := testkit.Decode[phttp.Envelope](t, rec)
	if rec.Code != http.StatusBadRequest || env.Field != "time" {
		t.Fatalf("%d %+v", rec.Code, env)
	}
}

func TestPortsAndDocs(t *testing.T) {
	t.Parallel()
	_, m := mount(t)

	if m.Name() != "schedules" {
		t.Fatalf("name %q", m.Name())
	}
	if _, ok := m.Ports().(domain.ServicePort); !ok {
		t.Fatalf("ports %T", m.Ports())
	}
	d, ok := m.(swaggerkit.Documented)
	if !ok {
		t.Fatal("module is not documented")
	}
	spec := map[string]any{}
	d.Docs()(spec)
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range []string{"/schedules", "/schedules/{id}", "/schedules/{id}/status"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing %s in %v", p, paths)
		}
	}
}
