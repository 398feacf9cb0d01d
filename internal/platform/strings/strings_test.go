package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()
	def := []string{"*"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("nil -> %v", got)
	}
	if got := IfEmpty([]string{"a"}, def); got[0] != "a" {
		t.Fatalf("non empty -> %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"/schedules/":   "/schedules",
		" thaidate  ":   "/thaidate",
		"//schedules//": "/schedules",
		"/":             "",
		"":              "",
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("in %q want %q got %q", in, want, got)
		}
	}
}
