package textclean

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"clean", "สนาม 1", "สนาม 1"},
		{"keeps whitespace controls", "a\tb\nc\rd", "a\tb\nc\rd"},
		{"drops nul and bell", "a\x00b\x07c", "abc"},
		{"drops del", "a\x7fb", "ab"},
		{"drops c1", "a\u0085b", "ab"},
		{"drops invalid utf8", "a\xffb", "ab"},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("%s: Sanitize(%q)=%q want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"blank", " \t\n ", ""},
		{"collapses", " สนาม\tกลาง \n", "สนาม กลาง"},
		{"composes", "cafe\u0301", "caf\u00e9"},
		{"keeps thai marks", "น้ำ ที่", "น้ำ ที่"},
		{"zero width", "ฝึก\u200bซ้อม\ufeff", "ฝึกซ้อม"},
		{"fullwidth", "ＵＩ２", "UI2"},
		{"controls", "ทีม\x00 A", "ทีม A"},
	}
	for _, tc := range tests {
		if got := Clean(tc.in); got != tc.want {
			t.Fatalf("%s: Clean(%q)=%q want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
