package jsonarray

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "bare array",
			text:   `[{"title":"buy milk"}]`,
			want:   `[{"title":"buy milk"}]`,
			wantOK: true,
		},
		{
			name:   "array wrapped in prose",
			text:   "Sure! Here are your tasks:\n[{\"title\":\"a\"},{\"title\":\"b\"}]\nLet me know if that helps.",
			want:   `[{"title":"a"},{"title":"b"}]`,
			wantOK: true,
		},
		{
			name:   "markdown fenced array",
			text:   "```json\n[{\"title\":\"a\"}]\n```",
			want:   `[{"title":"a"}]`,
			wantOK: true,
		},
		{
			name:   "nested arrays stay balanced",
			text:   `noise [[1,2],[3,4]] trailing`,
			want:   `[[1,2],[3,4]]`,
			wantOK: true,
		},
		{
			name:   "brackets inside string values are ignored",
			text:   `[{"title":"call [urgent] mom"}]`,
			want:   `[{"title":"call [urgent] mom"}]`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			text:   `[{"title":"say \"hi\" [later]"}]`,
			want:   `[{"title":"say \"hi\" [later]"}]`,
			wantOK: true,
		},
		{
			name:   "no array present",
			text:   "I could not find any tasks in that message.",
			wantOK: false,
		},
		{
			name:   "unbalanced array",
			text:   `here you go: [{"title":"a"}`,
			wantOK: false,
		},
		{
			name:   "empty input",
			text:   "",
			wantOK: false,
		},
		{
			name:   "first of several arrays wins",
			text:   `[1,2] and also [3,4]`,
			want:   `[1,2]`,
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.text)
			if ok != tc.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tc.text, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
