package markup

import "testing"

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markup", "Lorem ipsum", "Lorem ipsum"},
		{"strong", "<strong>Dolor</strong> sit.", "Dolor sit."},
		{"reference span", `see <span class="reference">bar</span>`, "see bar"},
		{"nested", "<i><sub>2</sub></i>x", "2x"},
		{"entity", "fish &amp; chips", "fish & chips"},
		{"whitespace collapsed", "a   <i>b</i>\t c", "a b c"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlainText_OfFormattedDefinition(t *testing.T) {
	t.Parallel()

	line := "\t[m1][b]Dolor[/b] sit [ref]amet[/ref].[/m]"
	html := Format(line, Default())
	plain := Format(line, NoMarkup())

	if got := PlainText(html); got != plain {
		t.Errorf("PlainText(%q) = %q, want %q", html, got, plain)
	}
}
