package markup

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PlainText drops the HTML tags a replace table may have produced and returns
// the visible text with whitespace collapsed. Entities are unescaped.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var out strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return strings.Join(strings.Fields(s), " ")
			}
			break
		}
		if tt == html.TextToken {
			out.Write(z.Text())
		}
	}
	return strings.Join(strings.Fields(out.String()), " ")
}
