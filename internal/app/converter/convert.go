package converter

import (
	"context"

	"github.com/heartmarshall/dslconv/internal/adapter/jsonfile"
	"github.com/heartmarshall/dslconv/internal/dsl"
	"github.com/heartmarshall/dslconv/internal/dsl/markup"
)

// ToJSON converts the DSL file at in and writes the entries to out as a
// compact JSON array.
func ToJSON(ctx context.Context, in, out string, rules markup.Rules) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, err := dsl.Load(in, rules)
	if err != nil {
		return err
	}
	return jsonfile.Write(out, d.Entries, jsonfile.Options{})
}
