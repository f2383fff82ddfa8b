package markup

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_RemovesOrder(t *testing.T) {
	t.Parallel()

	r := Default()

	// meanings, colours, tab, common.
	require.Len(t, r.Removes, len(meanings)+len(colors)+1+len(common))
	assert.Equal(t, "[/m]", r.Removes[0])
	assert.Equal(t, "[m10]", r.Removes[len(meanings)-1])
	assert.Equal(t, "[c aliceblue]", r.Removes[len(meanings)])
	assert.Equal(t, "[/c]", r.Removes[len(meanings)+len(colors)-1])
	assert.Equal(t, "\t", r.Removes[len(meanings)+len(colors)])
	assert.Equal(t, "[/ex]", r.Removes[len(r.Removes)-1])

	for _, tag := range presentational {
		assert.NotContains(t, r.Removes, tag, "default rules must not remove presentational tags")
	}
}

func TestDefault_ColorTable(t *testing.T) {
	t.Parallel()

	// 139 named colours plus the closing tag.
	assert.Len(t, colors, 140)
	assert.Contains(t, colors, "[c darkslategray]")
	assert.Contains(t, colors, "[c yellowgreen]")
}

func TestDefault_Replaces(t *testing.T) {
	t.Parallel()

	r := Default()
	want := []Replace{
		{"[b]", "<strong>"},
		{"[/b]", "</strong>"},
		{"[i]", "<i>"},
		{"[/i]", "</i>"},
		{"[p]", "<span>"},
		{"[/p]", "</span>"},
		{"{-}", "-"},
		{"[ref]", `<span class="reference">`},
		{"[/ref]", "</span>"},
		{"[sub]", "<sub>"},
		{"[/sub]", "</sub>"},
		{"[sup]", "<sup>"},
		{"[/sup]", "</sup>"},
	}
	assert.Equal(t, want, r.Replaces)
}

func TestDefault_Prefixes(t *testing.T) {
	t.Parallel()

	r := Default()
	assert.Equal(t, []string{"#"}, r.MetadataPrefixes)
	assert.Equal(t, []string{"\t", " "}, r.DefinitionPrefixes)
}

func TestNoMarkup(t *testing.T) {
	t.Parallel()

	r := NoMarkup()
	def := Default()

	assert.Empty(t, r.Replaces)
	require.Len(t, r.Removes, len(def.Removes)+len(presentational))
	assert.Equal(t, def.Removes, r.Removes[:len(def.Removes)], "default removes come first")
	assert.Equal(t, presentational, r.Removes[len(def.Removes):])
	assert.Equal(t, def.MetadataPrefixes, r.MetadataPrefixes)
	assert.Equal(t, def.DefinitionPrefixes, r.DefinitionPrefixes)
}

func TestConstructors_ReturnFreshTables(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Removes[0] = "mutated"
	a.Replaces[0].Replace = "mutated"

	b := Default()
	assert.Equal(t, "[/m]", b.Removes[0])
	assert.Equal(t, "<strong>", b.Replaces[0].Replace)

	n := NoMarkup()
	n.Removes[0] = "mutated"
	assert.Equal(t, "[/m]", NoMarkup().Removes[0])
}

func TestCustom(t *testing.T) {
	t.Parallel()

	removes := []string{"[m1]", "[m1]", "[/m]"}
	replaces := []Replace{{Search: "[b]", Replace: "<TUHTI>"}}

	r := Custom(removes, replaces)
	assert.Equal(t, removes, r.Removes, "duplicates are kept")
	assert.Equal(t, replaces, r.Replaces)
	assert.Equal(t, []string{"#"}, r.MetadataPrefixes)

	removes[0] = "changed"
	assert.Equal(t, "[m1]", r.Removes[0], "Custom copies caller slices")
}

func TestCustom_Empty(t *testing.T) {
	t.Parallel()

	r := Custom(nil, nil)
	assert.Empty(t, r.Removes)
	assert.Empty(t, r.Replaces)
	assert.Equal(t, "keep [b]tags[/b]", Format("  keep [b]tags[/b]  ", r))
}

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
		want    Rules
	}{
		{name: "", want: Default()},
		{name: NameDefault, want: Default()},
		{name: NameNone, want: NoMarkup()},
		{name: " None ", want: NoMarkup()},
		{name: "fancy", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, slices.Equal(tt.want.Removes, got.Removes))
			assert.Equal(t, tt.want.Replaces, got.Replaces)
		})
	}
}
