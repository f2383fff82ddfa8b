// Package markup holds the rule tables that rewrite or strip Lingvo DSL
// inline tags, and the line formatter that applies them.
package markup

import (
	"fmt"
	"strings"
)

// Rule set names accepted by ByName.
const (
	NameDefault = "default"
	NameNone    = "none"
	NameCustom  = "custom"
)

// Replace is a literal search/replacement pair.
type Replace struct {
	Search  string `yaml:"search"  json:"search"`
	Replace string `yaml:"replace" json:"replace"`
}

// Rules describes how a DSL line is classified and rewritten.
// Removes are applied before Replaces; both keep their slice order.
type Rules struct {
	Removes            []string  `json:"removes"`
	Replaces           []Replace `json:"replaces"`
	MetadataPrefixes   []string  `json:"metadata_prefixes"`
	DefinitionPrefixes []string  `json:"definition_prefixes"`
}

const tab = "\t"

var meanings = []string{
	"[/m]", "[m1]", "[m2]", "[m3]", "[m4]", "[m5]", "[m6]", "[m7]", "[m8]", "[m9]", "[m10]",
}

var colors = []string{
	"[c aliceblue]", "[c antiquewhite]", "[c aqua]", "[c aquamarine]", "[c azure]",
	"[c beige]", "[c bisque]", "[c blanchedalmond]", "[c blue]", "[c blueviolet]",
	"[c brown]", "[c burlywood]", "[c cadetblue]", "[c chartreuse]", "[c chocolate]",
	"[c coral]", "[c cornflowerblue]", "[c cornsilk]", "[c crimson]", "[c cyan]",
	"[c darkblue]", "[c darkcyan]", "[c darkgoldenrod]", "[c darkgray]", "[c darkgreen]",
	"[c darkkhaki]", "[c darkmagenta]", "[c darkolivegreen]", "[c darkorange]", "[c darkorchid]",
	"[c darkred]", "[c darksalmon]", "[c darkseagreen]", "[c darkslateblue]", "[c darkslategray]",
	"[c darkturquoise]", "[c darkviolet]", "[c deeppink]", "[c deepskyblue]", "[c dimgray]",
	"[c dodgerblue]", "[c firebrick]", "[c floralwhite]", "[c forestgreen]", "[c fuchsia]",
	"[c gainsboro]", "[c ghostwhite]", "[c gold]", "[c goldenrod]", "[c gray]",
	"[c green]", "[c greenyellow]", "[c honeydew]", "[c hotpink]", "[c indianred]",
	"[c indigo]", "[c ivory]", "[c khaki]", "[c lavender]", "[c lavenderblush]",
	"[c lawngreen]", "[c lemonchiffon]", "[c lightblue]", "[c lightcoral]", "[c lightcyan]",
	"[c lightgoldenrodyellow]", "[c lightgreen]", "[c lightgrey]", "[c lightpink]", "[c lightsalmon]",
	"[c lightseagreen]", "[c lightskyblue]", "[c lightslategray]", "[c lightsteelblue]", "[c lightyellow]",
	"[c lime]", "[c limegreen]", "[c linen]", "[c magenta]", "[c maroon]",
	"[c mediumaquamarine]", "[c mediumblue]", "[c mediumorchid]", "[c mediumpurple]", "[c mediumseagreen]",
	"[c mediumslateblue]", "[c mediumspringgreen]", "[c mediumturquoise]", "[c mediumvioletred]", "[c midnightblue]",
	"[c mintcream]", "[c mistyrose]", "[c moccasin]", "[c navajowhite]", "[c navy]",
	"[c oldlace]", "[c olive]", "[c olivedrab]", "[c orange]", "[c orangered]",
	"[c orchid]", "[c palegoldenrod]", "[c palegreen]", "[c paleturquoise]", "[c palevioletred]",
	"[c papayawhip]", "[c peachpuff]", "[c peru]", "[c pink]", "[c plum]",
	"[c powderblue]", "[c purple]", "[c red]", "[c rosybrown]", "[c royalblue]",
	"[c saddlebrown]", "[c salmon]", "[c sandybrown]", "[c seagreen]", "[c seashell]",
	"[c sienna]", "[c silver]", "[c skyblue]", "[c slateblue]", "[c slategray]",
	"[c snow]", "[c springgreen]", "[c steelblue]", "[c tan]", "[c teal]",
	"[c thistle]", "[c tomato]", "[c turquoise]", "[c violet]", "[c wheat]",
	"[c white]", "[c whitesmoke]", "[c yellow]", "[c yellowgreen]", "[/c]",
}

var common = []string{
	"[u]", "[/u]", "[trn]", "[/trn]", "[!trs]", "[/!trs]", "[com]", "[/com]",
	"[s]", "[/s]", "[lang]", "[/lang]", "[ex]", "[/ex]",
}

// presentational tags: replaced by HTML in Default, removed in NoMarkup.
var presentational = []string{
	"[b]", "[/b]", "[i]", "[/i]", "[p]", "[/p]", "[ref]", "[/ref]", "[sub]", "[/sub]", "[sup]", "[/sup]",
}

var htmlReplaces = []Replace{
	{Search: "[b]", Replace: "<strong>"},
	{Search: "[/b]", Replace: "</strong>"},
	{Search: "[i]", Replace: "<i>"},
	{Search: "[/i]", Replace: "</i>"},
	{Search: "[p]", Replace: "<span>"},
	{Search: "[/p]", Replace: "</span>"},
	{Search: "{-}", Replace: "-"},
	{Search: "[ref]", Replace: `<span class="reference">`},
	{Search: "[/ref]", Replace: "</span>"},
	{Search: "[sub]", Replace: "<sub>"},
	{Search: "[/sub]", Replace: "</sub>"},
	{Search: "[sup]", Replace: "<sup>"},
	{Search: "[/sup]", Replace: "</sup>"},
}

func defaultRemoves() []string {
	out := make([]string, 0, len(meanings)+len(colors)+1+len(common)+len(presentational))
	out = append(out, meanings...)
	out = append(out, colors...)
	out = append(out, tab)
	out = append(out, common...)
	return out
}

func defaultMetadataPrefixes() []string   { return []string{"#"} }
func defaultDefinitionPrefixes() []string { return []string{tab, " "} }

// Default rewrites presentational tags to HTML and removes structural,
// colour, and non-presentational tags.
func Default() Rules {
	replaces := make([]Replace, len(htmlReplaces))
	copy(replaces, htmlReplaces)

	return Rules{
		Removes:            defaultRemoves(),
		Replaces:           replaces,
		MetadataPrefixes:   defaultMetadataPrefixes(),
		DefinitionPrefixes: defaultDefinitionPrefixes(),
	}
}

// NoMarkup removes every known tag, presentational ones included.
func NoMarkup() Rules {
	return Rules{
		Removes:            append(defaultRemoves(), presentational...),
		Replaces:           []Replace{},
		MetadataPrefixes:   defaultMetadataPrefixes(),
		DefinitionPrefixes: defaultDefinitionPrefixes(),
	}
}

// Custom builds rules from caller-supplied tables. Patterns are not validated;
// duplicates and overlaps are applied exactly as given.
func Custom(removes []string, replaces []Replace) Rules {
	r := Rules{
		Removes:            make([]string, len(removes)),
		Replaces:           make([]Replace, len(replaces)),
		MetadataPrefixes:   defaultMetadataPrefixes(),
		DefinitionPrefixes: defaultDefinitionPrefixes(),
	}
	copy(r.Removes, removes)
	copy(r.Replaces, replaces)
	return r
}

// ByName resolves a built-in rule set. Names are case-insensitive.
func ByName(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDefault, "":
		return Default(), nil
	case NameNone:
		return NoMarkup(), nil
	default:
		return Rules{}, fmt.Errorf("unknown markup rule set %q", name)
	}
}
