package prefixer

import (
	"sort"
	"strings"
)

// Family groups utility stems the way the framework documentation does
type Family string

// Utility families
const (
	FamilyLayout        Family = "Layout"
	FamilyFlexGrid      Family = "Flexbox & Grid"
	FamilySpacing       Family = "Spacing"
	FamilySizing        Family = "Sizing"
	FamilyTypography    Family = "Typography"
	FamilyBackgrounds   Family = "Backgrounds"
	FamilyBorders       Family = "Borders"
	FamilyEffects       Family = "Effects"
	FamilyFilters       Family = "Filters"
	FamilyTables        Family = "Tables"
	FamilyTransitions   Family = "Transitions & Animation"
	FamilyTransforms    Family = "Transforms"
	FamilyInteractivity Family = "Interactivity"
	FamilySVG           Family = "SVG"
	FamilyAccessibility Family = "Accessibility"
	FamilyCustom        Family = "Custom"
)

// familyStems is the default vocabulary. Entries ending in "-" are stems and
// match any body starting with them; all other entries match exactly.
// A stem listed under several families belongs to the first one.
var familyStems = []struct {
	family Family
	stems  []string
}{
	{FamilyLayout, []string{
		"container", "aspect-", "columns-", "break-after-", "break-before-", "break-inside-",
		"box-", "box-decoration-",
		"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid",
		"table", "inline-table", "table-caption", "table-cell", "table-column",
		"table-column-group", "table-footer-group", "table-header-group",
		"table-row-group", "table-row", "flow-root", "contents", "list-item", "hidden",
		"float-", "clear-", "isolate", "isolation-", "object-", "overflow-", "overscroll-",
		"static", "fixed", "absolute", "relative", "sticky",
		"inset-", "top-", "right-", "bottom-", "left-", "start-", "end-",
		"visible", "invisible", "collapse", "z-",
	}},
	{FamilyFlexGrid, []string{
		"basis-", "flex-", "grow", "grow-", "shrink", "shrink-", "order-",
		"grid-", "col-", "row-", "auto-cols-", "auto-rows-",
		"gap-", "gap-x-", "gap-y-",
		"justify-", "justify-items-", "justify-self-",
		"items-", "content-", "self-",
		"place-", "place-items-", "place-content-", "place-self-",
	}},
	{FamilySpacing, []string{
		"p-", "px-", "py-", "ps-", "pe-", "pt-", "pr-", "pb-", "pl-",
		"m-", "mx-", "my-", "ms-", "me-", "mt-", "mr-", "mb-", "ml-",
		"space-x-", "space-y-", "space-x-reverse", "space-y-reverse",
	}},
	{FamilySizing, []string{
		"w-", "min-w-", "max-w-", "h-", "min-h-", "max-h-", "size-",
	}},
	{FamilyTypography, []string{
		"font-", "text-", "antialiased", "subpixel-antialiased", "italic", "not-italic",
		"normal-nums", "ordinal", "slashed-zero", "lining-nums", "oldstyle-nums",
		"proportional-nums", "tabular-nums", "diagonal-fractions", "stacked-fractions",
		"tracking-", "line-clamp-", "leading-", "list-", "list-image-",
		"underline", "overline", "line-through", "no-underline",
		"decoration-", "underline-offset-",
		"uppercase", "lowercase", "capitalize", "normal-case",
		"truncate", "text-ellipsis", "text-clip", "text-wrap", "text-nowrap",
		"text-balance", "text-pretty",
		"indent-", "align-", "whitespace-", "break-", "hyphens-",
	}},
	{FamilyBackgrounds, []string{
		"bg-", "bg-clip-", "bg-origin-", "bg-repeat-", "bg-none",
		"from-", "via-", "to-",
	}},
	{FamilyBorders, []string{
		"rounded", "rounded-",
		"border", "border-", "border-t", "border-r", "border-b", "border-l",
		"border-x", "border-y", "border-s", "border-e",
		"divide-", "divide-x", "divide-y", "divide-x-reverse", "divide-y-reverse",
		"outline", "outline-", "outline-offset-",
		"ring", "ring-", "ring-inset", "ring-offset-",
	}},
	{FamilyEffects, []string{
		"shadow", "shadow-", "opacity-", "mix-blend-", "bg-blend-",
	}},
	{FamilyFilters, []string{
		"filter", "blur", "blur-", "brightness-", "contrast-", "drop-shadow", "drop-shadow-",
		"grayscale", "grayscale-", "hue-rotate-", "invert", "invert-",
		"saturate-", "sepia", "sepia-",
		"backdrop-filter", "backdrop-blur", "backdrop-blur-", "backdrop-brightness-",
		"backdrop-contrast-", "backdrop-grayscale", "backdrop-grayscale-",
		"backdrop-hue-rotate-", "backdrop-invert", "backdrop-invert-",
		"backdrop-opacity-", "backdrop-saturate-", "backdrop-sepia", "backdrop-sepia-",
	}},
	{FamilyTables, []string{
		"border-collapse", "border-separate",
		"border-spacing-", "border-spacing-x-", "border-spacing-y-",
		"table-auto", "table-fixed", "caption-",
	}},
	{FamilyTransitions, []string{
		"transition", "transition-", "duration-", "ease-", "delay-", "animate-",
	}},
	{FamilyTransforms, []string{
		"transform", "transform-", "transform-gpu", "transform-cpu", "transform-none",
		"scale-", "scale-x-", "scale-y-", "rotate-",
		"translate-x-", "translate-y-", "skew-x-", "skew-y-", "origin-",
	}},
	{FamilyInteractivity, []string{
		"accent-", "appearance-", "cursor-", "caret-", "pointer-events-",
		"resize", "resize-", "scroll-", "scroll-m-", "scroll-p-",
		"snap-", "touch-", "select-", "will-change-",
		"group", "peer",
	}},
	{FamilySVG, []string{
		"fill-", "stroke-",
	}},
	{FamilyAccessibility, []string{
		"sr-only", "not-sr-only", "forced-color-adjust-",
	}},
}

// Vocabulary is an immutable membership oracle over utility stems.
// It is safe for concurrent use.
type Vocabulary struct {
	exact map[string]Family
	stems map[string]Family
}

var defaultVocabulary = buildDefaultVocabulary()

func buildDefaultVocabulary() *Vocabulary {
	v := &Vocabulary{
		exact: make(map[string]Family),
		stems: make(map[string]Family),
	}
	for _, group := range familyStems {
		v.add(group.family, group.stems...)
	}
	return v
}

// DefaultVocabulary returns the standard utility table
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

// NewVocabulary builds a vocabulary from raw entries, all filed under FamilyCustom
func NewVocabulary(entries ...string) *Vocabulary {
	v := &Vocabulary{
		exact: make(map[string]Family),
		stems: make(map[string]Family),
	}
	v.add(FamilyCustom, entries...)
	return v
}

// With returns a copy of v extended with the given entries (FamilyCustom).
// v itself is not modified.
func (v *Vocabulary) With(entries ...string) *Vocabulary {
	out := &Vocabulary{
		exact: make(map[string]Family, len(v.exact)+len(entries)),
		stems: make(map[string]Family, len(v.stems)+len(entries)),
	}
	for k, f := range v.exact {
		out.exact[k] = f
	}
	for k, f := range v.stems {
		out.stems[k] = f
	}
	out.add(FamilyCustom, entries...)
	return out
}

func (v *Vocabulary) add(family Family, entries ...string) {
	for _, e := range entries {
		e = strings.TrimSpace(e)
		// A leading "-" is the negative-value escape, not part of the stem
		e = strings.TrimPrefix(e, "-")
		if e == "" {
			continue
		}
		target := v.exact
		if strings.HasSuffix(e, "-") {
			target = v.stems
		}
		if _, exists := target[e]; !exists {
			target[e] = family
		}
	}
}

// IsKnownUtility reports whether body names a utility: an exact entry, or a
// body starting with a stem. One leading "-" is ignored.
func (v *Vocabulary) IsKnownUtility(body string) bool {
	_, ok := v.Family(body)
	return ok
}

// Family returns the family of the matching entry. Exact entries win over
// stems, and the longest stem wins among stems.
func (v *Vocabulary) Family(body string) (Family, bool) {
	body = strings.TrimPrefix(body, "-")
	if body == "" {
		return "", false
	}
	if f, ok := v.exact[body]; ok {
		return f, true
	}

	// Probe every hyphen position from the right so the most specific stem wins
	for i := len(body) - 1; i >= 0; i-- {
		if body[i] != '-' {
			continue
		}
		if f, ok := v.stems[body[:i+1]]; ok {
			return f, true
		}
	}
	return "", false
}

// Entries lists every entry, sorted, stems included with their trailing "-"
func (v *Vocabulary) Entries() []string {
	out := make([]string, 0, len(v.exact)+len(v.stems))
	for k := range v.exact {
		out = append(out, k)
	}
	for k := range v.stems {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries
func (v *Vocabulary) Len() int {
	return len(v.exact) + len(v.stems)
}
