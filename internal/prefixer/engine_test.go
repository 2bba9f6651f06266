package prefixer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPrefix(t *testing.T, src string, kind FileKind, prefix string) (string, *Result) {
	t.Helper()
	res, err := NewEngine().AddPrefix([]byte(src), kind, prefix)
	require.NoError(t, err)
	return string(Apply([]byte(src), res.Edits)), res
}

func TestEngineJSXClassAttribute(t *testing.T) {
	src := `export function Button() {
  return <button className="flex bg-blue-500 hover:bg-blue-700">Go</button>;
}
`
	want := `export function Button() {
  return <button className="tw-flex tw-bg-blue-500 hover:tw-bg-blue-700">Go</button>;
}
`
	got, res := addPrefix(t, src, KindTSX, "tw-")
	assert.Equal(t, want, got)
	require.Len(t, res.Edits, 1)
	assert.Equal(t, 1, res.Changed)
	assert.Equal(t, 3, res.Tokens)
	assert.Equal(t, 2, res.Families[FamilyBackgrounds])
	assert.Equal(t, 1, res.Families[FamilyLayout])

	// Second pass finds nothing to do
	again, err := NewEngine().AddPrefix([]byte(got), KindTSX, "tw-")
	require.NoError(t, err)
	assert.True(t, again.NothingToChange())
}

func TestEngineVariantConfig(t *testing.T) {
	src := `import { cva } from "class-variance-authority";

export const button = cva("inline-flex items-center", {
  variants: {
    size: {
      default: "p-4 text-sm",
      small: "p-2",
    },
  },
  defaultVariants: {
    size: "default",
  },
});
`
	want := `import { cva } from "class-variance-authority";

export const button = cva("tw-inline-flex tw-items-center", {
  variants: {
    size: {
      default: "tw-p-4 tw-text-sm",
      small: "tw-p-2",
    },
  },
  defaultVariants: {
    size: "default",
  },
});
`
	got, res := addPrefix(t, src, KindTS, "tw-")
	assert.Equal(t, want, got)
	assert.Equal(t, 3, res.Changed)
	assert.Equal(t, 4, res.Candidates)
}

func TestEngineHelperCalls(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind FileKind
		want string
	}{
		{
			name: "single quotes are preserved",
			src:  `const c = cn('bg-red-500', "p-4");`,
			kind: KindJS,
			want: `const c = cn('tw-bg-red-500', "tw-p-4");`,
		},
		{
			name: "escaped whitespace separates tokens",
			src:  `const c = clsx("flex\tgap-2");`,
			kind: KindJS,
			want: `const c = clsx("tw-flex tw-gap-2");`,
		},
		{
			name: "unknown callee is ignored",
			src:  `const c = format("flex gap-2");`,
			kind: KindJS,
			want: `const c = format("flex gap-2");`,
		},
		{
			name: "member callee is not a helper",
			src:  `const c = utils.cn("flex gap-2");`,
			kind: KindJS,
			want: `const c = utils.cn("flex gap-2");`,
		},
		{
			name: "template literals are left alone",
			src:  "const c = cn(`flex ${gap}`);",
			kind: KindJS,
			want: "const c = cn(`flex ${gap}`);",
		},
		{
			name: "helper arguments are not gated",
			src:  `const c = twMerge("shadow");`,
			kind: KindTS,
			want: `const c = twMerge("tw-shadow");`,
		},
		{
			name: "jsx in plain javascript",
			src:  `const el = <div class="grid gap-4" title="flex">x</div>;`,
			kind: KindJSX,
			want: `const el = <div class="tw-grid tw-gap-4" title="flex">x</div>;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := addPrefix(t, tt.src, tt.kind, "tw-")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngineObjectValuesAreGated(t *testing.T) {
	src := `const meta = {
  title: "Hello world this is a page",
  label: "Sign in",
  layout: "container mx-auto",
};
`
	want := `const meta = {
  title: "Hello world this is a page",
  label: "Sign in",
  layout: "tw-container tw-mx-auto",
};
`
	got, res := addPrefix(t, src, KindTS, "tw-")
	assert.Equal(t, want, got)
	assert.Equal(t, 3, res.Candidates)
	assert.Equal(t, 1, res.Changed)
}

func TestEngineNoOp(t *testing.T) {
	src := `const el = <div className="tw-flex tw-bg-blue-500">x</div>;`

	res, err := NewEngine().AddPrefix([]byte(src), KindTSX, "tw-")
	require.NoError(t, err)
	assert.True(t, res.NothingToChange())
	assert.Empty(t, res.Edits)
	assert.Equal(t, src, string(Apply([]byte(src), res.Edits)))
}

func TestEngineRenamePrefix(t *testing.T) {
	src := `const el = <div className="tw-flex hover:tw-bg-blue-700 card">x</div>;`

	res, err := NewEngine().RenamePrefix([]byte(src), KindTSX, "tw-", "ui-")
	require.NoError(t, err)
	assert.Equal(t,
		`const el = <div className="ui-flex hover:ui-bg-blue-700 card">x</div>;`,
		string(Apply([]byte(src), res.Edits)))

	res, err = NewEngine().RenamePrefix([]byte(src), KindTSX, "tw-", "")
	require.NoError(t, err)
	assert.Equal(t,
		`const el = <div className="flex hover:bg-blue-700 card">x</div>;`,
		string(Apply([]byte(src), res.Edits)))
}

func TestEngineCSSApply(t *testing.T) {
	src := `.btn {
  @apply px-4 py-2 hover:bg-blue-700;
}

.title { @apply font-bold !important }
.plain { color: red; }
`
	want := `.btn {
  @apply tw-px-4 tw-py-2 hover:tw-bg-blue-700;
}

.title { @apply tw-font-bold !important }
.plain { color: red; }
`
	got, res := addPrefix(t, src, KindCSS, "tw-")
	assert.Equal(t, want, got)
	assert.Equal(t, 2, res.Candidates)
}

func TestEngineMerge(t *testing.T) {
	src := `const c = cn("p-2 p-4");`

	e := NewEngine()
	e.Merge = true
	res, err := e.AddPrefix([]byte(src), KindJS, "tw-")
	require.NoError(t, err)
	assert.Equal(t, `const c = cn("tw-p-4");`, string(Apply([]byte(src), res.Edits)))
}

func TestEngineCustomHelpers(t *testing.T) {
	src := `const c = styles("flex gap-2"); const d = cn("flex");`

	e := NewEngine()
	e.Helpers = []string{"styles"}
	res, err := e.AddPrefix([]byte(src), KindJS, "tw-")
	require.NoError(t, err)
	assert.Equal(t,
		`const c = styles("tw-flex tw-gap-2"); const d = cn("flex");`,
		string(Apply([]byte(src), res.Edits)))
}

func TestEngineCandidates(t *testing.T) {
	src := `const v = cva("flex", { defaultVariants: { size: "sm" }, variants: { size: { sm: "p-2" } } });`

	candidates, err := NewEngine().Candidates([]byte(src), KindJS)
	require.NoError(t, err)

	var values []string
	for _, c := range candidates {
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"flex", "p-2"}, values)
	assert.Equal(t, HelperCallArgument, candidates[0].Context)
	assert.Equal(t, ObjectPropertyValue, candidates[1].Context)
}

func TestEngineParseError(t *testing.T) {
	src := "const = ;\nconst el = <div className=\"flex\">"

	res, err := NewEngine().AddPrefix([]byte(src), KindTSX, "tw-")
	require.Error(t, err)
	assert.Nil(t, res)

	pe, ok := AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, KindTSX, pe.Kind)
	assert.Positive(t, pe.Line)
}

func TestEngineUnsupportedKind(t *testing.T) {
	_, err := NewEngine().AddPrefix([]byte("x"), KindUnknown, "tw-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func TestPlanRejectsOverlaps(t *testing.T) {
	candidates := []Candidate{
		{Start: 0, End: 10, Value: "flex"},
		{Start: 5, End: 15, Value: "grid"},
	}
	_, err := Plan(candidates, func(v string) (string, []Family) {
		return "tw-" + v, []Family{FamilyLayout}
	})
	require.ErrorIs(t, err, ErrOverlappingEdits)
}

func TestPlanSortsDescending(t *testing.T) {
	src := []byte(`a "flex" b "grid" c`)
	candidates := []Candidate{
		{Start: 2, End: 8, Quote: '"', Value: "flex"},
		{Start: 11, End: 17, Quote: '"', Value: "grid"},
	}
	res, err := Plan(candidates, func(v string) (string, []Family) {
		return "tw-" + v, []Family{FamilyLayout}
	})
	require.NoError(t, err)
	require.Len(t, res.Edits, 2)
	assert.Greater(t, res.Edits[0].Start, res.Edits[1].Start)
	assert.Equal(t, `a "tw-flex" b "tw-grid" c`, string(Apply(src, res.Edits)))
}

func TestEngineKeepsEscapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "surrogate pair",
			src:  `const c = cn("flex before:content-['\uD83D\uDE00']");`,
			want: `const c = cn("tw-flex before:tw-content-['\uD83D\uDE00']");`,
		},
		{
			name: "unicode escape",
			src:  `const c = cn("after:content-['\u00e9'] flex");`,
			want: `const c = cn("after:tw-content-['\u00e9'] tw-flex");`,
		},
		{
			name: "escaped quote",
			src:  `const c = cn('flex after:content-[\'x\']');`,
			want: `const c = cn('tw-flex after:tw-content-[\'x\']');`,
		},
		{
			name: "hex escape in an unchanged token",
			src:  `const c = cn("p-4 \x41");`,
			want: `const c = cn("tw-p-4 \x41");`,
		},
		{
			name: "hex escape in a rewritten token",
			src:  `const c = cn("\x70-4");`,
			want: `const c = cn("tw-\x70-4");`,
		},
		{
			name: "escaped quote inside double quotes",
			src:  `const c = cn("flex before:content-[\'a\']");`,
			want: `const c = cn("tw-flex before:tw-content-[\'a\']");`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := addPrefix(t, tt.src, KindJS, "tw-")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, res.Changed)
		})
	}
}

func TestEngineRenameKeepsEscapes(t *testing.T) {
	src := `const c = cn("tw-flex after:tw-content-['\u00e9']");`

	res, err := NewEngine().RenamePrefix([]byte(src), KindJS, "tw-", "")
	require.NoError(t, err)
	assert.Equal(t, `const c = cn("flex after:content-['\u00e9']");`, string(Apply([]byte(src), res.Edits)))
}

func TestEngineExemptVariantNames(t *testing.T) {
	src := `const v = cva("flex", {
  variants: { layout: { stack: "grid" } },
  defaultVariants: { layout: "grid", display: "flex" },
});`
	want := `const v = cva("tw-flex", {
  variants: { layout: { stack: "tw-grid" } },
  defaultVariants: { layout: "grid", display: "flex" },
});`

	got, res := addPrefix(t, src, KindTS, "tw-")
	assert.Equal(t, want, got)
	assert.Equal(t, 2, res.Changed)
}

func TestEngineCustomExemptKeys(t *testing.T) {
	src := `const v = cva("flex", {
  compoundDefaults: { display: "flex" },
  defaultVariants: { layout: "grid" },
});`
	want := `const v = cva("tw-flex", {
  compoundDefaults: { display: "flex" },
  defaultVariants: { layout: "tw-grid" },
});`

	engine := NewEngine()
	engine.ExemptKeys = []string{"compoundDefaults"}
	res, err := engine.AddPrefix([]byte(src), KindTS, "tw-")
	require.NoError(t, err)
	assert.Equal(t, want, string(Apply([]byte(src), res.Edits)))
	assert.Equal(t, 2, res.Changed)
}

func TestEncodeStrings(t *testing.T) {
	assert.Equal(t, `'it\'s'`, encodeJSString("it's", '\''))
	assert.Equal(t, `"a\\b\n"`, encodeJSString("a\\b\n", '"'))
	assert.Equal(t, `"a&quot;b"`, encodeJSXString(`a"b`, '"'))
	assert.Equal(t, "é\n\x41", decodeJSString(`é\n\x41`))
	assert.Equal(t, "😀", decodeJSString(`\u{1F600}`))
	assert.Equal(t, "😀", decodeJSString(`\uD83D\uDE00`))
	assert.Equal(t, "\uFFFDx", decodeJSString(`\uD83Dx`))
}

func TestKindFromPath(t *testing.T) {
	assert.Equal(t, KindTSX, KindFromPath("src/Button.tsx"))
	assert.Equal(t, KindJS, KindFromPath("tailwind.config.CJS"))
	assert.Equal(t, KindCSS, KindFromPath("app.css"))
	assert.Equal(t, KindUnknown, KindFromPath("README.md"))
}
