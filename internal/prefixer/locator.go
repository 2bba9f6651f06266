package prefixer

// DefaultHelpers are the class-composition helpers whose string arguments are
// class lists by convention
var DefaultHelpers = []string{"cva", "cn", "clsx", "classnames", "cx", "twMerge", "twJoin", "tv"}

// DefaultExemptKeys name properties whose object values map variant names to
// variant values ("size": "default") rather than to class lists
var DefaultExemptKeys = []string{"defaultVariants"}

// classAttributes are the JSX attributes holding class lists
var classAttributes = map[string]bool{
	"className": true,
	"class":     true,
}

// Locator walks a lowered syntax tree and yields candidate class strings
type Locator struct {
	helpers    map[string]bool
	exemptKeys map[string]bool
}

// NewLocator creates a locator. Nil slices fall back to the defaults.
func NewLocator(helpers, exemptKeys []string) *Locator {
	if helpers == nil {
		helpers = DefaultHelpers
	}
	if exemptKeys == nil {
		exemptKeys = DefaultExemptKeys
	}
	return &Locator{
		helpers:    toSet(helpers),
		exemptKeys: toSet(exemptKeys),
	}
}

// Locate returns every candidate literal in document order
func (l *Locator) Locate(root *Node) []Candidate {
	var out []Candidate

	Inspect(root, func(n *Node, ancestors []*Node) bool {
		if n.Kind != NodeString {
			return true
		}
		if c, ok := l.classify(n, ancestors); ok {
			out = append(out, c)
		}
		return false
	})

	return out
}

// classify decides the context of a string literal from its parent chain
func (l *Locator) classify(n *Node, ancestors []*Node) (Candidate, bool) {
	parent := ancestorAt(ancestors, 1)
	grandparent := ancestorAt(ancestors, 2)
	if parent == nil {
		return Candidate{}, false
	}

	c := Candidate{
		Start: n.Start,
		End:   n.End,
		Quote: n.Str.Quote,
		Raw:   n.Str.Raw,
		Value: n.Str.Value,
		JSX:   n.Str.JSX,
	}

	switch parent.Kind {
	case NodeArguments:
		if grandparent != nil && grandparent.Kind == NodeCall && l.helpers[grandparent.Name] {
			c.Context = HelperCallArgument
			return c, true
		}

	case NodePair:
		if n.Role != RoleValue {
			return Candidate{}, false
		}
		c.Context = ObjectPropertyValue
		c.Exempt = l.isVariantNameValue(parent, grandparent, ancestorAt(ancestors, 3))
		return c, true

	case NodeJSXAttribute:
		if classAttributes[parent.Name] {
			c.Context = JSXClassAttribute
			return c, true
		}
	}

	return Candidate{}, false
}

// isVariantNameValue reports whether a pair's value is a variant name: the
// pair sits in an object that is itself the value of an exempt key, as in
// { defaultVariants: { size: "default" } }.
func (l *Locator) isVariantNameValue(pair, object, outer *Node) bool {
	if pair == nil || object == nil || outer == nil {
		return false
	}
	return object.Kind == NodeObject &&
		object.Role == RoleValue &&
		outer.Kind == NodePair &&
		l.exemptKeys[outer.Name]
}

// ancestorAt returns the n-th nearest ancestor (1 = parent)
func ancestorAt(ancestors []*Node, n int) *Node {
	if n > len(ancestors) {
		return nil
	}
	return ancestors[len(ancestors)-n]
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
