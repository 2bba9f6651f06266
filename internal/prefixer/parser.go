package prefixer

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// grammarFor selects the tree-sitter grammar for a script kind. The
// javascript grammar covers JSX; plain TypeScript must not see JSX because
// `<T>expr` casts are ambiguous with elements.
func grammarFor(kind FileKind) (*sitter.Language, error) {
	switch kind {
	case KindJS, KindJSX:
		return javascript.GetLanguage(), nil
	case KindTS:
		return typescript.GetLanguage(), nil
	case KindTSX:
		return tsx.GetLanguage(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// Parse parses a script document and lowers it into the locator's tree.
// Any syntax error in the document is reported as a *ParseError; no partial
// tree is returned.
func Parse(src []byte, kind FileKind) (*Node, error) {
	lang, err := grammarFor(kind)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, &ParseError{Kind: kind, Message: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, src, kind)
	}

	return lower(root, src, RoleNone, false), nil
}

// syntaxError locates the first ERROR or MISSING node in document order
func syntaxError(root *sitter.Node, src []byte, kind FileKind) *ParseError {
	bad := firstErrorNode(root)
	if bad == nil {
		return &ParseError{Kind: kind, Message: "syntax error"}
	}

	pos := bad.StartPoint()
	pe := &ParseError{
		Kind:   kind,
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
	}
	if bad.IsMissing() {
		pe.Message = fmt.Sprintf("missing %s", bad.Type())
		return pe
	}

	text := bad.Content(src)
	if len(text) > 40 {
		text = text[:37] + "..."
	}
	pe.Message = fmt.Sprintf("unexpected %q", text)
	return pe
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// lower converts a tree-sitter node and its named descendants
func lower(n *sitter.Node, src []byte, role Role, inJSXAttr bool) *Node {
	out := &Node{
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		Role:  role,
	}

	var keyNode, valueNode *sitter.Node

	switch n.Type() {
	case "string":
		out.Kind = NodeString
		out.Str = newStringLit(n.Content(src), inJSXAttr)
		return out

	case "template_string":
		out.Kind = NodeTemplate

	case "call_expression":
		out.Kind = NodeCall
		if fn := n.ChildByFieldName("function"); fn != nil && fn.Type() == "identifier" {
			out.Name = fn.Content(src)
		}

	case "arguments":
		out.Kind = NodeArguments

	case "object":
		out.Kind = NodeObject

	case "pair":
		out.Kind = NodePair
		keyNode = n.ChildByFieldName("key")
		valueNode = n.ChildByFieldName("value")
		out.Name = propertyKeyName(keyNode, src)

	case "jsx_attribute":
		out.Kind = NodeJSXAttribute
		if n.NamedChildCount() > 0 {
			out.Name = n.NamedChild(0).Content(src)
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		childRole := RoleNone
		switch {
		case sameNode(child, valueNode):
			childRole = RoleValue
		case sameNode(child, keyNode):
			childRole = RoleKey
		}
		out.Children = append(out.Children, lower(child, src, childRole, out.Kind == NodeJSXAttribute))
	}

	return out
}

// propertyKeyName returns the static name of an object key, or "" for
// computed keys
func propertyKeyName(key *sitter.Node, src []byte) string {
	if key == nil {
		return ""
	}
	switch key.Type() {
	case "string":
		return newStringLit(key.Content(src), false).Value
	case "computed_property_name":
		return ""
	}
	return key.Content(src)
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() &&
		a.EndByte() == b.EndByte() &&
		a.Type() == b.Type()
}
