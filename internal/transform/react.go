package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/opmodel/icongen/internal/jsmodule"
	"github.com/opmodel/icongen/internal/svg"
)

// reactAdapter produces forwardRef components that accept a title and
// titleId, with props spread over the root svg.
type reactAdapter struct{}

func (reactAdapter) Framework() Framework { return React }

func (reactAdapter) Render(markup, identifier string, format jsmodule.Format) (string, error) {
	return render(buildReact, markup, identifier, format)
}

const createElement = "React.createElement"

func buildReact(root *svg.Element, identifier string) *jsmodule.Module {
	props := reactProps(root.Attrs)
	props = append(props,
		jsmodule.Prop{Key: "ref", Value: jsmodule.Raw("svgRef")},
		jsmodule.Prop{Key: "aria-labelledby", Value: jsmodule.Raw("titleId")},
	)

	title := jsmodule.Cond{
		Test: jsmodule.Raw("title"),
		Then: jsmodule.Call{
			Callee: createElement,
			Args: []jsmodule.Expr{
				jsmodule.Str("title"),
				jsmodule.Object{{Key: "id", Value: jsmodule.Raw("titleId")}},
				jsmodule.Raw("title"),
			},
			Pure: true,
		},
		Else: jsmodule.Raw("null"),
	}

	args := []jsmodule.Expr{
		jsmodule.Str(root.Name),
		jsmodule.Call{Callee: "Object.assign", Args: []jsmodule.Expr{props, jsmodule.Raw("props")}},
		title,
	}
	args = append(args, reactChildren(root.Children)...)

	tree := jsmodule.Call{Callee: createElement, Args: args, Pure: true}

	body := fmt.Sprintf(`const %[1]s = /*#__PURE__*/React.forwardRef(function %[1]s({
  title,
  titleId,
  ...props
}, svgRef) {
  return %[2]s;
});`, identifier, jsmodule.Print(tree, 1))

	return &jsmodule.Module{
		Imports: []jsmodule.Import{{Source: "react", Namespace: "React"}},
		Body:    body,
		Default: jsmodule.DefaultExport{Name: identifier},
	}
}

func reactChildren(nodes []svg.Node) []jsmodule.Expr {
	out := make([]jsmodule.Expr, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *svg.Element:
			out = append(out, reactElement(n))
		case svg.Text:
			out = append(out, jsmodule.Str(string(n)))
		}
	}
	return out
}

func reactElement(el *svg.Element) jsmodule.Expr {
	var props jsmodule.Expr = jsmodule.Raw("null")
	if len(el.Attrs) > 0 {
		props = reactProps(el.Attrs)
	}

	args := append([]jsmodule.Expr{jsmodule.Str(el.Name), props}, reactChildren(el.Children)...)
	return jsmodule.Call{Callee: createElement, Args: args, Pure: true}
}

func reactProps(attrs []svg.Attr) jsmodule.Object {
	obj := make(jsmodule.Object, 0, len(attrs))
	for _, a := range attrs {
		name := ReactPropName(a.Name)
		if name == "style" {
			obj = append(obj, jsmodule.Prop{Key: name, Value: reactStyle(a.Value)})
			continue
		}
		obj = append(obj, jsmodule.Prop{Key: name, Value: reactValue(a.Value)})
	}
	return obj
}

// reactPropRenames holds attributes whose React name is not a plain camelCase
// of the markup name.
var reactPropRenames = map[string]string{
	"class":       "className",
	"for":         "htmlFor",
	"tabindex":    "tabIndex",
	"crossorigin": "crossOrigin",
}

// ReactPropName converts an SVG attribute name to its React DOM prop name.
// aria-* and data-* attributes keep their markup name.
func ReactPropName(attr string) string {
	if renamed, ok := reactPropRenames[attr]; ok {
		return renamed
	}
	if strings.HasPrefix(attr, "aria-") || strings.HasPrefix(attr, "data-") {
		return attr
	}
	if !strings.ContainsAny(attr, "-:") {
		return attr
	}
	return strcase.ToLowerCamel(strings.ReplaceAll(attr, ":", "-"))
}

var numeric = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func reactValue(v string) jsmodule.Expr {
	if numeric.MatchString(v) {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return jsmodule.Raw(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
	return jsmodule.Str(v)
}

// reactStyle converts an inline style declaration list to a style object.
func reactStyle(css string) jsmodule.Object {
	var obj jsmodule.Object
	for _, decl := range splitDecls(css) {
		obj = append(obj, jsmodule.Prop{Key: styleKey(decl[0]), Value: reactValue(decl[1])})
	}
	return obj
}

// styleKey camelCases a CSS property; vendor prefixes keep a capital letter,
// so -webkit-mask becomes WebkitMask. Custom properties are kept as written.
func styleKey(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	if strings.HasPrefix(prop, "-") {
		return strcase.ToCamel(prop[1:])
	}
	return strcase.ToLowerCamel(prop)
}
