package transform

import (
	"github.com/opmodel/icongen/internal/jsmodule"
	"github.com/opmodel/icongen/internal/svg"
)

// vueAdapter produces render functions shaped like the output of the Vue
// template compiler in module mode.
type vueAdapter struct{}

func (vueAdapter) Framework() Framework { return Vue }

func (vueAdapter) Render(markup, identifier string, format jsmodule.Format) (string, error) {
	return render(buildVue, markup, identifier, format)
}

// Vue runtime helpers, in the order the compiler registers them.
const (
	helperElementVNode = "createElementVNode"
	helperTextVNode    = "createTextVNode"
	helperOpenBlock    = "openBlock"
	helperElementBlock = "createElementBlock"
)

// vueHelpers records which runtime helpers a render function uses.
type vueHelpers map[string]bool

func (h vueHelpers) use(name string) string {
	h[name] = true
	return "_" + name
}

func (h vueHelpers) bindings() []jsmodule.Binding {
	var out []jsmodule.Binding
	for _, name := range []string{helperElementVNode, helperTextVNode, helperOpenBlock, helperElementBlock} {
		if h[name] {
			out = append(out, jsmodule.Binding{Name: name, Alias: "_" + name})
		}
	}
	return out
}

func buildVue(root *svg.Element, _ string) *jsmodule.Module {
	helpers := vueHelpers{}

	children := vueChildren(root.Children, helpers)
	args := append([]jsmodule.Expr{jsmodule.Str(root.Name), vueProps(root.Attrs)}, children...)

	block := jsmodule.Seq{
		jsmodule.Call{Callee: helpers.use(helperOpenBlock)},
		jsmodule.Call{Callee: helpers.use(helperElementBlock), Args: args},
	}

	decl := "function render(_ctx, _cache) {\n  return " + jsmodule.Print(block, 1) + "\n}"

	return &jsmodule.Module{
		Imports: []jsmodule.Import{{Source: "vue", Names: helpers.bindings()}},
		Default: jsmodule.DefaultExport{Decl: decl},
	}
}

// vueChildren returns the trailing children argument of a vnode call: nothing,
// a single text string, or an array of vnodes.
func vueChildren(nodes []svg.Node, helpers vueHelpers) []jsmodule.Expr {
	if len(nodes) == 0 {
		return nil
	}
	if len(nodes) == 1 {
		if text, ok := nodes[0].(svg.Text); ok {
			return []jsmodule.Expr{jsmodule.Str(string(text))}
		}
	}

	arr := make(jsmodule.Array, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *svg.Element:
			args := append([]jsmodule.Expr{jsmodule.Str(n.Name), vueProps(n.Attrs)}, vueChildren(n.Children, helpers)...)
			arr = append(arr, jsmodule.Call{Callee: helpers.use(helperElementVNode), Args: args})
		case svg.Text:
			arr = append(arr, jsmodule.Call{Callee: helpers.use(helperTextVNode), Args: []jsmodule.Expr{jsmodule.Str(string(n))}})
		}
	}
	return []jsmodule.Expr{arr}
}

func vueProps(attrs []svg.Attr) jsmodule.Expr {
	if len(attrs) == 0 {
		return jsmodule.Raw("null")
	}
	obj := make(jsmodule.Object, 0, len(attrs))
	for _, a := range attrs {
		if a.Name == "style" {
			obj = append(obj, jsmodule.Prop{Key: a.Name, Value: vueStyle(a.Value)})
			continue
		}
		obj = append(obj, jsmodule.Prop{Key: a.Name, Value: jsmodule.Str(a.Value)})
	}
	return obj
}

// vueStyle parses a static style attribute into an object keyed by the CSS
// property names as written.
func vueStyle(css string) jsmodule.Object {
	var obj jsmodule.Object
	for _, decl := range splitDecls(css) {
		obj = append(obj, jsmodule.Prop{Key: decl[0], Value: jsmodule.Str(decl[1])})
	}
	return obj
}
