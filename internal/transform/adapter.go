// Package transform converts icon markup into framework component modules.
package transform

import (
	"fmt"

	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/jsmodule"
	"github.com/opmodel/icongen/internal/svg"
)

// Framework is a supported UI framework.
type Framework int

const (
	// React renders forwardRef components built from React.createElement.
	React Framework = iota + 1

	// Vue renders compiled render functions built from Vue vnode helpers.
	Vue
)

// Frameworks returns every supported framework.
func Frameworks() []Framework {
	return []Framework{React, Vue}
}

// String returns the package name used for the framework.
func (f Framework) String() string {
	switch f {
	case React:
		return "react"
	case Vue:
		return "vue"
	default:
		return fmt.Sprintf("Framework(%d)", int(f))
	}
}

// ParseFramework maps a package name to its framework.
func ParseFramework(name string) (Framework, error) {
	for _, f := range Frameworks() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, oerrors.NewConfigError(
		fmt.Sprintf("unsupported package %q", name),
		"valid packages: react, vue",
	)
}

// Adapter renders one icon as a component module.
type Adapter interface {
	// Framework returns the framework the adapter targets.
	Framework() Framework

	// Render returns the component source for the given module format.
	Render(markup, identifier string, format jsmodule.Format) (string, error)
}

// For returns the adapter for a framework.
func For(f Framework) (Adapter, error) {
	switch f {
	case React:
		return reactAdapter{}, nil
	case Vue:
		return vueAdapter{}, nil
	default:
		return nil, oerrors.NewConfigError(fmt.Sprintf("no adapter for %s", f), "")
	}
}

// builder turns a parsed icon into a format-neutral module.
type builder func(root *svg.Element, identifier string) *jsmodule.Module

func render(build builder, markup, identifier string, format jsmodule.Format) (string, error) {
	root, err := svg.Parse(markup)
	if err != nil {
		return "", oerrors.NewTransformError("invalid icon markup", identifier, err)
	}

	src, err := build(root, identifier).Render(format)
	if err != nil {
		return "", oerrors.NewTransformError("rendering module", identifier, err)
	}
	return src, nil
}
