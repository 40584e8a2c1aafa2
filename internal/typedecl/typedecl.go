// Package typedecl produces TypeScript declarations for generated components.
package typedecl

import (
	"fmt"

	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/transform"
)

const (
	reactTemplate = `import * as React from 'react';
declare const %[1]s: React.ForwardRefExoticComponent<React.PropsWithoutRef<React.SVGProps<SVGSVGElement>> & { title?: string, titleId?: string } & React.RefAttributes<SVGSVGElement>>;
export default %[1]s;
`

	vueTemplate = `import type { FunctionalComponent, HTMLAttributes, VNodeProps } from 'vue';
declare const %[1]s: FunctionalComponent<HTMLAttributes & VNodeProps>;
export default %[1]s;
`
)

// Component returns the declaration file for one component.
func Component(fw transform.Framework, identifier string) (string, error) {
	switch fw {
	case transform.React:
		return fmt.Sprintf(reactTemplate, identifier), nil
	case transform.Vue:
		return fmt.Sprintf(vueTemplate, identifier), nil
	default:
		return "", oerrors.NewConfigError(fmt.Sprintf("no type declaration template for %s", fw), "")
	}
}
