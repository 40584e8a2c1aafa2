package manifest

import (
	"encoding/json"
	"path"

	"github.com/opmodel/icongen/internal/jsmodule"
)

// subManifest marks a directory's module format for resolvers and bundlers.
type subManifest struct {
	Type        string `json:"type,omitempty"`
	SideEffects bool   `json:"sideEffects"`
}

// SubManifest returns the package-relative path and content of the
// sub-manifest for a format. CommonJS files sit at the package root, whose
// manifest is the merged base manifest, so ok is false for CommonJS.
func SubManifest(format jsmodule.Format) (rel string, content []byte, ok bool, err error) {
	if format != jsmodule.ESM {
		return "", nil, false, nil
	}

	data, err := json.MarshalIndent(subManifest{Type: "module", SideEffects: false}, "", "  ")
	if err != nil {
		return "", nil, false, err
	}
	return path.Join(format.Dir(), FileName), append(data, '\n'), true, nil
}
