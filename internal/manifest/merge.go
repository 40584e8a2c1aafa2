package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	oerrors "github.com/opmodel/icongen/internal/errors"
)

// FileName is the manifest file name.
const FileName = "package.json"

// exportsKey is the only top-level key Merge rewrites.
const exportsKey = "exports"

// Load reads a base manifest and checks it is a JSON object.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.WrapConfig(err, "reading base manifest", path)
	}
	if err := validate(data); err != nil {
		return nil, oerrors.WrapConfig(err, "invalid base manifest", path)
	}
	return data, nil
}

func validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("not valid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return errors.New("top-level value is not an object")
	}
	return nil
}

// Merge replaces the exports key of base with exports. Every other key keeps
// its position and its raw value; if base has no exports key it is appended.
// The result is indented with two spaces and ends with a newline.
func Merge(base []byte, exports Exports) ([]byte, error) {
	if err := validate(base); err != nil {
		return nil, oerrors.WrapConfig(err, "invalid base manifest", "")
	}

	exportsJSON, err := json.Marshal(exports)
	if err != nil {
		return nil, fmt.Errorf("encoding exports: %w", err)
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	n := 0
	replaced := false

	gjson.ParseBytes(base).ForEach(func(key, value gjson.Result) bool {
		if key.String() == exportsKey && replaced {
			return true
		}
		if n > 0 {
			compact.WriteByte(',')
		}
		compact.WriteString(key.Raw)
		compact.WriteByte(':')
		if key.String() == exportsKey {
			compact.Write(exportsJSON)
			replaced = true
		} else {
			compact.WriteString(value.Raw)
		}
		n++
		return true
	})

	if !replaced {
		if n > 0 {
			compact.WriteByte(',')
		}
		compact.WriteString(`"` + exportsKey + `":`)
		compact.Write(exportsJSON)
	}
	compact.WriteByte('}')

	return indent(compact.Bytes())
}

// CurrentExports returns the raw JSON of the exports key in a manifest, or
// nil when the key is absent.
func CurrentExports(manifest []byte) []byte {
	v := gjson.GetBytes(manifest, exportsKey)
	if !v.Exists() {
		return nil
	}
	return []byte(v.Raw)
}

func indent(compact []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
