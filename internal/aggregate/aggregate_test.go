package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/icongen/internal/jsmodule"
)

var ids = []string{"ArrowLeftIcon", "XMarkIcon"}

func TestIndex(t *testing.T) {
	assert.Equal(t,
		"export { default as ArrowLeftIcon } from './ArrowLeftIcon.js'\n"+
			"export { default as XMarkIcon } from './XMarkIcon.js'\n",
		Index(ids, jsmodule.ESM))

	assert.Equal(t,
		"module.exports.ArrowLeftIcon = require(\"./ArrowLeftIcon.js\")\n"+
			"module.exports.XMarkIcon = require(\"./XMarkIcon.js\")\n",
		Index(ids, jsmodule.CommonJS))
}

func TestDeclarations(t *testing.T) {
	assert.Equal(t,
		"export { default as ArrowLeftIcon } from './ArrowLeftIcon'\n"+
			"export { default as XMarkIcon } from './XMarkIcon'\n",
		Declarations(ids))
}

func TestIndex_EachComponentOnce(t *testing.T) {
	for _, format := range jsmodule.Formats() {
		out := Index(ids, format)
		for _, id := range ids {
			assert.Equal(t, 1, strings.Count(out, id+" "), "%s in %s index", id, format)
		}
	}
}

func TestIndex_Empty(t *testing.T) {
	assert.Equal(t, "", Index(nil, jsmodule.ESM))
	assert.Equal(t, "", Declarations(nil))
}
