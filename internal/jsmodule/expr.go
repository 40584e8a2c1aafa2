package jsmodule

import (
	"strings"
	"unicode"
)

// Expr is a JavaScript expression that can be printed at an indent depth.
type Expr interface {
	print(b *strings.Builder, depth int)
}

// Raw is verbatim source, e.g. an identifier or a literal.
type Raw string

// Str is a string literal.
type Str string

// Prop is a key/value pair in an object literal. Spread props print as
// "...Value" and ignore Key.
type Prop struct {
	Key    string
	Value  Expr
	Spread bool
}

// Object is an object literal printed one property per line.
type Object []Prop

// Array is an array literal printed one element per line.
type Array []Expr

// Call is a call expression. Pure calls carry a /*#__PURE__*/ annotation.
type Call struct {
	Callee string
	Args   []Expr
	Pure   bool
}

// Cond is a conditional expression: Test ? Then : Else.
type Cond struct {
	Test Expr
	Then Expr
	Else Expr
}

// Seq is a parenthesized comma expression.
type Seq []Expr

// Print renders an expression with nested literals indented from depth.
func Print(e Expr, depth int) string {
	var b strings.Builder
	e.print(&b, depth)
	return b.String()
}

func (r Raw) print(b *strings.Builder, _ int) {
	b.WriteString(string(r))
}

func (s Str) print(b *strings.Builder, _ int) {
	b.WriteString(String(string(s)))
}

func (o Object) print(b *strings.Builder, depth int) {
	if len(o) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, p := range o {
		indent(b, depth+1)
		if p.Spread {
			b.WriteString("...")
		} else {
			b.WriteString(Key(p.Key))
			b.WriteString(": ")
		}
		p.Value.print(b, depth+1)
		if i < len(o)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	indent(b, depth)
	b.WriteString("}")
}

func (a Array) print(b *strings.Builder, depth int) {
	if len(a) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, e := range a {
		indent(b, depth+1)
		e.print(b, depth+1)
		if i < len(a)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	indent(b, depth)
	b.WriteString("]")
}

func (c Call) print(b *strings.Builder, depth int) {
	if c.Pure {
		b.WriteString("/*#__PURE__*/")
	}
	b.WriteString(c.Callee)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.print(b, depth)
	}
	b.WriteString(")")
}

func (c Cond) print(b *strings.Builder, depth int) {
	c.Test.print(b, depth)
	b.WriteString(" ? ")
	c.Then.print(b, depth)
	b.WriteString(" : ")
	c.Else.print(b, depth)
}

func (s Seq) print(b *strings.Builder, depth int) {
	b.WriteString("(")
	for i, e := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		e.print(b, depth)
	}
	b.WriteString(")")
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

// Key returns an object literal key, quoted unless it is a valid identifier.
func Key(k string) string {
	if IsIdentifier(k) {
		return k
	}
	return String(k)
}

// IsIdentifier reports whether s is a valid JavaScript identifier name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '$' || r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// String returns a double-quoted JavaScript string literal.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				const hex = "0123456789abcdef"
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
