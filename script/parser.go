// Package script parses and compiles the chart description language. A
// script declares one figure, its subplots, and the series they plot; data
// can be written inline or bound from a JSON document through ${path}
// references.
package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Ref", Pattern: `\$\{[^}\n]*\}`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d+|\d+)(?:[eE][-+]?\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),;:]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Script is the root AST node of a chart script.
type Script struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Items []*FigureItem  `parser:"Newline* 'fig' '{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// FigureItem is one statement at figure level: a property assignment or a
// subplot block.
type FigureItem struct {
	Assignment *Assignment   `parser:"  @@"`
	Subplot    *SubplotBlock `parser:"| @@"`
}

// SubplotBlock declares a subplot at a grid cell.
type SubplotBlock struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Row   int            `parser:"'subplot' @Number"`
	Col   int            `parser:"@Number"`
	Items []*SubplotItem `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// SubplotItem is one statement inside a subplot block.
type SubplotItem struct {
	Assignment *Assignment `parser:"  @@"`
	Fill       *FillCmd    `parser:"| @@"`
	Plot       *PlotCmd    `parser:"| @@"`
}

// PlotCmd draws one series: `plot <xs> <ys>` or `step <edges> <ys>`.
type PlotCmd struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"@('plot' | 'step')"`
	X     *SeriesExpr    `parser:"@@"`
	Y     *SeriesExpr    `parser:"@@"`
	Block *OptsBlock     `parser:"( Newline* @@ )?"`
}

// FillCmd shades the region between two curves sharing the same x values:
// `fill <xs> <top> <bottom>`.
type FillCmd struct {
	Pos    lexer.Position `parser:"" json:"-"`
	X      *SeriesExpr    `parser:"'fill' @@"`
	Top    *SeriesExpr    `parser:"@@"`
	Bottom *SeriesExpr    `parser:"@@"`
	Block  *OptsBlock     `parser:"( Newline* @@ )?"`
}

// OptsBlock is a delimited list of option assignments.
type OptsBlock struct {
	Entries []*Assignment `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// SeriesExpr is a data vector: either a ${path} reference into the bound
// document or an inline number list.
type SeriesExpr struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Ref   *RefLiteral    `parser:"  @Ref"`
	Array []float64      `parser:"| '[' Newline* ( @Number ( ( ',' | Newline+ ) Newline* @Number )* )? Newline* ']'"`
}

// Assignment is a `key: value` property.
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value is a generic property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
	Array  []float64      `parser:"| '[' Newline* ( @Number ( ( ',' | Newline+ ) Newline* @Number )* )? Newline* ']'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// RefLiteral strips the ${} wrapper from a reference on capture.
type RefLiteral string

// Capture implements participle.Capture.
func (r *RefLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("reference capture requires value")
	}
	val := values[0]
	val = strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
	*r = RefLiteral(strings.TrimSpace(val))
	return nil
}

// Parse parses a chart script from an io.Reader.
func Parse(r io.Reader) (*Script, error) {
	return scriptParser.Parse("", r)
}

// ParseString parses a chart script from a string.
func ParseString(input string) (*Script, error) {
	return scriptParser.ParseString("", input)
}
