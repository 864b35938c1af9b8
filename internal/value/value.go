// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package value implements the tagged value model of the interpreter: the
// Value interface and its IntNum/FloatNum/BigNum/Sym/Str/SExpr/QExpr/Err/Fun
// variants, together with structural equality and the canonical printer.
package value

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopherlisp/lispy/internal/bignum"
)

// Value is the common interface implemented by every tagged variant.
type Value interface {
	fmt.Stringer

	// IsNil reports whether this value represents the empty value (the
	// empty QExpr {} or the empty SExpr ()); every other value returns false.
	IsNil() bool

	// IsAtom reports whether this value is a non-compound value (everything
	// except SExpr and QExpr).
	IsAtom() bool

	// IsEqual performs the structural equality test of §4.8.
	IsEqual(other Value) bool

	// Copy returns a deep copy of the value, per the ownership discipline:
	// immutable atoms and builtins return themselves, a BigNum returns a new
	// BigNum, a lambda copies its formals and body, and compounds copy their
	// children recursively.
	Copy() Value
}

// Printer is implemented by values that can write themselves efficiently.
type Printer interface {
	Print(w io.Writer) (int, error)
}

// Print writes v to w, using v's own Print method if available.
func Print(w io.Writer, v Value) (int, error) {
	if p, ok := v.(Printer); ok {
		return p.Print(w)
	}
	return io.WriteString(w, v.String())
}

// Builtin is the signature every builtin function implements: it receives
// the calling environment and the already-evaluated argument list (as a
// QExpr) and returns a result value.
type Builtin func(env Env, args *QExpr) Value

// Env is the minimal surface internal/env.Environment exposes to builtins,
// kept here to avoid an import cycle between value and env.
type Env interface {
	Get(sym Sym) Value
	Put(sym Sym, v Value)
	Def(sym Sym, v Value)
	Copy() Env
	Parent() Env
}

// ---- Err -------------------------------------------------------------

// Err represents an in-language error value, first-class per §3 and §7.
type Err struct{ Message string }

func MakeErr(format string, args ...any) *Err { return &Err{Message: fmt.Sprintf(format, args...)} }

func (e *Err) IsNil() bool               { return false }
func (e *Err) IsAtom() bool              { return true }
func (e *Err) Copy() Value               { return e }
func (e *Err) String() string            { return "Error: " + e.Message }
func (e *Err) IsEqual(other Value) bool {
	o, ok := other.(*Err)
	return ok && e.Message == o.Message
}

// ---- IntNum ------------------------------------------------------------

type IntNum int64

func (n IntNum) IsNil() bool  { return false }
func (n IntNum) IsAtom() bool { return true }
func (n IntNum) Copy() Value  { return n }
func (n IntNum) String() string { return strconv.FormatInt(int64(n), 10) }
func (n IntNum) IsEqual(other Value) bool {
	switch o := other.(type) {
	case IntNum:
		return n == o
	case FloatNum:
		return float64(n) == float64(o)
	default:
		return false
	}
}

// MakeBoolean returns the canonical truth value used by comparison and
// logical builtins: IntNum(1) for true, IntNum(0) for false, matching
// original_source's convention of representing booleans as 0/1 integers.
func MakeBoolean(b bool) Value {
	if b {
		return IntNum(1)
	}
	return IntNum(0)
}

// IsTruthy reports whether v should be treated as true by `if`/`||`/`&&`/
// `!`: zero numbers and the empty QExpr are false, everything else is true.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case IntNum:
		return t != 0
	case FloatNum:
		return t != 0
	case *QExpr:
		return len(t.Children) != 0
	default:
		return true
	}
}

// ---- FloatNum ------------------------------------------------------------

type FloatNum float64

func (n FloatNum) IsNil() bool  { return false }
func (n FloatNum) IsAtom() bool { return true }
func (n FloatNum) Copy() Value  { return n }
// String renders a fixed 6-decimal representation, matching the original's
// `%lf` printf conversion (§4.9, scenario 2: "(+ 1.0 2 3)" -> "6.000000").
func (n FloatNum) String() string {
	return strconv.FormatFloat(float64(n), 'f', 6, 64)
}
func (n FloatNum) IsEqual(other Value) bool {
	switch o := other.(type) {
	case FloatNum:
		return n == o
	case IntNum:
		return float64(n) == float64(o)
	default:
		return false
	}
}

// ---- BigNum ------------------------------------------------------------

// BigNum wraps a bignum.Bignum as a first-class value.
type BigNum struct{ N bignum.Bignum }

func MakeBigNum(n bignum.Bignum) *BigNum { return &BigNum{N: n} }

func (b *BigNum) IsNil() bool  { return false }
func (b *BigNum) IsAtom() bool { return true }
func (b *BigNum) Copy() Value  { cp := b.N; return &BigNum{N: cp} }
func (b *BigNum) String() string { return b.N.String() }
func (b *BigNum) IsEqual(other Value) bool {
	switch o := other.(type) {
	case *BigNum:
		return b.N.Compare(o.N) == 0
	case IntNum:
		return b.N.Compare(bignum.FromInt64(int64(o))) == 0
	default:
		return false
	}
}

// ---- Sym -----------------------------------------------------------------

// Sym is a symbol. Equality is by name, per §4.8 (no interning is required
// for correctness — see DESIGN.md on list-package's pointer-style compare,
// which is a deliberately preserved quirk elsewhere, not here).
type Sym string

func (s Sym) IsNil() bool  { return false }
func (s Sym) IsAtom() bool { return true }
func (s Sym) Copy() Value  { return s }
func (s Sym) String() string { return string(s) }
func (s Sym) IsEqual(other Value) bool {
	o, ok := other.(Sym)
	return ok && s == o
}

// ---- Str -----------------------------------------------------------------

// Str is a string value, with C-style escaping on Print (mirrors
// sx.String.Print, generalized from rune-table driven escaping).
type Str string

func (s Str) IsNil() bool  { return false }
func (s Str) IsAtom() bool { return true }
func (s Str) Copy() Value  { return s }
func (s Str) String() string {
	var sb strings.Builder
	_, _ = s.Print(&sb)
	return sb.String()
}
func (s Str) IsEqual(other Value) bool {
	o, ok := other.(Str)
	return ok && s == o
}

func (s Str) Print(w io.Writer) (int, error) {
	n, err := io.WriteString(w, "\"")
	if err != nil {
		return n, err
	}
	for _, r := range string(s) {
		var esc string
		switch r {
		case '"':
			esc = "\\\""
		case '\\':
			esc = "\\\\"
		case '\n':
			esc = "\\n"
		case '\t':
			esc = "\\t"
		case '\r':
			esc = "\\r"
		default:
			esc = string(r)
		}
		m, werr := io.WriteString(w, esc)
		n += m
		if werr != nil {
			return n, werr
		}
	}
	m, err := io.WriteString(w, "\"")
	return n + m, err
}

// ---- SExpr / QExpr ---------------------------------------------------

// SExpr is an unevaluated or in-evaluation ordered sequence ("(...)").
type SExpr struct{ Children []Value }

// QExpr is a quoted ordered sequence ("{...}"), inert under evaluation.
type QExpr struct{ Children []Value }

func MakeSExpr(vs ...Value) *SExpr { return &SExpr{Children: vs} }
func MakeQExpr(vs ...Value) *QExpr { return &QExpr{Children: vs} }

func (s *SExpr) IsNil() bool  { return len(s.Children) == 0 }
func (s *SExpr) IsAtom() bool { return false }
func (s *SExpr) Copy() Value {
	cp := make([]Value, len(s.Children))
	for i, c := range s.Children {
		cp[i] = c.Copy()
	}
	return &SExpr{Children: cp}
}
func (s *SExpr) String() string {
	var sb strings.Builder
	_, _ = s.Print(&sb)
	return sb.String()
}
func (s *SExpr) Print(w io.Writer) (int, error) { return printSeq(w, "(", ")", s.Children) }
func (s *SExpr) IsEqual(other Value) bool {
	o, ok := other.(*SExpr)
	return ok && seqEqual(s.Children, o.Children)
}

func (q *QExpr) IsNil() bool  { return len(q.Children) == 0 }
func (q *QExpr) IsAtom() bool { return false }
func (q *QExpr) Copy() Value {
	cp := make([]Value, len(q.Children))
	for i, c := range q.Children {
		cp[i] = c.Copy()
	}
	return &QExpr{Children: cp}
}
func (q *QExpr) String() string {
	var sb strings.Builder
	_, _ = q.Print(&sb)
	return sb.String()
}
func (q *QExpr) Print(w io.Writer) (int, error) { return printSeq(w, "{", "}", q.Children) }
func (q *QExpr) IsEqual(other Value) bool {
	o, ok := other.(*QExpr)
	return ok && seqEqual(q.Children, o.Children)
}

func seqEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}

func printSeq(w io.Writer, open, close string, children []Value) (int, error) {
	n, err := io.WriteString(w, open)
	if err != nil {
		return n, err
	}
	for i, c := range children {
		if i > 0 {
			m, werr := io.WriteString(w, " ")
			n += m
			if werr != nil {
				return n, werr
			}
		}
		m, werr := Print(w, c)
		n += m
		if werr != nil {
			return n, werr
		}
	}
	m, err := io.WriteString(w, close)
	return n + m, err
}

// ---- Fun -------------------------------------------------------------

// Fun is either a builtin (native Go function) or a lambda (user-defined
// closure), per §4.5.
type Fun struct {
	Name    string   // non-empty for builtins, used in the printer
	Native  Builtin  // non-nil for builtins
	Formals *QExpr   // lambda formal-parameter list, including possible "&rest"
	Body    *QExpr   // lambda body
	Env     Env      // lambda's captured/partial-application environment
}

func MakeBuiltin(name string, fn Builtin) *Fun {
	return &Fun{Name: name, Native: fn}
}

func MakeLambda(formals, body *QExpr, env Env) *Fun {
	return &Fun{Formals: formals, Body: body, Env: env}
}

func (f *Fun) IsNil() bool  { return false }
func (f *Fun) IsAtom() bool { return true }
func (f *Fun) IsBuiltin() bool { return f.Native != nil }

func (f *Fun) Copy() Value {
	if f.IsBuiltin() {
		return f
	}
	cp := &Fun{
		Formals: f.Formals.Copy().(*QExpr),
		Body:    f.Body.Copy().(*QExpr),
		Env:     f.Env,
	}
	return cp
}

func (f *Fun) String() string {
	if f.IsBuiltin() {
		return fmt.Sprintf("<builtin@%p>", f.Native)
	}
	var sb strings.Builder
	sb.WriteString("(\\ ")
	sb.WriteString(f.Formals.String())
	sb.WriteString(" ")
	sb.WriteString(f.Body.String())
	sb.WriteString(")")
	return sb.String()
}

func (f *Fun) IsEqual(other Value) bool {
	o, ok := other.(*Fun)
	if !ok {
		return false
	}
	if f.IsBuiltin() || o.IsBuiltin() {
		return f == o
	}
	return f.Formals.IsEqual(o.Formals) && f.Body.IsEqual(o.Body)
}
