// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package esdate

import (
	"fmt"
	"strings"
)

// Unit is one of Elasticsearch date-math's rounding/arithmetic units.
type Unit string

const (
	Years   Unit = "y"
	Months  Unit = "M"
	Weeks   Unit = "w"
	Days    Unit = "d"
	Hours   Unit = "h"
	Minutes Unit = "m"
	Seconds Unit = "s"
)

// opKind distinguishes an add/subtract step from a round-down step.
type opKind int

const (
	opAdd opKind = iota
	opRound
)

type op struct {
	kind   opKind
	amount int
	unit   Unit
}

func (o op) String() string {
	if o.kind == opRound {
		return "/" + string(o.unit)
	}
	sign := "+"
	if o.amount < 0 {
		sign = "-"
	}
	n := o.amount
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%s%d%s", sign, n, o.unit)
}

// AnchorLiteral is the fixed starting point of a date-math expression:
// either the literal "now" or a formatted Value rendered in F's format.
type AnchorLiteral string

const Now AnchorLiteral = "now"

// Expr[F] is a date-math expression anchored at a fixed point in time and
// bound to exactly one Format F. The type parameter is phantom: it exists
// only to prevent Value from mixing Expr[BasicDateTime] into a field
// declared as Expr[EpochMillis] at compile time.
type Expr[F Format] struct {
	anchor AnchorLiteral
	ops    []op
}

// NewExpr anchors a new date-math expression at "now".
func NewExpr[F Format]() Expr[F] {
	return Expr[F]{anchor: Now}
}

// AnchorAt anchors a new date-math expression at a specific Value, rendered
// with format. format is taken as an explicit argument, not conjured from
// F's zero value, so a runtime-configured Format like PatternFormat works
// identically to a zero-size marker type like BasicDateTime.
func AnchorAt[F Format](format F, v Value) Expr[F] {
	return Expr[F]{anchor: AnchorLiteral(format.FormatValue(v))}
}

// Add appends an addition (or, for negative n, subtraction) step.
func (e Expr[F]) Add(n int, unit Unit) Expr[F] {
	e.ops = append(append([]op{}, e.ops...), op{kind: opAdd, amount: n, unit: unit})
	return e
}

// Round appends a round-down-to-unit step.
func (e Expr[F]) Round(unit Unit) Expr[F] {
	e.ops = append(append([]op{}, e.ops...), op{kind: opRound, unit: unit})
	return e
}

// String renders the expression in Elasticsearch's date-math grammar:
// anchor, then "||" only if the anchor is a formatted value (not "now") and
// there is at least one op, then each op in sequence, e.g. "now+1h/d" or
// "2024-01-01T00:00:00.000Z||+1M-1d/d".
func (e Expr[F]) String() string {
	var b strings.Builder
	b.WriteString(string(e.anchor))
	if len(e.ops) == 0 {
		return b.String()
	}
	if e.anchor != Now {
		b.WriteString("||")
	}
	for _, o := range e.ops {
		b.WriteString(o.String())
	}
	return b.String()
}

// FormattableValue is a Value that has been confirmed to belong to a
// document field mapped with Format F — the only thing Expr[F].Value will
// accept, so a Value produced against the wrong mapping is a compile error.
// It carries its own pre-rendered anchor text, computed once at
// construction time, so re-anchoring an Expr never needs to reconstruct F.
type FormattableValue[F Format] struct {
	v      Value
	anchor AnchorLiteral
}

// NewFormattableValue binds v to F, rendering it with format. The result's F
// is the type of format, so it can only re-anchor an Expr of that same
// format: NewFormattableValue(BasicDateTime{}, v) yields a
// FormattableValue[BasicDateTime], never any other F.
func NewFormattableValue[F Format](format F, v Value) FormattableValue[F] {
	return FormattableValue[F]{v: v, anchor: AnchorLiteral(format.FormatValue(v))}
}

// Value re-anchors the expression at fv, discarding any prior anchor/ops —
// date-math's "the whole expression starts over at this point" semantics
// when a caller supplies an explicit timestamp instead of "now".
func (e Expr[F]) Value(fv FormattableValue[F]) Expr[F] {
	return Expr[F]{anchor: fv.anchor}
}
