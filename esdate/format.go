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

// Package esdate models Elasticsearch date formats and date-math
// expressions. A Value is always fixed to UTC; a Format governs how a Value
// is rendered to and parsed from the wire, and an Expr[F] ties a date-math
// expression to the one Format it is legal to combine with, so mixing
// formats is a compile error rather than a runtime one.
package esdate

import (
	"fmt"
	"time"
)

// Value is a single point in time, always normalized to UTC.
type Value struct {
	t time.Time
}

// NewValue wraps t, normalizing it to UTC.
func NewValue(t time.Time) Value { return Value{t: t.UTC()} }

// Time returns the underlying UTC time.Time.
func (v Value) Time() time.Time { return v.t }

// ParseError reports a value that does not match a Format's expected shape.
type ParseError struct {
	Format string
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as %s: %v", e.Input, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Format is a named wire representation for date Values. The built-in
// formats are zero-size marker types (BasicDateTime, EpochMillis, ...), and
// PatternFormat is a named struct type, never bare interface-typed values,
// specifically so they can be used as the type
// argument to Expr[F] and esfield.DateMapping[F]: a value alone cannot fill
// a Go generic type parameter, only a named type can.
type Format interface {
	Name() string
	FormatValue(Value) string
	Parse(s string) (Value, error)
}

// layoutFormat implements Format over a fixed time.Time layout string — the
// shape every PatternFormat reduces to. The built-in formats implement
// Format with their own methods instead.
type layoutFormat struct {
	name   string
	layout string
}

func (f layoutFormat) Name() string { return f.name }

func (f layoutFormat) FormatValue(v Value) string { return v.t.Format(f.layout) }

func (f layoutFormat) Parse(s string) (Value, error) {
	t, err := time.Parse(f.layout, s)
	if err != nil {
		return Value{}, &ParseError{Format: f.name, Input: s, Err: err}
	}
	return NewValue(t), nil
}

// BasicDateTime is Elasticsearch's "basic_date_time" format:
// yyyyMMdd'T'HHmmss.SSSZ. Its zero value is a complete, usable Format.
type BasicDateTime struct{}

func (BasicDateTime) Name() string { return "basic_date_time" }

func (BasicDateTime) FormatValue(v Value) string {
	return v.t.Format("20060102T150405.000Z0700")
}

func (BasicDateTime) Parse(s string) (Value, error) {
	t, err := time.Parse("20060102T150405.000Z0700", s)
	if err != nil {
		return Value{}, &ParseError{Format: "basic_date_time", Input: s, Err: err}
	}
	return NewValue(t), nil
}

// StrictDateOptionalTime is Elasticsearch's "strict_date_optional_time"
// format. Its zero value is a complete, usable Format.
type StrictDateOptionalTime struct{}

func (StrictDateOptionalTime) Name() string { return "strict_date_optional_time" }

func (StrictDateOptionalTime) FormatValue(v Value) string {
	return v.t.Format("2006-01-02T15:04:05.000Z07:00")
}

func (StrictDateOptionalTime) Parse(s string) (Value, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05.000Z07:00",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewValue(t), nil
		}
	}
	return Value{}, &ParseError{Format: "strict_date_optional_time", Input: s, Err: fmt.Errorf("no matching layout")}
}

// EpochMillis is Elasticsearch's "epoch_millis" format: milliseconds since
// the Unix epoch, encoded as a decimal integer string. Its zero value is a
// complete, usable Format.
type EpochMillis struct{}

func (EpochMillis) Name() string { return "epoch_millis" }

func (EpochMillis) FormatValue(v Value) string {
	return fmt.Sprintf("%d", v.t.UnixMilli())
}

func (EpochMillis) Parse(s string) (Value, error) {
	var ms int64
	if _, err := fmt.Sscanf(s, "%d", &ms); err != nil {
		return Value{}, &ParseError{Format: "epoch_millis", Input: s, Err: err}
	}
	return NewValue(time.UnixMilli(ms)), nil
}
