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
	"testing"
	"time"
)

func TestExprStringWithNowAnchor(t *testing.T) {
	e := NewExpr[EpochMillis]().Add(1, Hours).Round(Days)
	if got, want := e.String(), "now+1h/d"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExprStringWithLiteralAnchor(t *testing.T) {
	anchor := NewValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e := AnchorAt(StrictDateOptionalTime{}, anchor).Add(1, Months).Add(-1, Days).Round(Days)
	got := e.String()
	if got != "2024-01-01T00:00:00.000Z||+1M-1d/d" {
		t.Fatalf("got %q", got)
	}
}

func TestPatternFormatRoundTrip(t *testing.T) {
	f, err := NewPatternFormat("yyyy-MM-dd", "yyyy-MM-dd")
	if err != nil {
		t.Fatalf("NewPatternFormat: %v", err)
	}
	v := NewValue(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	if got, want := f.FormatValue(v), "2024-03-07"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	parsed, err := f.Parse("2024-03-07")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Time().Equal(v.Time()) {
		t.Fatalf("round-trip mismatch: %v vs %v", parsed.Time(), v.Time())
	}
}

func TestPatternFormatRejectsUnsupportedLetter(t *testing.T) {
	if _, err := NewPatternFormat("bogus", "yyyy-QQ-dd"); err == nil {
		t.Fatal("expected an error for the unsupported Joda letter Q")
	}
}

func TestEpochMillisRoundTrip(t *testing.T) {
	v := NewValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	var f EpochMillis
	s := f.FormatValue(v)
	parsed, err := f.Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Time().Equal(v.Time()) {
		t.Fatalf("round-trip mismatch")
	}
}
