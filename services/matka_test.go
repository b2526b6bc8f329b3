package services

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func dayCells(open, jodi, close string) string {
	return fmt.Sprintf("<td>%s</td><td>%s</td><td>%s</td>", open, jodi, close)
}

func holidayCells() string {
	return `<td>**</td><td><font color="red">Holiday</font></td><td>**</td>`
}

func chartFixture() string {
	var b strings.Builder
	b.WriteString("<table><tbody>")
	b.WriteString("<tr><td>Date</td><td colspan='21'>Results</td></tr>")

	// Week of Mon 01/01/2024: Tuesday is a holiday.
	b.WriteString("<tr><td>01/01/2024 to 07/01/2024</td>")
	b.WriteString(dayCells("123", "60", "550"))
	b.WriteString(holidayCells())
	b.WriteString(dayCells("100", "15", "230"))
	b.WriteString(dayCells("116", "88", "260"))
	b.WriteString(dayCells("137", "19", "126"))
	b.WriteString(dayCells("250", "77", "340"))
	b.WriteString(dayCells("490", "34", "112"))
	b.WriteString("</tr>")

	// Week of Mon 08/01/2024: Monday's close half not yet declared.
	b.WriteString("<tr><td>08/01/2024 to 14/01/2024</td>")
	b.WriteString(dayCells("578", "0*", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString(dayCells("***", "**", "***"))
	b.WriteString("</tr>")

	b.WriteString("</tbody></table>")
	return b.String()
}

func TestParseChart(t *testing.T) {
	weeks, err := ParseChart(chartFixture())
	if err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weeks))
	}

	week := weeks[0]
	if week.DateRange != "01/01/2024 to 07/01/2024" {
		t.Errorf("date range = %q", week.DateRange)
	}
	if len(week.Results) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Results))
	}

	mon := week.Results[0]
	if mon.DayOfWeek != "MON" || mon.IsClosed {
		t.Errorf("monday = %+v", mon)
	}
	if mon.OpeningPanna != "123" || mon.ClosingPanna != "550" || mon.Jodi != "60" {
		t.Errorf("monday result = %+v", mon)
	}

	tue := week.Results[1]
	if !tue.IsClosed {
		t.Error("tuesday should be a holiday")
	}
	if tue.OpeningPanna != PannaUndeclared || tue.Jodi != JodiUndeclared || tue.ClosingPanna != PannaUndeclared {
		t.Errorf("holiday not sentinel-filled: %+v", tue)
	}

	// A declared open with sentinel close keeps the raw partial jodi.
	partial := weeks[1].Results[0]
	if partial.IsClosed {
		t.Error("partially declared day is not a holiday")
	}
	if partial.OpeningPanna != "578" || partial.ClosingPanna != PannaUndeclared {
		t.Errorf("partial day = %+v", partial)
	}
	if partial.Declared(SegmentClose) || partial.Declared(SegmentBoth) {
		t.Error("undeclared halves reported as declared")
	}
	if !partial.Declared(SegmentOpen) {
		t.Error("declared open half reported as undeclared")
	}
}

// The jodi printed on the chart is re-derived from the pannas, so a typo
// upstream can not flip winners.
func TestParseChartRederivesJodi(t *testing.T) {
	html := "<table><tbody><tr><td>h</td></tr>" +
		"<tr><td>01/01/2024 to 07/01/2024</td>" +
		dayCells("123", "99", "550") +
		strings.Repeat(dayCells("***", "**", "***"), 6) +
		"</tr></tbody></table>"

	weeks, err := ParseChart(html)
	if err != nil {
		t.Fatal(err)
	}
	if got := weeks[0].Results[0].Jodi; got != "60" {
		t.Errorf("jodi = %q, want re-derived 60", got)
	}
}

func TestParseChartEmpty(t *testing.T) {
	weeks, err := ParseChart("<html><body>temporarily down</body></html>")
	if err != nil {
		t.Fatal(err)
	}
	if weeks != nil {
		t.Errorf("got %v, want nil", weeks)
	}
}

func TestFindResultForDate(t *testing.T) {
	weeks, err := ParseChart(chartFixture())
	if err != nil {
		t.Fatal(err)
	}

	// Wednesday 3 Jan 2024 IST.
	wed := time.Date(2024, 1, 3, 12, 0, 0, 0, istLocation)
	got := FindResultForDate(weeks, wed)
	if got == nil {
		t.Fatal("no result for covered date")
	}
	if got.DayOfWeek != "WED" || got.OpeningPanna != "100" || got.ClosingPanna != "230" {
		t.Errorf("wednesday result = %+v", got)
	}

	// The same instant expressed in UTC must resolve to the same IST day.
	gotUTC := FindResultForDate(weeks, wed.UTC())
	if gotUTC == nil || gotUTC.DayOfWeek != "WED" {
		t.Errorf("UTC lookup = %+v, want WED", gotUTC)
	}

	// Sunday end of the first week is still covered.
	sun := time.Date(2024, 1, 7, 23, 30, 0, 0, istLocation)
	if got := FindResultForDate(weeks, sun); got == nil || got.DayOfWeek != "SUN" {
		t.Errorf("sunday lookup = %+v", got)
	}

	// Dates outside every week return nothing.
	if got := FindResultForDate(weeks, time.Date(2023, 12, 25, 12, 0, 0, 0, istLocation)); got != nil {
		t.Errorf("uncovered date = %+v, want nil", got)
	}
}

func TestParseDayWindow(t *testing.T) {
	start, end, err := ParseDayWindow("2024-01-03")
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, istLocation)) {
		t.Errorf("start = %v, want IST midnight", start)
	}
	if start.Location() != time.UTC || end.Location() != time.UTC {
		t.Error("window bounds not normalized to UTC")
	}
	if !end.After(start) || end.Sub(start) >= 24*time.Hour {
		t.Errorf("window %v .. %v is not one day", start, end)
	}

	// An instant late in the UTC evening belongs to the next IST date;
	// the next IST day's window must contain it.
	late := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)
	if late.Before(start) || late.After(end) {
		t.Errorf("window %v .. %v misses %v", start, end, late)
	}

	if _, _, err := ParseDayWindow("03/01/2024"); err == nil {
		t.Error("wrong date layout accepted")
	}
}
