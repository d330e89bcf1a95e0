package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/theater-seating/internal/ledger"
	"github.com/iliyamo/theater-seating/internal/model"
	"github.com/iliyamo/theater-seating/internal/service"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"12.5":   "$12.50",
		"0":      "$0.00",
		"6.255":  "$6.26",
		"562.50": "$562.50",
	}
	for in, want := range cases {
		if got := FormatMoney("$", decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderSeatMap(t *testing.T) {
	l, err := ledger.New(2, 3, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	l.Reserve(0, 1)

	var buf bytes.Buffer
	RenderSeatMap(&buf, l)

	want := "\n     |  1  2  3\n____________\nR 1  |  #  *  #\nR 2  |  #  #  #\n"
	if buf.String() != want {
		t.Fatalf("unexpected seat map:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestRenderStatistics(t *testing.T) {
	report := service.SalesReport{
		Statistics: model.SeatingStatistics{
			AvailableTotal: 5,
			ReservedTotal:  1,
			AvailableByRow: []int{2, 3},
			ReservedByRow:  []int{1, 0},
		},
		TicketPrice:   decimal.RequireFromString("6.25"),
		TotalSales:    decimal.RequireFromString("6.25"),
		ReservedValue: decimal.RequireFromString("6.25"),
	}
	var buf bytes.Buffer
	RenderStatistics(&buf, "$", report)
	out := buf.String()

	for _, want := range []string{
		"Total Sales: $6.25\n",
		"Seat Totals: 5 available, 1 reserved\n",
		"Occupancy: 16.67%\n",
		"       | Available | Reserved\n",
		"Row 1  | 2         | 1\n",
		"Row 2  | 3         | 0\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderOrderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderOrderSummary(&buf, "$", model.Order{
		Seats: []model.Seat{{Row: 3, Column: 3}},
		Total: decimal.RequireFromString("6.25"),
	})
	want := "Seat Selected:\nT1:[R3, C3]\n\nTickets Requested: 1\nTotal Cost: $6.25\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestParse(t *testing.T) {
	if n, ok := parseInt(" 7 8 9"); !ok || n != 7 {
		t.Fatalf("parseInt: got %d %v", n, ok)
	}
	if _, ok := parseInt("seven"); ok {
		t.Fatalf("parseInt accepted a word")
	}
	if s, ok := parseSeat("2,5"); !ok || s != (model.Seat{Row: 2, Column: 5}) {
		t.Fatalf("parseSeat: got %v %v", s, ok)
	}
	if _, ok := parseSeat("2"); ok {
		t.Fatalf("parseSeat accepted a single number")
	}
	if !confirmed(" Yes") || confirmed("no") || confirmed("") {
		t.Fatalf("confirmed gave unexpected results")
	}
}
