package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/theater-seating/internal/model"
	"github.com/iliyamo/theater-seating/internal/service"
)

// FormatMoney renders amount with the currency symbol and exactly two
// decimal places, rounding half away from zero.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// RenderSeatMap draws the seating grid: a numbered column header, an
// underline, then one labelled line per row with '#' for available and
// '*' for reserved seats.
func RenderSeatMap(w io.Writer, m model.SeatingView) {
	cols := m.ColumnCount()

	fmt.Fprintf(w, "\n%6s", "|")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(w, "%3d", c+1)
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("____", cols))

	for r := 0; r < m.RowCount(); r++ {
		fmt.Fprintf(w, "R %-3d|", r+1)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(w, "%3c", m.State(r, c).Symbol())
		}
		fmt.Fprintln(w)
	}
}

// RenderStatistics prints the sales summary followed by a per-row
// Available/Reserved table.
func RenderStatistics(w io.Writer, symbol string, r service.SalesReport) {
	stats := r.Statistics
	fmt.Fprintf(w, "Total Sales: %s\n", FormatMoney(symbol, r.TotalSales))
	fmt.Fprintf(w, "Ticket Price: %s\n", FormatMoney(symbol, r.TicketPrice))
	fmt.Fprintf(w, "Reserved Seat Value: %s\n", FormatMoney(symbol, r.ReservedValue))
	fmt.Fprintf(w, "Seat Totals: %d available, %d reserved\n", stats.AvailableTotal, stats.ReservedTotal)
	fmt.Fprintf(w, "Occupancy: %s%%\n\n", stats.OccupancyPercent().StringFixed(2))

	fmt.Fprintf(w, "%-7s| %-10s| %s\n", "", "Available", "Reserved")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for i := 0; i < stats.Rows(); i++ {
		fmt.Fprintf(w, "Row %-2d | %-9d | %d\n", i+1, stats.AvailableByRow[i], stats.ReservedByRow[i])
	}
}

// RenderOrderSummary prints the seats in an order followed by the
// quantity and total cost.
func RenderOrderSummary(w io.Writer, symbol string, o model.Order) {
	label := "Seat"
	if o.Quantity() > 1 {
		label = "Seats"
	}
	fmt.Fprintf(w, "%s Selected:", label)
	for i, s := range o.Seats {
		fmt.Fprintf(w, "\nT%d:%s", i+1, s)
	}
	fmt.Fprintf(w, "\n\nTickets Requested: %d\n", o.Quantity())
	fmt.Fprintf(w, "Total Cost: %s\n\n", FormatMoney(symbol, o.Total))
}
