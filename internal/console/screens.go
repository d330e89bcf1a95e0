package console

import "fmt"

// seatMapScreen shows the current state of every seat.
func (c *Console) seatMapScreen() error {
	c.header("SEATING MAP")
	fmt.Fprintln(c.out, "The current state of the seats available - [#] available, [*] reserved.")
	RenderSeatMap(c.out, c.svc.Ledger())
	return c.pause()
}

// statsScreen shows seat totals, sales and the per-row breakdown.
func (c *Console) statsScreen() error {
	c.header("STATISTICS")
	fmt.Fprint(c.out, "Below are the statistics for the seating availability and total sales made.\n\n")
	RenderStatistics(c.out, c.currency, c.svc.Report())
	return c.pause()
}
