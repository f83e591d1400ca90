package report

import (
	"fmt"
	"io"
	"os"

	"github.com/order-intake-service/internal/model"
)

// Console prints an operator-facing summary of each accepted order. Output is
// best effort: write errors are ignored and never affect the request.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Report(order *model.Order) {
	fmt.Fprintln(c.out, "\n✅ NEW ORDER RECEIVED")
	fmt.Fprintf(c.out, "🕒 Time: %s\n", order.Timestamp)
	fmt.Fprintf(c.out, "🪑 Table Number: %s\n", order.TableNumber)
	fmt.Fprintln(c.out, "🍽️  Items Ordered:")
	for _, line := range order.ItemLines() {
		fmt.Fprintf(c.out, "   - %s\n", line)
	}
	fmt.Fprintf(c.out, "💰 Total Cost: ₹%s\n", order.TotalCost)
	fmt.Fprintf(c.out, "📝 Notes: %s\n", order.Note)
}
