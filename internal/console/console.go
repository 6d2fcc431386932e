// Package console implements the interactive line-oriented teller menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/davideconti/bank-teller/internal/models"
	"github.com/davideconti/bank-teller/internal/service"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	failure = color.New(color.FgRed)
	success = color.New(color.FgGreen)
)

// Console drives the menu loop on top of the teller service. It owns no
// business rules: amount and balance validation happen in the core, the
// console only loops until it gets a syntactically plausible line.
type Console struct {
	teller service.Teller
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a console reading from in and writing to out.
func New(teller service.Teller, in io.Reader, out io.Writer) *Console {
	return &Console{
		teller: teller,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run executes the menu loop until the user quits or input ends.
// Operation failures are reported as one-line messages; no error ever
// terminates the loop.
func (c *Console) Run(ctx context.Context) error {
	heading.Fprintln(c.out, "========================================")
	heading.Fprintln(c.out, " Bank Teller (CLI)")
	heading.Fprintln(c.out, "========================================")

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Menu:")
		fmt.Fprintln(c.out, "  1) List customers")
		fmt.Fprintln(c.out, "  2) Show customer balance")
		fmt.Fprintln(c.out, "  3) Deposit")
		fmt.Fprintln(c.out, "  4) Withdraw")
		fmt.Fprintln(c.out, "  5) Create customer")
		fmt.Fprintln(c.out, "  0) Quit")

		choice, ok := c.readLine("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.listCustomers(ctx)
		case "2":
			c.showBalance(ctx)
		case "3":
			c.move(ctx, "Amount to deposit (e.g. 10.50): ", c.teller.Deposit, "Deposit made.")
		case "4":
			c.move(ctx, "Amount to withdraw (e.g. 10.50): ", c.teller.Withdraw, "Withdrawal made.")
		case "5":
			c.createCustomer(ctx)
		case "0":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			failure.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) listCustomers(ctx context.Context) {
	customers, err := c.teller.ListCustomers(ctx)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(c.out, "No customers yet. Create one with option 5.")
		return
	}

	fmt.Fprintln(c.out, "Customers:")
	for _, cust := range customers {
		balance := c.teller.FormatMoney(cust.Account.Balance())
		fmt.Fprintf(c.out, "  - ID %d | %s | Balance: %s\n", cust.ID, cust.Name, balance)
	}
}

func (c *Console) showBalance(ctx context.Context) {
	id, ok := c.readCustomerID()
	if !ok {
		return
	}

	customer, err := c.teller.GetCustomer(ctx, id)
	if err != nil {
		c.reportError(err)
		return
	}
	if customer == nil {
		failure.Fprintln(c.out, "Customer not found.")
		return
	}

	fmt.Fprintf(c.out, "Customer: %s\n", customer.Name)
	fmt.Fprintf(c.out, "Balance: %s\n", c.teller.FormatMoney(customer.Account.Balance()))
}

// move runs one deposit or withdrawal through the given teller operation.
func (c *Console) move(
	ctx context.Context,
	amountPrompt string,
	op func(ctx context.Context, customerID int, amount models.Money) (models.Money, error),
	done string,
) {
	id, ok := c.readCustomerID()
	if !ok {
		return
	}

	amount, ok := c.readAmount(amountPrompt)
	if !ok {
		return
	}

	newBalance, err := op(ctx, id, amount)
	if err != nil {
		c.reportError(err)
		return
	}

	success.Fprintf(c.out, "%s New balance: %s\n", done, c.teller.FormatMoney(newBalance))
}

func (c *Console) createCustomer(ctx context.Context) {
	name, ok := c.readLine("Customer name: ")
	if !ok {
		return
	}

	balance, ok := c.readAmount("Opening balance (e.g. 10.50): ")
	if !ok {
		return
	}

	customer, err := c.teller.CreateCustomer(ctx, name, balance)
	if err != nil {
		c.reportError(err)
		return
	}

	success.Fprintf(c.out, "Customer created with ID %d. Opening balance: %s\n",
		customer.ID, c.teller.FormatMoney(balance))
}

// readLine prompts once and returns the trimmed line. ok is false when
// input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readCustomerID re-prompts until it gets a non-negative integer.
func (c *Console) readCustomerID() (int, bool) {
	for {
		raw, ok := c.readLine("Customer ID: ")
		if !ok {
			return 0, false
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			failure.Fprintln(c.out, "Enter a whole number >= 0.")
			continue
		}
		return id, true
	}
}

// readAmount prompts once and parses the amount; the core's parser is the
// validation authority.
func (c *Console) readAmount(prompt string) (models.Money, bool) {
	raw, ok := c.readLine(prompt)
	if !ok {
		return models.Money{}, false
	}
	amount, err := models.ParseMoney(raw)
	if err != nil {
		failure.Fprintln(c.out, "Invalid amount. Enter a positive number with at most two decimals (e.g. 10.50).")
		return models.Money{}, false
	}
	return amount, true
}

func (c *Console) reportError(err error) {
	failure.Fprintf(c.out, "ERROR: %v\n", err)
}
