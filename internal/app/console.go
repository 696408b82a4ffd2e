package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const msgInvalidInput = "Error: Invalid input. Please try again."

// console reads answers line by line. Every read returns io.EOF once the
// input is exhausted.
type console struct {
	in           *bufio.Scanner
	out          io.Writer
	dividerWidth int
}

func newConsole(in io.Reader, out io.Writer, dividerWidth int) *console {
	return &console{in: bufio.NewScanner(in), out: out, dividerWidth: dividerWidth}
}

func (c *console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, args...)
}

func (c *console) divider() {
	c.println(strings.Repeat("-", c.dividerWidth))
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// choice prints a menu and reads the selected item.
func (c *console) choice(menu string) (string, error) {
	c.printf("%s\n\nEnter your choice: ", menu)
	s, err := c.readLine()
	if err != nil {
		return "", err
	}
	c.divider()
	return s, nil
}

func (c *console) invalidChoice() {
	c.println(msgInvalidInput)
	c.divider()
}

func (c *console) inputString(prompt string) (string, error) {
	for {
		s, err := c.inputOptionalString(prompt)
		if err != nil || s != "" {
			return s, err
		}
		c.println("Input cannot be empty.")
	}
}

func (c *console) inputOptionalString(prompt string) (string, error) {
	c.printf("%s", prompt)
	return c.readLine()
}

func (c *console) inputInteger(prompt string, canBeNegative bool) (int64, error) {
	for {
		s, err := c.inputOptionalString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil && (canBeNegative || n >= 0) {
			return n, nil
		}
		if canBeNegative {
			c.println("Invalid input. Please enter a whole number.")
		} else {
			c.println("Invalid input. Please enter a positive integer.")
		}
	}
}

func (c *console) inputAmount(prompt string) (decimal.Decimal, error) {
	for {
		s, err := c.inputOptionalString(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(s)
		if err == nil && !d.IsNegative() {
			return d, nil
		}
		c.println("Invalid input. Please enter a positive amount.")
	}
}

// inputDate reads a yyyy-mm-dd date. A non-zero notBefore rejects earlier
// dates.
func (c *console) inputDate(prompt string, notBefore time.Time) (time.Time, error) {
	for {
		s, err := c.inputOptionalString(prompt)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			c.println("Invalid date format. Please enter a valid date (yyyy-mm-dd).")
			continue
		}
		if !notBefore.IsZero() && t.Before(notBefore) {
			c.println("The date cannot be earlier than today's date. Please enter a valid date.")
			continue
		}
		return t, nil
	}
}

// confirm asks a y/n question. An empty answer takes the default.
func (c *console) confirm(question string, yes bool) (bool, error) {
	def := "n"
	if yes {
		def = "y"
	}
	c.printf("%s\ny/n [%s]: ", question, def)
	s, err := c.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "":
		return yes, nil
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
