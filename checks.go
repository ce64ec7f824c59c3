package formtree

import (
	"regexp"
	"time"

	"github.com/asaskevich/govalidator"
)

// Named checks run a format predicate against the node's value and record
// the outcome for the following On/OnFalse/OnTrue/Unless call. Like every
// chain method they are skipped once an error is attached.

// IsEmail checks the value against the usual email address format.
func (c *Chain) IsEmail() *Chain {
	return c.check(func(v string) any { return govalidator.IsEmail(v) })
}

// IsEmailDeliverable checks the email format and that the domain resolves
// (MX or host lookup). This is a blocking DNS call with no retry; a lookup
// failure simply records false.
func (c *Chain) IsEmailDeliverable() *Chain {
	return c.check(func(v string) any { return govalidator.IsExistingEmail(v) })
}

// IsInt checks that the value is a whole number.
func (c *Chain) IsInt() *Chain {
	return c.check(func(v string) any { return govalidator.IsInt(v) })
}

// IsFloat checks that the value is a decimal number.
func (c *Chain) IsFloat() *Chain {
	return c.check(func(v string) any { return govalidator.IsFloat(v) })
}

// IsIP checks that the value is an IPv4 or IPv6 address.
func (c *Chain) IsIP() *Chain {
	return c.check(func(v string) any { return govalidator.IsIP(v) })
}

// IsURL checks that the value is a URL.
func (c *Chain) IsURL() *Chain {
	return c.check(func(v string) any { return govalidator.IsURL(v) })
}

// IsAlphanumeric checks that the value contains only letters and digits.
func (c *Chain) IsAlphanumeric() *Chain {
	return c.check(func(v string) any { return govalidator.IsAlphanumeric(v) })
}

// NotEmpty checks that the value is non-empty.
func (c *Chain) NotEmpty() *Chain {
	return c.check(func(v string) any { return v != "" })
}

// Matches checks the value against the regular expression pattern. An
// invalid pattern records false.
func (c *Chain) Matches(pattern string) *Chain {
	return c.check(func(v string) any {
		re, err := regexp.Compile(pattern)
		return err == nil && re.MatchString(v)
	})
}

// dateLayouts are the input formats IsDate accepts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// IsDate checks that the value parses as a date in any accepted input
// format. On success a leaf is rewritten to the given output layout (Go
// reference-time layout, e.g. "2006-01-02") and true is recorded. On
// failure false is recorded and, when clean is set, the leaf is cleared.
func (c *Chain) IsDate(clean bool, layout string) *Chain {
	if c.node.errMsg != "" {
		return c
	}
	for _, in := range dateLayouts {
		t, err := time.Parse(in, c.node.value)
		if err != nil {
			continue
		}
		c.node.Set(t.Format(layout))
		c.last = true
		return c
	}
	if clean {
		c.node.Set("")
	}
	c.last = false
	return c
}
