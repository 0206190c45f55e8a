package arena

import "fmt"

// DefaultPageSize provides a default for Cells.PageSize.
const DefaultPageSize = 256

// Cells implements an append-only, integer-oriented paged memory.
// Every page except possibly the last one is exactly PageSize cells long, so
// an address maps to its page by simple division.
type Cells struct {
	// PageSize specifies the length for newly allocated pages; it is fixed
	// by the first Append.
	PageSize uint

	// Limit specifies a size limit, past which any Append results in an error.
	Limit uint

	pages [][]int
	size  uint
}

// LimitError indicates that an Append would exceed Cells.Limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// Len returns the address one past the last appended cell.
func (c *Cells) Len() uint { return c.size }

// Append stores values at the end of memory, allocating pages if necessary,
// and returns the address of the first stored value.
// Returns an error if Limit would be exceeded; no partial append is done.
func (c *Cells) Append(values ...int) (addr uint, err error) {
	addr = c.size
	end := addr + uint(len(values))
	if lim := c.Limit; lim != 0 && end > lim {
		return addr, LimitError{end, "append"}
	}

	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}

	for len(values) > 0 {
		i := c.size % c.PageSize
		if i == 0 {
			c.pages = append(c.pages, make([]int, 0, c.PageSize))
		}
		last := len(c.pages) - 1
		page := c.pages[last]
		n := copy(page[i:c.PageSize], values)
		c.pages[last] = page[:int(i)+n]
		values = values[n:]
		c.size += uint(n)
	}

	return addr, nil
}

// Load returns a single value from the given address, or 0 if addr has not
// been appended yet.
func (c *Cells) Load(addr uint) int {
	if addr >= c.size {
		return 0
	}
	return c.pages[addr/c.PageSize][addr%c.PageSize]
}

// LoadInto reads len(buf) values starting at addr, zeroing any part of buf
// that lies past the end of memory.
func (c *Cells) LoadInto(addr uint, buf []int) {
	for len(buf) > 0 && addr < c.size {
		page := c.pages[addr/c.PageSize][addr%c.PageSize:]
		n := copy(buf, page)
		buf = buf[n:]
		addr += uint(n)
	}
	for i := range buf {
		buf[i] = 0
	}
}
