package cpu

import (
	"iter"
)

// MEMORY_SIZE is the number of memory cells.
const MEMORY_SIZE = 65535

// Memory is an array of optional 16-bit cells.
type Memory struct {
	cell  [MEMORY_SIZE]uint16
	valid [MEMORY_SIZE]bool
}

// InBounds returns true if the address names a memory cell.
func InBounds(addr int) bool {
	return addr >= 0 && addr < MEMORY_SIZE
}

// Read returns the value of a cell. ok is false if the cell is out of
// bounds or has never been written.
func (mem *Memory) Read(addr int) (value uint16, ok bool) {
	if !InBounds(addr) || !mem.valid[addr] {
		return
	}
	return mem.cell[addr], true
}

// Write sets the value of a cell. ok is false if the cell is out of bounds.
func (mem *Memory) Write(addr int, value uint16) (ok bool) {
	if !InBounds(addr) {
		return
	}
	mem.cell[addr] = value
	mem.valid[addr] = true
	return true
}

// Clear marks a cell as never written.
func (mem *Memory) Clear(addr int) {
	if InBounds(addr) {
		mem.cell[addr] = 0
		mem.valid[addr] = false
	}
}

// Reset clears all the cells.
func (mem *Memory) Reset() {
	clear(mem.cell[:])
	clear(mem.valid[:])
}

// Cells iterates over the written cells in address order.
func (mem *Memory) Cells() iter.Seq2[int, uint16] {
	return func(yield func(addr int, value uint16) bool) {
		for addr, ok := range mem.valid {
			if ok && !yield(addr, mem.cell[addr]) {
				return
			}
		}
	}
}

// Used returns the number of written cells.
func (mem *Memory) Used() (count int) {
	for _, ok := range mem.valid {
		if ok {
			count++
		}
	}
	return
}
