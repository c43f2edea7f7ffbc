package assembler

import "github.com/fxprof/fxexport/internal/format"

// Category indices, fixed at construction and passed straight through to
// every collector method that takes a category parameter.
const (
	CategoryOther = iota
	CategoryUser
	CategoryKernel
	CategoryGPU
	CategoryLock
	CategoryMessage
	CategoryFrame
	CategoryMemory
)

// categories returns the document-wide category catalog, in index order.
func categories() []format.Category {
	mk := func(name, color string) format.Category {
		return format.Category{Name: name, Color: color, Subcategories: []string{"Other"}}
	}
	return []format.Category{
		mk("Other", "grey"),
		mk("User", "yellow"),
		mk("Kernel", "orange"),
		mk("GPU", "blue"),
		mk("Lock", "red"),
		mk("Message", "teal"),
		mk("Frame", "magenta"),
		mk("Memory", "purple"),
	}
}
