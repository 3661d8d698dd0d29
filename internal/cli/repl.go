// Package cli provides the menu-driven REPL for interactive heap management
// and the box-drawing display routines used to render heap state.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/fibheap/internal/heap"
	"github.com/agbru/fibheap/internal/ui"
	"github.com/briandowns/spinner"
)

// REPL is an interactive menu-driven session over a Heap, grounded on the
// original C program's numbered command loop.
type REPL struct {
	h   *heap.Heap
	in  io.Reader
	out io.Writer
}

// NewREPL creates a new REPL instance around the given heap.
func NewREPL(h *heap.Heap) *REPL {
	return &REPL{h: h, in: os.Stdin, out: os.Stdout}
}

// SetInput sets a custom input reader (useful for testing and seed-script replay).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session. It continuously prints the
// menu, reads a numeric choice, and dispatches to the matching handler until
// choice 0 (quit) or EOF.
func (r *REPL) Start() {
	r.printBanner()
	fmt.Fprintf(r.out, "\n  Total Budget: %s%d%s\n", ui.ColorGreen(), r.h.TotalBudget(), ui.ColorReset())

	reader := bufio.NewReader(r.in)

	for {
		r.printMenu()

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid input.%s\n", ui.ColorRed(), ui.ColorReset())
			continue
		}

		if !r.dispatch(choice, reader) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════════════════════════════════╗%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║          FIBONACCI HEAP MANAGER WITH GARBAGE COLLECTION               ║%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════════════════════════════════╝%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
}

func (r *REPL) printMenu() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════════════════════════════════╗%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║              FIBONACCI HEAP MANAGER WITH MARK-AND-SWEEP GC            ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╠════════════════════════════════════════════════════════════════════════╣%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║  1. Allocate Memory           │  6. Set/Unset Root Status             ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║  2. Free Memory               │  7. Run Garbage Collection            ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║  3. Display Heap Layout       │  8. Show Statistics                   ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║  4. Add Reference (A → B)     │  9. Show Audit Log                    ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║  5. Remove Reference          │  0. Quit                              ║%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════════════════════════════════╝%s\n", ui.ColorBold()+ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sEnter your choice: %s", ui.ColorYellow(), ui.ColorReset())
}

// dispatch executes a single menu choice. Returns false if the REPL should exit.
func (r *REPL) dispatch(choice int, reader *bufio.Reader) bool {
	switch choice {
	case 1:
		r.cmdAllocate(reader)
	case 2:
		r.cmdFree(reader)
	case 3:
		DisplayHeap(r.h, r.out)
	case 4:
		r.cmdAddReference(reader)
	case 5:
		r.cmdRemoveReference(reader)
	case 6:
		r.cmdSetRoot(reader)
	case 7:
		r.cmdCollect()
	case 8:
		DisplayStats(r.h, r.out)
	case 9:
		DisplayAuditLog(r.h, r.out)
	case 0:
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown choice: %d%s\n", ui.ColorRed(), choice, ui.ColorReset())
	}
	return true
}

func (r *REPL) prompt(reader *bufio.Reader, label string) string {
	fmt.Fprintf(r.out, "%s%s%s", ui.ColorBlue(), label, ui.ColorReset())
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (r *REPL) cmdAllocate(reader *bufio.Reader) {
	fmt.Fprintf(r.out, "\n%s═══ ALLOCATION REQUEST ═══%s\n", ui.ColorBold(), ui.ColorReset())
	name := r.prompt(reader, " Enter variable name: ")
	sizeStr := r.prompt(reader, " Enter size to allocate: ")
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid size: %s%s\n", ui.ColorRed(), sizeStr, ui.ColorReset())
		return
	}
	rootStr := r.prompt(reader, " Is this a root reference? (1=Yes, 0=No): ")
	isRoot := rootStr == "1"

	block, err := r.h.Allocate(name, size, isRoot)
	if err != nil {
		fmt.Fprintf(r.out, "%s✗ ERROR: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ SUCCESS: %sAllocated '%s' → Block size: %s%d%s\n",
		ui.ColorGreen(), ui.ColorReset(), block.Name, ui.ColorYellow(), block.Size, ui.ColorReset())
}

func (r *REPL) cmdFree(reader *bufio.Reader) {
	fmt.Fprintf(r.out, "\n%s═══ FREE REQUEST ═══%s\n", ui.ColorBold(), ui.ColorReset())
	name := r.prompt(reader, " Enter variable name to free: ")
	if err := r.h.Free(name); err != nil {
		fmt.Fprintf(r.out, "%s✗ ERROR: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ SUCCESS: %sFreed '%s'%s\n", ui.ColorGreen(), ui.ColorReset(), name, ui.ColorReset())
}

func (r *REPL) cmdAddReference(reader *bufio.Reader) {
	from := r.prompt(reader, "\n Enter source block name: ")
	to := r.prompt(reader, " Enter target block name: ")
	if err := r.h.AddReference(from, to); err != nil {
		fmt.Fprintf(r.out, "%s✗ ERROR: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ SUCCESS: %sReference added: '%s' → '%s'%s\n", ui.ColorGreen(), ui.ColorReset(), from, to, ui.ColorReset())
}

func (r *REPL) cmdRemoveReference(reader *bufio.Reader) {
	from := r.prompt(reader, "\n Enter source block name: ")
	to := r.prompt(reader, " Enter target block name: ")
	if err := r.h.RemoveReference(from, to); err != nil {
		fmt.Fprintf(r.out, "%s✗ ERROR: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ SUCCESS: %sReference removed: '%s' → '%s'%s\n", ui.ColorGreen(), ui.ColorReset(), from, to, ui.ColorReset())
}

func (r *REPL) cmdSetRoot(reader *bufio.Reader) {
	name := r.prompt(reader, "\n Enter block name: ")
	rootStr := r.prompt(reader, " Set as root? (1=Yes, 0=No): ")
	isRoot := rootStr == "1"
	if err := r.h.SetRoot(name, isRoot); err != nil {
		fmt.Fprintf(r.out, "%s✗ ERROR: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	status := "NOT root"
	if isRoot {
		status = "root"
	}
	fmt.Fprintf(r.out, "%s✓ SUCCESS: %sBlock '%s' is now %s%s\n", ui.ColorGreen(), ui.ColorReset(), name, status, ui.ColorReset())
}

func (r *REPL) cmdCollect() {
	s := spinner.New(spinner.CharSets[11], spinnerRefreshRate, spinner.WithWriter(r.out))
	s.Suffix = " Running garbage collection..."
	s.Start()
	freed := r.h.Collect()
	s.Stop()

	fmt.Fprintf(r.out, "%s✓ Freed: %s%d%s block(s)%s\n", ui.ColorGreen(), ui.ColorYellow(), freed, ui.ColorGreen(), ui.ColorReset())
}
