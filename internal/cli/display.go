package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/fibheap/internal/heap"
	"github.com/agbru/fibheap/internal/ui"
)

const (
	// spinnerRefreshRate matches the teacher's ProgressRefreshRate tuning.
	spinnerRefreshRate = 200 * time.Millisecond
	// auditLogDisplayLimit is the number of entries rendered by the audit
	// log view, per spec.md §6 ("renders the most recent 20").
	auditLogDisplayLimit = 20
)

// DisplayHeap renders the heap's block list as a box-drawn memory map,
// grounded on original_source/Heap_managment.c's traverseHeap.
func DisplayHeap(h *heap.Heap, out io.Writer) {
	fmt.Fprintf(out, "\n%s╔════════════════════════════════════════════════════════════════════════╗%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(out, "%s║                          HEAP MEMORY MAP                               ║%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(out, "%s╚════════════════════════════════════════════════════════════════════════╝%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())

	fmt.Fprintf(out, "%s  ┌──────────────────────────────────────────────────────────────┐%s\n", ui.ColorCyan(), ui.ColorReset())

	var allocatedCount, freeCount, totalAllocated, totalFree int

	blocks := h.IterateBlocks()
	for i, b := range blocks {
		if b.State == heap.Used {
			allocatedCount++
			totalAllocated += b.Size

			fmt.Fprintf(out, "%s  │ [ALLOCATED] %s", ui.ColorGreen(), ui.ColorReset())
			fmt.Fprintf(out, "%-15s | Size: %s%-5d%s", b.Name, ui.ColorYellow(), b.Size, ui.ColorReset())
			fmt.Fprintf(out, " | Used: %s%-5d%s", ui.ColorYellow(), b.AllocatedSize, ui.ColorReset())
			fmt.Fprintf(out, " │\n")

			rootFlag := "NO"
			if b.IsRoot {
				rootFlag = "YES"
			}
			fmt.Fprintf(out, "  │             Root: %s%-3s%s", ui.ColorCyan(), rootFlag, ui.ColorReset())
			fmt.Fprintf(out, " | References: %s%-2d%s", ui.ColorCyan(), len(b.References), ui.ColorReset())
			if len(b.References) > 0 {
				fmt.Fprintf(out, " [%s]", strings.Join(b.References, ", "))
			}
			fmt.Fprintf(out, "     │\n")
		} else {
			freeCount++
			totalFree += b.Size

			fmt.Fprintf(out, "%s  │ [FREE]      %s", ui.ColorRed(), ui.ColorReset())
			fmt.Fprintf(out, "%-15s | Size: %s%-5d%s", "Available", ui.ColorYellow(), b.Size, ui.ColorReset())
			fmt.Fprintf(out, "                      │\n")
		}

		if i < len(blocks)-1 {
			fmt.Fprintf(out, "%s  ├──────────────────────────────────────────────────────────────┤%s\n", ui.ColorCyan(), ui.ColorReset())
		}
	}

	fmt.Fprintf(out, "%s  └──────────────────────────────────────────────────────────────┘%s\n", ui.ColorCyan(), ui.ColorReset())

	fmt.Fprintf(out, "\n%s  Summary:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  • Allocated Blocks: %s%d%s (Total: %s%d bytes%s)\n", ui.ColorGreen(), allocatedCount, ui.ColorReset(), ui.ColorYellow(), totalAllocated, ui.ColorReset())
	fmt.Fprintf(out, "  • Free Blocks: %s%d%s (Total: %s%d bytes%s)\n", ui.ColorRed(), freeCount, ui.ColorReset(), ui.ColorYellow(), totalFree, ui.ColorReset())
	fmt.Fprintf(out, "  • Total Memory: %s%d bytes%s\n\n", ui.ColorCyan(), totalAllocated+totalFree, ui.ColorReset())
}

// DisplayStats renders the heap's running counters, grounded on
// original_source/Heap_managment.c's printStatistics.
func DisplayStats(h *heap.Heap, out io.Writer) {
	stats := h.Stats()

	fmt.Fprintf(out, "\n%s╔════════════════════════════════════════════════════════════════════════╗%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(out, "%s║                       SYSTEM STATISTICS                                ║%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())
	fmt.Fprintf(out, "%s╚════════════════════════════════════════════════════════════════════════╝%s\n", ui.ColorBold()+ui.ColorMagenta(), ui.ColorReset())

	fmt.Fprintf(out, "%s  Memory Operations:%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "    • Total Allocations:      %s%d%s\n", ui.ColorGreen(), stats.TotalAllocations, ui.ColorReset())
	fmt.Fprintf(out, "    • Manual Frees:           %s%d%s\n", ui.ColorYellow(), stats.TotalManualFrees, ui.ColorReset())

	fmt.Fprintf(out, "%s\n  Garbage Collection:%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "    • Total GC Runs:          %s%d%s\n", ui.ColorGreen(), stats.TotalCollections, ui.ColorReset())
	fmt.Fprintf(out, "    • Total Blocks Freed:     %s%d%s\n", ui.ColorYellow(), stats.TotalFreed, ui.ColorReset())
	fmt.Fprintf(out, "    • Last GC Freed:          %s%d%s\n\n", ui.ColorMagenta(), stats.LastFreedCount, ui.ColorReset())
}

// DisplayAuditLog renders the most recent audit entries in
// reverse-chronological order, per spec.md §6's audit log contract.
func DisplayAuditLog(h *heap.Heap, out io.Writer) {
	fmt.Fprintf(out, "\n%s╔════════════════════════════════════════════════════════════════════════╗%s\n", ui.ColorBold()+ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "%s║                          AUDIT LOG                                     ║%s\n", ui.ColorBold()+ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "%s╚════════════════════════════════════════════════════════════════════════╝%s\n", ui.ColorBold()+ui.ColorCyan(), ui.ColorReset())

	entries := h.RecentAudit(auditLogDisplayLimit)
	if len(entries) == 0 {
		fmt.Fprintf(out, "%s  No operations recorded yet.\n%s", ui.ColorYellow(), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "%s  [Timestamp]          | [Operation]\n", ui.ColorCyan())
	fmt.Fprintf(out, "  ─────────────────────┼──────────────────────────────────────────────%s\n", ui.ColorReset())
	for _, e := range entries {
		fmt.Fprintf(out, "  %s | %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Operation)
	}
	fmt.Fprintln(out)
}
