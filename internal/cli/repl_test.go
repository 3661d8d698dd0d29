package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/fibheap/internal/heap"
)

func newTestREPL(input string) (*REPL, *bytes.Buffer, *heap.Heap) {
	h := heap.New(30)
	r := NewREPL(h)
	var out bytes.Buffer
	r.SetOutput(&out)
	r.SetInput(strings.NewReader(input))
	return r, &out, h
}

func TestREPLAllocateThenQuit(t *testing.T) {
	r, out, _ := newTestREPL("1\nx\n4\n0\n3\n0\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "Allocated 'x'") {
		t.Errorf("expected allocation success message, got: %s", out.String())
	}
}

func TestREPLUnknownChoiceReportsError(t *testing.T) {
	r, out, _ := newTestREPL("42\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "Unknown choice: 42") {
		t.Errorf("expected unknown-choice message, got: %s", out.String())
	}
}

func TestREPLInvalidInputIsReported(t *testing.T) {
	r, out, _ := newTestREPL("not-a-number\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "Invalid input") {
		t.Errorf("expected invalid-input message, got: %s", out.String())
	}
}

func TestREPLFreeUnknownNameReportsError(t *testing.T) {
	r, out, _ := newTestREPL("2\nghost\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "ERROR") {
		t.Errorf("expected an error message for freeing an unknown block, got: %s", out.String())
	}
}

func TestREPLQuitPrintsGoodbye(t *testing.T) {
	r, out, _ := newTestREPL("0\n")
	r.Start()

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected goodbye message, got: %s", out.String())
	}
}

func TestREPLEOFExitsCleanly(t *testing.T) {
	r, out, _ := newTestREPL("")
	r.Start()

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected goodbye message on EOF, got: %s", out.String())
	}
}

func TestREPLAddAndRemoveReference(t *testing.T) {
	r, out, _ := newTestREPL("1\na\n1\n1\n1\nb\n1\n0\n4\na\nb\n5\na\nb\n0\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "Reference added: 'a' → 'b'") {
		t.Errorf("expected reference-added message, got: %s", got)
	}
	if !strings.Contains(got, "Reference removed: 'a' → 'b'") {
		t.Errorf("expected reference-removed message, got: %s", got)
	}
}

func TestREPLSetRootStatus(t *testing.T) {
	r, out, _ := newTestREPL("1\na\n1\n0\n6\na\n1\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "'a' is now root") {
		t.Errorf("expected root-status message, got: %s", out.String())
	}
}

func TestREPLRunGarbageCollection(t *testing.T) {
	r, out, _ := newTestREPL("1\na\n1\n0\n7\n0\n")
	r.Start()

	if !strings.Contains(out.String(), "Freed:") {
		t.Errorf("expected GC summary line, got: %s", out.String())
	}
}
