package mooscript

import (
	"strings"
	"testing"

	"github.com/reusee/moo/moolang"
	"github.com/reusee/moo/moovm"
)

func newRunner(t *testing.T, src string) *moovm.Runner {
	t.Helper()
	prog, err := moolang.Compile("test", src)
	if err != nil {
		t.Fatal(err)
	}
	return moovm.New(prog)
}

func TestRunScript(t *testing.T) {
	r := newRunner(t, "(double):{++}~double;~double;")
	err := RunScript("driver", `
n = run(100)
if not halted():
    fail("not halted after", n, "steps")
if cell() != 4:
    fail("cell is", cell())
`, r)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Halted() {
		t.Fatal("not halted")
	}
	if r.Cell() != 4 {
		t.Fatalf("got %d", r.Cell())
	}
}

func TestScriptFeedsInput(t *testing.T) {
	r := newRunner(t, ",.,.")
	err := RunScript("driver", `
run(100)
if not awaiting():
    fail("expected to starve")
feed("ab")
run(100)
if output() != "ab":
    fail("output is", output())
if output_len() != 2:
    fail("output_len is", output_len())
`, r)
	if err != nil {
		t.Fatal(err)
	}
	if r.Output() != "ab" {
		t.Fatalf("got %q", r.Output())
	}
}

func TestScriptSingleStepping(t *testing.T) {
	r := newRunner(t, "+[-]")
	err := RunScript("driver", `
step()
step()
if stack(0) != [1]:
    fail("stack is", stack(0))
while not halted():
    step()
`, r)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Halted() {
		t.Fatal("not halted")
	}
}

func TestScriptInspectsTape(t *testing.T) {
	r := newRunner(t, "+>++>+++")
	err := RunScript("driver", `
run(100)
if pointer() != 2:
    fail("pointer is", pointer())
if tape(4) != [1, 2, 3, 0]:
    fail("tape is", tape(4))
`, r)
	if err != nil {
		t.Fatal(err)
	}
}

func TestScriptSeesFault(t *testing.T) {
	r := newRunner(t, "]")
	err := RunScript("driver", `
run(100)
if fault() == "":
    fail("expected a fault")
`, r)
	if err != nil {
		t.Fatal(err)
	}
	if r.Fault() == nil {
		t.Fatal("no fault")
	}
}

func TestScriptReset(t *testing.T) {
	r := newRunner(t, "+++")
	err := RunScript("driver", `
run(100)
reset()
if halted() or cell() != 0:
    fail("reset did not take")
run(100)
if cell() != 3:
    fail("cell is", cell())
`, r)
	if err != nil {
		t.Fatal(err)
	}
}

func TestScriptError(t *testing.T) {
	r := newRunner(t, "+")
	err := RunScript("driver", `no_such_binding()`, r)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no_such_binding") {
		t.Fatalf("got %v", err)
	}
}
