// Package shapescript builds a scene from a small line-oriented
// JavaScript script, one line per step, using the Goja runtime.
//
// Each non-blank line that does not start with // is a step. A line may
// hold several statements separated by top-level semicolons. Statements
// of the form name = expr store their result in Vars; anything else is
// evaluated for its side effects. A line of the form input("prompt", name)
// pauses the interpreter until a value is supplied.
//
// Shape builtins return the new item's ID:
//
//	line(x0, y0, x1, y1 [, label])
//	rect(x, y, w, h [, label])     filled
//	border(x, y, w, h [, label])   outline
//	circle(cx, cy, r [, label])    filled
//	ring(cx, cy, r [, label])      circumference
//
// Scene builtins: connect(a, b [, "hv"|"vh"]), move(id, dx, dy),
// remove(id). Queries: len(x0, y0, x1, y1), count(r), contains(id, x, y),
// bounds(id). Output: print(...), str(v).
package shapescript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/scene"
)

// Interpreter executes a shape script step by step.
type Interpreter struct {
	lines  []scriptLine
	Scene  *scene.Scene
	Vars   map[string]any
	Output []string
	Line   int // 1-based source line of the last executed step
	Done   bool
	Err    string

	WaitInput   bool
	InputPrompt string
	inputVar    string

	StepCount int
	MaxSteps  int
	next      int
	runtime   *goja.Runtime
}

type scriptLine struct {
	num  int
	code string
}

// New creates an interpreter for src with an empty scene.
func New(src string) *Interpreter {
	interp := &Interpreter{
		lines:    parseLines(src),
		MaxSteps: 500,
	}
	interp.Reset()
	return interp
}

// Reset discards the scene, variables and output so the script can run
// again from the top.
func (interp *Interpreter) Reset() {
	interp.Scene = scene.New()
	interp.Vars = make(map[string]any)
	interp.Output = nil
	interp.Line = 0
	interp.Done = len(interp.lines) == 0
	interp.Err = ""
	interp.WaitInput = false
	interp.InputPrompt = ""
	interp.inputVar = ""
	interp.StepCount = 0
	interp.next = 0
	interp.runtime = goja.New()
	interp.registerBuiltins()
}

// Step executes one script line. Pass inputValue when WaitInput is true.
func (interp *Interpreter) Step(inputValue *string) {
	if interp.Done || interp.Err != "" {
		return
	}
	interp.StepCount++
	if interp.StepCount > interp.MaxSteps {
		interp.Err = "MAX STEPS EXCEEDED"
		interp.Done = true
		return
	}

	if interp.WaitInput {
		if inputValue == nil {
			return
		}
		interp.Vars[interp.inputVar] = parseInputValue(*inputValue)
		interp.Output = append(interp.Output, fmt.Sprintf("> %s", *inputValue))
		interp.WaitInput = false
		interp.advance()
		return
	}

	ln := interp.lines[interp.next]
	interp.Line = ln.num

	defer func() {
		if r := recover(); r != nil {
			interp.Err = fmt.Sprintf("ERROR at line %d: %v", ln.num, r)
			interp.Done = true
			grid.Logger().Warn("shapescript: step failed", "line", ln.num, "error", r)
		}
	}()

	if interp.matchInput(ln.code) {
		return
	}
	interp.execStatements(ln.code)
	interp.advance()
}

// Run steps until the script finishes, fails or waits for input.
func (interp *Interpreter) Run() error {
	for !interp.Done && interp.Err == "" && !interp.WaitInput {
		interp.Step(nil)
	}
	grid.Logger().Info("shapescript: run", "steps", interp.StepCount, "items", interp.Scene.Len(), "err", interp.Err)
	if interp.Err != "" {
		return fmt.Errorf("shapescript: %s", interp.Err)
	}
	return nil
}

// Eval runs one line against the current scene and variables outside
// the step sequence. It is used for interactive commands.
func (interp *Interpreter) Eval(code string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("shapescript: %v", r)
		}
	}()
	v := interp.execStatements(code)
	if v == nil || goja.IsUndefined(v) {
		return "", nil
	}
	return v.String(), nil
}

// --- helpers ---

func parseLines(src string) []scriptLine {
	var lines []scriptLine
	for i, l := range strings.Split(src, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		lines = append(lines, scriptLine{num: i + 1, code: l})
	}
	return lines
}

func (interp *Interpreter) advance() {
	interp.next++
	if interp.next >= len(interp.lines) {
		interp.Done = true
	}
}

var inputRe = regexp.MustCompile(`(?i)^(?:input|read)\s*\(\s*["']?([^"']*)["']?\s*,?\s*["']?([a-zA-Z_]\w*)["']?\s*\)$`)

func (interp *Interpreter) matchInput(code string) bool {
	m := inputRe.FindStringSubmatch(code)
	if m == nil {
		return false
	}
	interp.InputPrompt = m[1]
	if interp.InputPrompt == "" {
		interp.InputPrompt = "INPUT:"
	}
	interp.inputVar = m[2]
	interp.WaitInput = true
	interp.Output = append(interp.Output, interp.InputPrompt)
	return true
}

func (interp *Interpreter) syncVarsToRuntime() {
	for k, v := range interp.Vars {
		interp.runtime.Set(k, v)
	}
}

// syncVarsFromRuntime reads known variables back so that in-place
// updates such as i++ or x += 2 survive the next sync.
func (interp *Interpreter) syncVarsFromRuntime() {
	for k := range interp.Vars {
		if v := interp.runtime.Get(k); v != nil {
			interp.Vars[k] = v.Export()
		}
	}
}

var assignRe = regexp.MustCompile(`^([a-zA-Z_]\w*)\s*=([^=].*)$`)

// execStatements runs each top-level statement of code and returns the
// value of the last one.
func (interp *Interpreter) execStatements(code string) goja.Value {
	var last goja.Value
	for _, stmt := range splitStatements(code) {
		interp.syncVarsToRuntime()
		if m := assignRe.FindStringSubmatch(stmt); m != nil {
			name, expr := m[1], strings.TrimSpace(m[2])
			val, err := interp.runtime.RunString(expr)
			if err != nil {
				panic(fmt.Sprintf("eval %q: %v", expr, err))
			}
			interp.Vars[name] = val.Export()
			last = val
			continue
		}
		val, err := interp.runtime.RunString(stmt)
		if err != nil {
			panic(fmt.Sprintf("exec %q: %v", stmt, err))
		}
		interp.syncVarsFromRuntime()
		last = val
	}
	return last
}

// splitStatements splits code on semicolons that are outside brackets
// and string literals, so for (...;...;...) stays whole.
func splitStatements(code string) []string {
	var out []string
	depth, start := 0, 0
	var quote rune
	flush := func(end int) {
		if s := strings.TrimSpace(code[start:end]); s != "" {
			out = append(out, s)
		}
	}
	for i, r := range code {
		switch {
		case quote != 0:
			if r == quote && (i == 0 || code[i-1] != '\\') {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		case r == ';' && depth == 0:
			flush(i)
			start = i + 1
		}
	}
	flush(len(code))
	return out
}

func parseInputValue(s string) any {
	s = strings.TrimSpace(s)
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && fmt.Sprintf("%d", n) == s {
		return n
	}
	return s
}
