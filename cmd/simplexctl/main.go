package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/rigcore/simplex/parser"
	"github.com/rigcore/simplex/simplex"
)

func main() {
	_ = godotenv.Load(".env")

	exact := flag.Bool("exact", envBool("SIMPLEX_EXACT_SOLVE", true), "start with exact-solve enabled")
	rigPath := flag.String("rig", os.Getenv("SIMPLEX_RIG_PATH"), "path to a rig definition JSON file")
	flag.Parse()

	pterm.DefaultHeader.WithFullWidth().Println("simplexctl")

	repl := &Interp{sessionID: uuid.New()}
	if *rigPath != "" {
		if err := repl.load(*rigPath); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		repl.solver.SetExactSolve(*exact)
	}

	if flag.NArg() > 0 {
		runOneShot(repl, flag.Args())
		return
	}

	rl, err := readline.New("simplex> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()
	repl.rl = rl
	repl.run()
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// runOneShot evaluates a single slider vector given as trailing
// command-line arguments against the rig already loaded via -rig (exiting
// with an error if none was), then returns.
func runOneShot(repl *Interp, args []string) {
	if repl.solver == nil {
		pterm.Error.Println("no rig loaded: pass -rig or set SIMPLEX_RIG_PATH")
		os.Exit(1)
	}
	raw, err := parseFloats(args)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	repl.solver.Build()
	printWeights(repl.solver, repl.solver.Solve(raw))
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("simplexctl: %q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

// Interp holds the REPL's session state: the currently loaded rig (if
// any) and the readline instance driving the prompt loop.
type Interp struct {
	sessionID uuid.UUID
	solver    *simplex.Solver
	rl        *readline.Instance
}

func (in *Interp) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("simplexctl: %w", err)
	}
	solver, result, err := parser.Load(string(data))
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			return fmt.Errorf("simplexctl: parse failed: %s", pe.Detail())
		}
		return fmt.Errorf("simplexctl: %w", err)
	}
	solver.Build()
	in.solver = solver
	pterm.Success.Printfln("loaded rig (session %s, encoding v%d): %d shapes, %d sliders, %d combos, %d floaters, %d traversals",
		in.sessionID, result.EncodingVersion, len(solver.Shapes), len(solver.Sliders), len(solver.Combos), len(solver.Floaters), len(solver.Traversals))
	return nil
}

func (in *Interp) run() {
	pterm.Info.Println("commands: load <path>, solve <v0> <v1> ..., exact <on|off>, inspect, quit")
	for {
		line, err := in.rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "load":
			if len(fields) != 2 {
				pterm.Error.Println("usage: load <path>")
				continue
			}
			if err := in.load(fields[1]); err != nil {
				pterm.Error.Println(err.Error())
			}
		case "exact":
			if in.solver == nil || len(fields) != 2 {
				pterm.Error.Println("usage: exact <on|off> (after loading a rig)")
				continue
			}
			in.solver.SetExactSolve(fields[1] == "on")
		case "solve":
			if in.solver == nil {
				pterm.Error.Println("no rig loaded")
				continue
			}
			raw, err := parseFloats(fields[1:])
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			printWeights(in.solver, in.solver.Solve(raw))
		case "inspect":
			if in.solver == nil {
				pterm.Error.Println("no rig loaded")
				continue
			}
			inspect(in.solver)
		default:
			pterm.Error.Printfln("unknown command %q", fields[0])
		}
	}
	pterm.Info.Println("goodbye")
}

// inspect prints a tree view of the solver's TriSpace groupings: each
// space's slider span and member floater count. The orthant is not shown.
func inspect(s *simplex.Solver) {
	root := pterm.TreeNode{Text: fmt.Sprintf("solver (%d shapes, %d spaces)", len(s.Shapes), len(s.Spaces))}
	for i, sp := range s.Spaces {
		child := pterm.TreeNode{Text: fmt.Sprintf("space[%d] sliders=%v members=%d", i, sp.SliderIndices(), len(sp.Members()))}
		root.Children = append(root.Children, child)
	}
	pterm.DefaultTree.WithRoot(root).Render()
}
