// avida runs a single digital organism's genome on the VM and reports its
// final state. It is a diagnostic driver, not the population/trial loop
// that sits above the VM — that remains an external collaborator's job.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/avidalab/avidavm/pkg/asmtext"
	"github.com/avidalab/avidavm/pkg/vm"
)

func main() {
	cycles := flag.Int("cycles", 200, "number of VM cycles to run")
	debug := flag.Bool("debug", false, "print StatusString after every cycle")
	disasm := flag.Bool("disasm", false, "disassemble instead of running")
	list := flag.Bool("list", false, "print the instruction set's id/symbol/name listing and exit")
	pnop := flag.Float64("pnop", 0.5, "probability of a nop when generating a random genome")
	seed := flag.Int64("seed", 1, "seed for random genome generation")
	randomLen := flag.Int("random", 0, "generate a random genome of this length instead of reading a file")
	flag.Parse()

	instSet := vm.BuildDefaultInstSet()

	if *list {
		fmt.Print(instSet.Listing())
		return
	}

	args := flag.Args()

	var genome vm.Genome
	switch {
	case *randomLen > 0:
		genome = instSet.BuildGenome(*randomLen, rand.New(rand.NewSource(*seed)), *pnop)
	case len(args) == 0:
		repl(instSet, *debug, *cycles)
		return
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "avida: %v\n", err)
			os.Exit(1)
		}
		g, err := loadGenome(instSet, string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "avida: %v\n", err)
			os.Exit(1)
		}
		genome = g
	}

	if *disasm {
		fmt.Print(asmtext.Disassemble(instSet, &genome))
		return
	}

	v := vm.New(instSet, genome)
	runAndReport(v, *cycles, *debug)
}

// loadGenome accepts either the canonical one-symbol-per-byte textual form
// or the mnemonic assembly notation, trying the symbol form first since it
// is the stricter of the two.
func loadGenome(instSet *vm.InstSet, text string) (vm.Genome, error) {
	trimmed := strings.TrimSpace(text)
	if g, err := vm.ParseSymbols(instSet, trimmed); err == nil {
		return g, nil
	}
	return asmtext.Assemble(text, instSet)
}

func runAndReport(v *vm.VM, cycles int, debug bool) {
	for i := 0; i < cycles; i++ {
		v.ProcessInst()
		if debug {
			fmt.Println(v.StatusString())
		}
	}
	fmt.Println(v.StatusString())
	if v.Offspring.Len() > 0 {
		fmt.Printf("offspring: %s\n", vm.FormatSymbols(v.InstSet(), &v.Offspring))
	}
}

func repl(instSet *vm.InstSet, debug bool, cycles int) {
	fmt.Println("avida VM")
	fmt.Println("Enter a genome (symbol string or mnemonic assembly), 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("avida> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}

		g, err := loadGenome(instSet, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		v := vm.New(instSet, g)
		runAndReport(v, cycles, debug)
	}
}
