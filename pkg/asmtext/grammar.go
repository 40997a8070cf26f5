// Package asmtext parses a human-readable mnemonic assembly notation for
// genomes — one instruction name per line or whitespace-separated token,
// comments introduced with ';' — built the same way the PSIL language
// grammar is: a struct-tag Participle grammar over a simple lexer.
package asmtext

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/avidalab/avidavm/pkg/vm"
)

// program is the top-level AST node: a flat sequence of instruction tokens.
type program struct {
	Insts []*token `@@*`
}

// token is either a bare mnemonic ("ADD") or a mnemonic carrying an inline
// nop argument ("CONST.NOP-A" picks Nop-A as the argument to Const).
type token struct {
	Name string `@Ident`
	Arg  string `("." @Ident)?`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var asmParser = participle.MustBuild[program](
	participle.Lexer(asmLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Assemble converts mnemonic assembly text into a genome, resolving every
// mnemonic (and, for the ".Nop-X" suffix form, the following nop argument)
// against instSet. Instruction and nop names are matched case-insensitively
// against the registry's own names, so "const.nop-a" and "Const.Nop-A" both
// resolve against a default-layout InstSet registered with "Const"/"Nop-A".
func Assemble(source string, instSet *vm.InstSet) (vm.Genome, error) {
	prog, err := asmParser.ParseString("", source)
	if err != nil {
		return vm.Genome{}, fmt.Errorf("asmtext: %w", err)
	}

	var bytes []byte
	for _, tok := range prog.Insts {
		id := lookupCaseInsensitive(instSet, tok.Name)
		if id < 0 {
			return vm.Genome{}, fmt.Errorf("asmtext: unknown instruction %q", tok.Name)
		}
		bytes = append(bytes, byte(id))
		if tok.Arg != "" {
			argID := lookupCaseInsensitive(instSet, tok.Arg)
			if argID < 0 {
				return vm.Genome{}, fmt.Errorf("asmtext: unknown nop argument %q", tok.Arg)
			}
			bytes = append(bytes, byte(argID))
		}
	}
	return vm.NewGenome(bytes), nil
}

// Disassemble renders a genome as one mnemonic per line, grouping a nop
// immediately following a non-nop instruction onto that instruction's line
// as a ".Name" suffix, mirroring how Assemble accepts them.
func Disassemble(instSet *vm.InstSet, g *vm.Genome) string {
	var b strings.Builder
	for i := 0; i < g.Len(); i++ {
		id := int(g.Get(i))
		fmt.Fprint(&b, instSet.Name(id))
		if !instSet.IsNop(id) && i+1 < g.Len() && instSet.IsNop(int(g.Get(i+1))) {
			i++
			fmt.Fprintf(&b, ".%s", instSet.Name(int(g.Get(i))))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func lookupCaseInsensitive(instSet *vm.InstSet, name string) int {
	if id := instSet.GetIDByName(name); id >= 0 {
		return id
	}
	// Registries built by BuildDefaultInstSet use mixed-case canonical
	// names ("Nop-A", "CopyInst"); fall back to a case-insensitive scan
	// so "nop-a"/"NOP-A"/"copyinst" all resolve too.
	lower := strings.ToLower(name)
	for id := 0; id < instSet.Size(); id++ {
		if strings.ToLower(instSet.Name(id)) == lower {
			return id
		}
	}
	return -1
}
