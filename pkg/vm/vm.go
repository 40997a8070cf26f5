package vm

import "fmt"

// VM is one digital organism's hardware: a genome, a fixed memory array,
// six heads, six stacks, an offspring buffer, and an error counter. It is
// bound to a read-only InstSet for its whole lifetime; every other field is
// fair game for an instruction handler to mutate.
type VM struct {
	instSet *InstSet

	Genome    Genome
	Memory    [MemSize]Cell
	Heads     [numHeads]Head
	Stacks    [NumNops]Stack
	Offspring Genome
	ErrorCount int
}

// New constructs a VM bound to instSet, takes a copy of genome, and resets
// to a clean initial state.
func New(instSet *InstSet, genome Genome) *VM {
	v := &VM{instSet: instSet}
	for i := range v.Heads {
		v.Heads[i].Type = HeadType(i)
	}
	v.ResetGenome(genome)
	return v
}

// InstSet returns the VM's (read-only) instruction registry.
func (v *VM) InstSet() *InstSet {
	return v.instSet
}

// Reset reinitializes heads, stacks, the error counter, and the offspring
// buffer, without touching the genome.
func (v *VM) Reset() {
	for i := range v.Heads {
		v.Heads[i].Reset(v.Genome.Len())
	}
	for i := range v.Stacks {
		v.Stacks[i].Reset()
	}
	for i := range v.Memory {
		v.Memory[i] = 0
	}
	v.ErrorCount = 0
	v.Offspring = Genome{}
}

// ResetGenome installs g as the genome and then performs a full Reset.
func (v *VM) ResetGenome(g Genome) {
	v.Genome = NewGenome(g.Bytes())
	v.Reset()
}

// ReadGenome reads the genome byte at pos, or 0 if pos is out of range.
func (v *VM) ReadGenome(pos int) Cell {
	return Cell(v.Genome.Get(pos))
}

// WriteGenome inserts val at pos, or appends it if pos is at or past the
// current length.
func (v *VM) WriteGenome(pos int, val Cell) {
	v.Genome.Insert(pos, byte(uint32(val)))
}

// ReadMemory reads the memory cell at pos, or 0 if pos is out of range.
func (v *VM) ReadMemory(pos int) Cell {
	if pos < 0 || pos >= MemSize {
		return 0
	}
	return v.Memory[pos]
}

// WriteMemory writes val at pos. Writes past MemSize increment the error
// counter instead of being silently dropped.
func (v *VM) WriteMemory(pos int, val Cell) {
	if pos < 0 || pos >= MemSize {
		v.ErrorCount++
		return
	}
	v.Memory[pos] = val
}

// ReadHead dereferences h through the genome or memory, whichever its type
// owns.
func (v *VM) ReadHead(h *Head) Cell {
	if h.Type.onGenome() {
		return v.ReadGenome(h.Pos)
	}
	return v.ReadMemory(h.Pos)
}

// WriteHead writes through h to whichever buffer its type owns: an
// insertion into the genome, or a bounds-checked cell write into memory.
// A nop can redirect a "memory" instruction's head argument onto a genome
// head (or vice versa); WriteHead follows wherever the head actually
// points rather than the instruction's nominal buffer.
func (v *VM) WriteHead(h *Head, val Cell) {
	if h.Type.onGenome() {
		v.WriteGenome(h.Pos, val)
	} else {
		v.WriteMemory(h.Pos, val)
	}
}

// ProcessInst runs exactly one cycle: fetch the opcode at IP (folded into
// range), advance IP, then dispatch. The handler may itself advance IP
// further via GetArg. Never halts, never returns an error — failures only
// increment ErrorCount.
func (v *VM) ProcessInst() {
	ip := &v.Heads[HeadIP]
	id := v.instSet.Fold(v.Genome.Get(ip.Pos))
	ip.Pos++
	v.instSet.Execute(v, id)
}

// Run executes n cycles.
func (v *VM) Run(n int) {
	for i := 0; i < n; i++ {
		v.ProcessInst()
	}
}

// StatusString renders a diagnostic dump: the genome as a symbol string
// with '>' marking IP, memory contents, head positions, stack contents,
// the error count, and the next instruction's name and symbol.
func (v *VM) StatusString() string {
	sym := FormatSymbols(v.instSet, &v.Genome)
	ip := v.Heads[HeadIP].Pos
	marked := sym
	if ip >= 0 && ip <= len(sym) {
		marked = sym[:ip] + ">" + sym[ip:]
	}

	s := fmt.Sprintf("genome: %s\n", marked)
	s += "memory:"
	for i := 0; i < MemSize; i++ {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf(" %d", v.Memory[i])
	}
	s += "\n"

	for i := range v.Heads {
		s += fmt.Sprintf("head %-7s pos=%d\n", HeadType(i), v.Heads[i].Pos)
	}
	for i := range v.Stacks {
		raw, sp := v.Stacks[i].Raw()
		s += fmt.Sprintf("stack %c: %v (ring=%v sp=%d)\n", 'A'+byte(i), v.Stacks[i].Contents(), raw, sp)
	}
	s += fmt.Sprintf("errors: %d\n", v.ErrorCount)

	nextID := v.instSet.Fold(v.Genome.Get(ip))
	s += fmt.Sprintf("next: %s (%c)\n", v.instSet.Name(nextID), v.instSet.Symbol(nextID))
	return s
}
