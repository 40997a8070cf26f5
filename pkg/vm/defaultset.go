package vm

// BuildDefaultInstSet registers the canonical 38-entry layout: the six nops
// first, then every instruction in dispatch order. This is the InstSet
// every worked scenario and test in this package is built against.
func BuildDefaultInstSet() *InstSet {
	s := NewInstSet()
	for _, name := range []string{"Nop-A", "Nop-B", "Nop-C", "Nop-D", "Nop-E", "Nop-F"} {
		mustAddNop(s, name)
	}
	for _, e := range []struct {
		name string
		fn   Handler
	}{
		{"Const", instConst},
		{"Offset", instOffset},
		{"Not", instNot},
		{"Shift", instShift},
		{"Add", instAdd},
		{"Sub", instSub},
		{"Mult", instMult},
		{"Div", instDiv},
		{"Mod", instMod},
		{"Exp", instExp},
		{"Sort", instSort},
		{"TestLess", instTestLess},
		{"TestEqu", instTestEqu},
		{"Nand", instNand},
		{"Xor", instXor},
		{"If", instIf},
		{"IfNot", instIfNot},
		{"Scope", instScope},
		{"Continue", instContinue},
		{"Break", instBreak},
		{"StackPop", instStackPop},
		{"StackDup", instStackDup},
		{"StackSwap", instStackSwap},
		{"StackMove", instStackMove},
		{"CopyInst", instCopyInst},
		{"Load", instLoad},
		{"Store", instStore},
		{"DivideCell", instDivideCell},
		{"HeadPos", instHeadPos},
		{"SetHead", instSetHead},
		{"JumpHead", instJumpHead},
		{"OffsetHead", instOffsetHead},
	} {
		mustAdd(s, e.name, e.fn)
	}
	return s
}

// mustAddNop/mustAdd panic on registration failure: the default layout is a
// fixed compile-time constant, so a failure here is a programming error in
// this file, not a runtime condition callers need to handle.
func mustAddNop(s *InstSet, name string) {
	if err := s.AddNop(name); err != nil {
		panic(err)
	}
}

func mustAdd(s *InstSet, name string, h Handler) {
	if err := s.Add(name, h); err != nil {
		panic(err)
	}
}
