package asmtext

import (
	"testing"

	"github.com/avidalab/avidavm/pkg/vm"
)

func TestAssembleBasic(t *testing.T) {
	s := vm.BuildDefaultInstSet()

	g, err := Assemble("Const.Nop-A Const.Nop-A Add", s)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	want := []byte{
		byte(s.GetIDByName("Const")), byte(s.GetIDByName("Nop-A")),
		byte(s.GetIDByName("Const")), byte(s.GetIDByName("Nop-A")),
		byte(s.GetIDByName("Add")),
	}
	if string(g.Bytes()) != string(want) {
		t.Errorf("genome bytes = %v, want %v", g.Bytes(), want)
	}
}

func TestAssembleUnknownInstruction(t *testing.T) {
	s := vm.BuildDefaultInstSet()

	if _, err := Assemble("Frobnicate", s); err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	s := vm.BuildDefaultInstSet()

	g, err := Assemble("Scope.Nop-A Const.Nop-A Break.Nop-A", s)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	text := Disassemble(s, &g)
	g2, err := Assemble(text, s)
	if err != nil {
		t.Fatalf("Assemble(Disassemble(...)): %v", err)
	}
	if string(g.Bytes()) != string(g2.Bytes()) {
		t.Errorf("round trip mismatch: %v vs %v", g.Bytes(), g2.Bytes())
	}
}
