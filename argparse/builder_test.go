package argparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name    string
		declare func(p *Parser) error
		want    ErrorType
	}{
		{"long without prefix", func(p *Parser) error { return p.Argument().Long("-x").Commit() }, ErrorTypeInvalidOption},
		{"long too short", func(p *Parser) error { return p.Argument().Long("--").Commit() }, ErrorTypeInvalidOption},
		{"short without prefix", func(p *Parser) error { return p.Argument().Short("x").Commit() }, ErrorTypeInvalidOption},
		{"short with double dash", func(p *Parser) error { return p.Argument().Short("--x").Commit() }, ErrorTypeInvalidOption},
		{"positional with dash", func(p *Parser) error { return p.Argument().Positional("-x").Commit() }, ErrorTypeInvalidOption},
		{"positional after long", func(p *Parser) error { return p.Argument().Long("--x").Positional("x").Commit() }, ErrorTypeInvalidOption},
		{"long after positional", func(p *Parser) error { return p.Argument().Positional("x").Long("--x").Commit() }, ErrorTypeInvalidOption},
		{"reserved short help", func(p *Parser) error { return p.Argument().Short("-h").Commit() }, ErrorTypeConflictingOption},
		{"reserved long help", func(p *Parser) error { return p.Argument().Long("--help").Commit() }, ErrorTypeConflictingOption},
		{"dest on positional", func(p *Parser) error { return p.Argument().Positional("a").Dest("b").Commit() }, ErrorTypeInvalidOption},
		{"positional after dest", func(p *Parser) error { return p.Argument().Dest("b").Positional("a").Commit() }, ErrorTypeInvalidOption},
		{"empty dest", func(p *Parser) error { return p.Argument().Long("--a").Dest("").Commit() }, ErrorTypeMissingDest},
		{"no name", func(p *Parser) error { return p.Argument().Help("nothing").Commit() }, ErrorTypeMissingDest},
		{"type then default", func(p *Parser) error {
			return p.Argument().Long("--n").Type(KindInt).Default(String("x")).Commit()
		}, ErrorTypeKindMismatch},
		{"default then choices", func(p *Parser) error {
			return p.Argument().Long("--n").Default(Int(1)).Choices(Strings("a")).Commit()
		}, ErrorTypeKindMismatch},
		{"array type", func(p *Parser) error { return p.Argument().Long("--n").Type(KindIntArray).Commit() }, ErrorTypeKindMismatch},
		{"const without nargs or action", func(p *Parser) error {
			return p.Argument().Long("--n").Const(Int(1)).Commit()
		}, ErrorTypeInvalidConst},
		{"const kind", func(p *Parser) error {
			return p.Argument().Long("--n").Type(KindBool).Nargs("?").Const(Int(1)).Commit()
		}, ErrorTypeKindMismatch},
		{"action twice", func(p *Parser) error {
			return p.Argument().Long("--n").Action("store_true").Action("store_false").Commit()
		}, ErrorTypeInvalidAction},
		{"unknown action", func(p *Parser) error { return p.Argument().Long("--n").Action("append").Commit() }, ErrorTypeInvalidAction},
		{"action after nargs", func(p *Parser) error {
			return p.Argument().Long("--n").Nargs("+").Action("store_true").Commit()
		}, ErrorTypeInvalidAction},
		{"nargs after action", func(p *Parser) error {
			return p.Argument().Long("--n").Action("store_true").Nargs("+").Commit()
		}, ErrorTypeInvalidNargs},
		{"action after choices", func(p *Parser) error {
			return p.Argument().Long("--n").Choices(Ints(1)).Action("store_true").Commit()
		}, ErrorTypeInvalidAction},
		{"choices after action", func(p *Parser) error {
			return p.Argument().Long("--n").Action("store_true").Choices(Ints(1)).Commit()
		}, ErrorTypeInvalidAction},
		{"unknown nargs", func(p *Parser) error { return p.Argument().Long("--n").Nargs("2").Commit() }, ErrorTypeInvalidNargs},
		{"zero count", func(p *Parser) error { return p.Argument().Long("--n").NargsN(0).Commit() }, ErrorTypeInvalidNargs},
		{"store_const without const", func(p *Parser) error {
			return p.Argument().Long("--n").Action("store_const").Commit()
		}, ErrorTypeMissingConst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, h := newTestParser(t)
			err := tt.declare(p)

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if perr.Type != tt.want {
				t.Fatalf("type = %s, want %s (%s)", perr.Type, tt.want, perr.Message)
			}
			if !errors.Is(err, ErrDeclaration) || errors.Is(err, ErrParse) {
				t.Fatalf("declaration errors classify as ErrDeclaration")
			}
			if len(p.Entries()) != 0 {
				t.Fatalf("failed declaration registered %v", p.Entries())
			}
			if !strings.HasPrefix(h.err.String(), "[error]: ") {
				t.Fatalf("diagnostic = %q", h.err.String())
			}
		})
	}
}

func TestDuplicateIdentifiers(t *testing.T) {
	p, _ := newTestParser(t)
	mustCommit(t, p.Argument().Short("-c").Long("--count"))
	mustCommit(t, p.Argument().Positional("src"))

	tests := []struct {
		name    string
		declare func() error
	}{
		{"long", func() error { return p.Argument().Long("--count").Commit() }},
		{"short", func() error { return p.Argument().Short("-c").Commit() }},
		{"positional", func() error { return p.Argument().Positional("src").Commit() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var perr *Error
			if err := tt.declare(); !errors.As(err, &perr) || perr.Type != ErrorTypeConflictingOption {
				t.Fatalf("err = %v, want conflicting option", err)
			}
		})
	}

	// Namespaces are separate: a positional may share a long flag's name.
	mustCommit(t, p.Argument().Positional("count"))
	if len(p.Entries()) != 3 {
		t.Fatalf("entries = %d, want 3", len(p.Entries()))
	}
}

func TestConflictDetectedAtCommit(t *testing.T) {
	p, _ := newTestParser(t)
	first := p.Argument().Long("--x")
	second := p.Argument().Long("--x")
	mustCommit(t, first)

	var perr *Error
	if err := second.Commit(); !errors.As(err, &perr) || perr.Type != ErrorTypeConflictingOption {
		t.Fatalf("err = %v", err)
	}
}

func TestBuilderErrorIsSticky(t *testing.T) {
	p, _ := newTestParser(t)
	b := p.Argument().Long("bad").Long("--ok").Help("ignored")
	first := b.Err()
	if first == nil {
		t.Fatalf("expected a sticky error")
	}
	if err := b.Commit(); err != first {
		t.Fatalf("Commit returned %v, want the first error %v", err, first)
	}
	if b.entry.Long != "" || b.entry.Help != "" {
		t.Fatalf("calls after the failure must be ignored: %+v", b.entry)
	}
	// Nothing was registered, so the name is still free.
	mustCommit(t, p.Argument().Long("--ok"))
}

func TestCommitTwice(t *testing.T) {
	p, _ := newTestParser(t)
	b := p.Argument().Long("--once")
	mustCommit(t, b)
	if err := b.Commit(); err == nil {
		t.Fatalf("second commit must fail")
	}
	if len(p.Entries()) != 1 {
		t.Fatalf("entries = %d", len(p.Entries()))
	}
}

func TestDeclarationFailureExits(t *testing.T) {
	p, h := newTestParser(t, WithErrorMode(ModeExit))
	p.Argument().Long("--a").Action("store_true").Nargs("*")
	if diff := cmp.Diff([]int{1}, h.codes); diff != "" {
		t.Fatalf("exit codes (-want +got):\n%s", diff)
	}
	if !strings.Contains(h.out.String(), "Usage: prog [-h]") {
		t.Fatalf("help not printed on declaration failure")
	}
}

func TestDestDerivation(t *testing.T) {
	tests := []struct {
		name    string
		declare func(b *EntryBuilder) *EntryBuilder
		want    string
	}{
		{"long wins over short", func(b *EntryBuilder) *EntryBuilder { return b.Short("-v").Long("--verbose") }, "verbose"},
		{"order does not matter", func(b *EntryBuilder) *EntryBuilder { return b.Long("--verbose").Short("-v") }, "verbose"},
		{"short only", func(b *EntryBuilder) *EntryBuilder { return b.Short("-v") }, "v"},
		{"multi-letter short", func(b *EntryBuilder) *EntryBuilder { return b.Short("-vv") }, "vv"},
		{"positional", func(b *EntryBuilder) *EntryBuilder { return b.Positional("file") }, "file"},
		{"explicit dest", func(b *EntryBuilder) *EntryBuilder { return b.Dest("lvl").Long("--level") }, "lvl"},
		{"dashes kept", func(b *EntryBuilder) *EntryBuilder { return b.Long("--dry-run") }, "dry-run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser(t)
			mustCommit(t, tt.declare(p.Argument()))
			if got := p.Entries()[0].Dest; got != tt.want {
				t.Fatalf("dest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryShape(t *testing.T) {
	p, _ := newTestParser(t)
	mustCommit(t, p.Argument().Positional("xs").NargsN(3).Default(Ints(1, 2, 3)).Help("three ints"))
	mustCommit(t, p.Argument().Long("--ratio").Type(KindDouble).Nargs("?").Const(Double(0.5)).Choices(Doubles(0.5, 1)))

	want := []Entry{
		{Positional: "xs", Dest: "xs", Kind: KindInt, Nargs: NargsN, N: 3, Default: Ints(1, 2, 3), Help: "three ints", Required: true},
		{Long: "--ratio", Dest: "ratio", Kind: KindDouble, Nargs: NargsOptional, Const: Double(0.5), Choices: Doubles(0.5, 1)},
	}
	if diff := cmp.Diff(want, p.Entries()); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}
}

func TestAddArgument(t *testing.T) {
	p, _ := newTestParser(t)
	if err := p.AddArgument("--output", "out.txt", "where to write"); err != nil {
		t.Fatal(err)
	}
	res := mustParse(t, p)
	if res.GetString("output") != "out.txt" {
		t.Fatalf("output = %q", res.GetString("output"))
	}
	if err := p.AddArgument("--output", "x", ""); err == nil {
		t.Fatalf("duplicate shorthand declaration must fail")
	}
}
