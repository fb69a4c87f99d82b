package prophy

import "testing"

func TestPrinterScalars(t *testing.T) {
	var p Printer
	p.Uint("x", 3)
	p.Int("y", -4)
	p.Symbol("c", "Enum_One")
	if got, want := p.String(), "x: 3\ny: -4\nc: Enum_One\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrinterNesting(t *testing.T) {
	var p Printer
	p.Begin("outer")
	p.Uint("x", 1)
	p.Begin("inner")
	p.Uint("y", 2)
	p.End()
	p.End()
	p.Uint("z", 3)

	want := "outer {\n" +
		"  x: 1\n" +
		"  inner {\n" +
		"    y: 2\n" +
		"  }\n" +
		"}\n" +
		"z: 3\n"
	if got := p.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrinterDeterminism(t *testing.T) {
	render := func() string {
		var p Printer
		p.Begin("a")
		p.Uint("b", 7)
		p.End()
		return p.String()
	}
	if render() != render() {
		t.Fatalf("rendering is not deterministic")
	}
}
