package enharmonic_test

import (
	"fmt"

	"github.com/katalvlaran/tonal/affine"
	"github.com/katalvlaran/tonal/enharmonic"
)

// Example_transposition moves a pitch by an interval and renders both
// spellings of the result.
func Example_transposition() {
	c4, err := enharmonic.ParsePitch("C4")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	up := c4.Add(enharmonic.NewInterval(6))
	fmt.Println(enharmonic.Name(up, enharmonic.Sharp))
	fmt.Println(enharmonic.Name(up, enharmonic.Flat))

	// Output:
	// F#4
	// Gb4
}

// ExampleParseClass shows octave-free pitch classes collapsing spellings.
func ExampleParseClass() {
	cs, _ := enharmonic.ParseClass("C#")
	db, _ := enharmonic.ParseClass("Db")
	fmt.Println(cs == db)

	// Output:
	// true
}

// Example_scale walks a whole-tone scale with the generic stepper.
func Example_scale() {
	start := enharmonic.New(60)
	stop := enharmonic.New(72)
	for p := range affine.Range(start, stop, enharmonic.NewInterval(2), true) {
		fmt.Print(enharmonic.Name(p, enharmonic.Sharp), " ")
	}
	fmt.Println()

	// Output:
	// C4 D4 E4 F#4 G#4 A#4 C5
}
