package tonal_test

import (
	"fmt"

	"github.com/katalvlaran/tonal"
	"github.com/katalvlaran/tonal/logfreq"
	"github.com/katalvlaran/tonal/pitch"
	"github.com/katalvlaran/tonal/spelled"
)

// ExampleStandardRegistry converts a spelled pitch all the way to a
// frequency through the synthesized spelled→log-frequency route.
func ExampleStandardRegistry() {
	reg, err := tonal.StandardRegistry()
	if err != nil {
		fmt.Println("registry:", err)
		return
	}

	p, err := spelled.ParsePitch("A4")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	lf, err := pitch.Convert[logfreq.Pitch](reg, p)
	if err != nil {
		fmt.Println("convert:", err)
		return
	}
	fmt.Printf("%s sounds at %.0f Hz\n", spelled.Name(p), logfreq.Freq(lf))

	// Output:
	// A4 sounds at 440 Hz
}
