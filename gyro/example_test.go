package gyro_test

import (
	"fmt"

	"github.com/alexiusacademia/gogyro/gyro"
)

func ExampleAngus2015() {
	p := gyro.Angus2015(0.65, 4600)
	fmt.Printf("P=%.1f d\n", p)
	fmt.Printf("age=%.0f Myr\n", gyro.Angus2015Age(0.65, p))
	// Output:
	// P=25.1 d
	// age=4600 Myr
}
