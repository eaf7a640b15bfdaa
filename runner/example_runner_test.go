package runner_test

import (
	"fmt"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/runner"
)

// ExampleRunner queues input from the host and applies it on the next step.
func ExampleRunner() {
	cfg := field.DefaultConfig()
	cfg.Width, cfg.Height = 4, 6
	cfg.Catalog = field.Catalog{field.MustParseShape("O", "##", "##")}

	engine, err := field.New(cfg)
	if err != nil {
		panic(err)
	}

	r := runner.New(engine)
	r.OnFrame(func(f runner.Frame) {
		fmt.Printf("step %d: %d applied, %d rejected\n", f.Step, f.Applied, f.Rejected)
	})

	r.Queue(field.ShiftLeft)
	r.Queue(field.ShiftLeft)
	r.Queue(field.HardDrop)
	frame := r.Once(0)
	fmt.Println(frame.Grid)

	// Output:
	// step 1: 2 applied, 1 rejected
	// ....
	// ....
	// ....
	// ....
	// @@..
	// @@..
}
