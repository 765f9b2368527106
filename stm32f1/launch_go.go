//go:build !tinygo

package stm32f1

// Launcher stands in for the branch into the application on regular Go
// builds (for testing). It receives the stack pointer and reset handler.
var Launcher func(sp, pc uint32)

// ErrApplicationReturned is the panic value raised when Launcher returns
const ErrApplicationReturned = launchError("stm32f1: application returned")

type launchError string

func (e launchError) Error() string {
	return string(e)
}

func launch(sp, pc uint32) {
	if Launcher == nil {
		panic("stm32f1: application launch requires target hardware")
	}
	Launcher(sp, pc)
	panic(ErrApplicationReturned)
}
