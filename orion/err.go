package orion

import "fmt"

// must panics if err is not nil. It guards against programming
// errors, not against runtime failures.
func must(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
