package errorsx_test

import (
	"fmt"

	"github.com/gopherchem/isospec/formula"
	"github.com/gopherchem/isospec/internal/errorsx"
)

func ExampleHTTPStatus() {
	_, err := formula.Parse("Xx2")
	fmt.Println(errorsx.HTTPStatus(err))
	fmt.Println(errorsx.HTTPStatus(nil))
	// Output:
	// 400
	// 200
}
