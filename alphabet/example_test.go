// SPDX-License-Identifier: MIT

package alphabet_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtext/alphabet"
)

func ExampleParse() {
	a, err := alphabet.Parse(strings.NewReader("\uFEFFab ,"), 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Len(), a.Letters(), a.IsLetter('b'), a.IsLetter(','))
	// Output: 4 2 true false
}
