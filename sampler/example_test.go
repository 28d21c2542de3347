// SPDX-License-Identifier: MIT

package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/lvtext/sampler"
)

func ExampleSample() {
	s := sampler.New(sampler.WithSeed(1))
	got, err := sampler.Sample(s, []sampler.Weighted[string]{{Item: "word", Weight: 1}})
	fmt.Println(got, err)
	// Output: word <nil>
}
