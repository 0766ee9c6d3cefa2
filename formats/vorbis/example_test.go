// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/formats/vorbis"
)

// ExampleDecoder_Decode_errorHandling shows what happens with data that is
// not Ogg Vorbis.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg file")))
	fmt.Println(err != nil)
	// Output: true
}

// Example_registry registers the decoder under both Ogg extensions.
func Example_registry() {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register(".OGA", vorbis.Decoder{})

	fmt.Println(reg.Formats())
	// Output: [oga ogg]
}
