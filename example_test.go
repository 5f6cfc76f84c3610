package wordcodec

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

func Example() {
	var enc bytes.Buffer
	dict, err := Compress(strings.NewReader("the cat sat on the mat"), &enc)
	if err != nil {
		panic(err)
	}
	fmt.Println(enc.String())
	dict.WriteTo(os.Stdout)

	var dec bytes.Buffer
	if err := Decompress(&enc, &dec, dict); err != nil {
		panic(err)
	}
	fmt.Println(dec.String())
	// Output:
	// 0 1 2 3 0 4
	// the
	// cat
	// sat
	// on
	// mat
	// the cat sat on the mat
}
