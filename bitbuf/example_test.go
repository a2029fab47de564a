package bitbuf_test

import (
	"fmt"

	"github.com/arloliu/bca/bitbuf"
)

func ExampleBuffer() {
	w := bitbuf.NewBuffer()
	defer w.Release()

	w.WriteBits(3, 24) // length
	w.WriteBits(2, 3)  // width
	_ = w.WriteByte('z')

	fmt.Println(w.BitCount(), w.HexString())

	r := bitbuf.NewBufferFrom(w.Bytes())
	defer r.Release()

	fmt.Println(r.ReadBits(24), r.ReadBits(3), string(rune(r.ReadBits(8))))
	// Output:
	// 35 0000034F4
	// 3 2 z
}
