package dict

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchmarkInputs() map[string][]byte {
	rng := rand.New(rand.NewPCG(17, 19))

	random := make([]byte, 256*1024)
	for i := range random {
		random[i] = byte(rng.Uint32())
	}

	return map[string][]byte{
		"skewed-256KiB":  skewedInput(rng, 256*1024, 32),
		"random-256KiB":  random,
		"text-256KiB":    bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 256*1024/44),
		"constant-64KiB": bytes.Repeat([]byte{'x'}, 64*1024),
	}
}

func BenchmarkEncode(b *testing.B) {
	for name, input := range benchmarkInputs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Encode(input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for name, input := range benchmarkInputs() {
		encoded, err := Encode(input)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode(encoded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkChooseWidth(b *testing.B) {
	rng := rand.New(rand.NewPCG(23, 29))
	for _, alphabet := range []int{2, 16, 128, 256} {
		input := skewedInput(rng, 64*1024, alphabet)
		freq := BuildFrequencyTable(input)

		b.Run(fmt.Sprintf("alphabet=%d", alphabet), func(b *testing.B) {
			for b.Loop() {
				_ = ChooseWidth(freq, len(input), MaxWidth)
			}
		})
	}
}
