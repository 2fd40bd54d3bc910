package sha256_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"massnet.org/sha256sum/crypto/sha256"
)

func ExampleSum256() {
	sum := sha256.Sum256([]byte("hello world\n"))
	fmt.Printf("%x\n", sum[:])
	fmt.Println(sum)
	// Output:
	// a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447
	// a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447
}

func ExampleNew() {
	h := sha256.New()
	h.Write([]byte("hello world\n"))
	fmt.Printf("%x", h.Sum(nil))
	// Output: a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447
}

func ExampleNewHasher() {
	msg := "abc"
	hs, err := sha256.NewHasher(strings.NewReader(msg), int64(len(msg))*8)
	if err != nil {
		log.Fatal(err)
	}
	digest, err := hs.ComputeHash()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(digest)
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleSumReader_file() {
	f, err := os.Open("file.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}

	d, err := sha256.SumReader(f, info.Size())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)
}

func ExampleNew_copy() {
	h := sha256.New()
	if _, err := io.Copy(h, strings.NewReader("abc")); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x", h.Sum(nil))
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
