package graphcodec_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/json"
	"github.com/tarantool/go-graphcodec/format/yaml"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

func exampleRegistry() *typeinfo.Registry {
	reg := typeinfo.NewRegistry()
	typeinfo.RegisterType[Point](reg, "pt")

	return reg
}

func ExampleMarshal() {
	data, err := graphcodec.Marshal(graphcodec.JSON, Point{X: 1, Y: 2}, graphcodec.WithRegistry(exampleRegistry()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
	// Output: {"$type":"pt","X":1,"Y":2}
}

func ExampleUnmarshal() {
	var v any

	err := graphcodec.Unmarshal(graphcodec.JSON, []byte(`{"$type":"pt","X":3,"Y":4}`), &v,
		graphcodec.WithRegistry(exampleRegistry()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%#v\n", v)
	// Output: graphcodec_test.Point{X:3, Y:4}
}

func ExampleEncoder_Encode() {
	var buf bytes.Buffer

	w, err := graphcodec.CBOR.NewWriter(&buf)
	if err != nil {
		log.Fatal(err)
	}

	if err := graphcodec.NewEncoder().Encode(w, []int64{19, 20}); err != nil {
		log.Fatal(err)
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% X\n", buf.Bytes())
	// Output: 9F 13 14 FF
}

func ExampleDecoder_Parse() {
	root, err := graphcodec.NewDecoder().Parse(json.NewReader(strings.NewReader(`{"$type":"pt","X":1}`)))
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer

	w := yaml.NewWriter(&buf)
	if err := format.Emit(w, root); err != nil {
		log.Fatal(err)
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Print(buf.String())
	// Output:
	// $type: pt
	// X: 1
}
