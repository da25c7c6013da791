package primitive_test

import (
	"fmt"

	"value-objects/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromValue(1))
	fmt.Println(primitive.FromValue(int8(1)))
	fmt.Println(primitive.FromValue(uint64(1)))
	fmt.Println(primitive.FromValue(float32(1)))
	fmt.Println(primitive.FromValue(IntEnum(1)))
	fmt.Println(primitive.FromValue(StringEnum("x")))
	fmt.Println(primitive.FromValue([]any{1}))
	fmt.Println(primitive.FromValue([]string{"x"}))
	fmt.Println(primitive.FromValue(Empty{}))
	fmt.Println(primitive.FromValue(nil))
	// Output:
	// KindInt
	// KindInt
	// KindInt
	// KindFloat
	// KindInt
	// KindString
	// KindSequence
	// KindSequence
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleParseKind() {
	for _, name := range []string{"boolean", "int", "Double", "array", "date"} {
		k, ok := primitive.ParseKind(name)
		fmt.Println(name, k.TypeName(), ok)
	}
	// Output:
	// boolean boolean true
	// int integer true
	// Double float true
	// array sequence true
	// date KindEnum(0) false
}
