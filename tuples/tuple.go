package tuples

// Tuple2 is a two field composite key in storage representation.
type Tuple2[A, B comparable] struct {
	First  A
	Second B
}

// Tuple3 is a three field composite key in storage representation.
type Tuple3[A, B, C comparable] struct {
	First  A
	Second B
	Third  C
}
