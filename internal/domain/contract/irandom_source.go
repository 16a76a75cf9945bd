package contract

// IRandomSource picks uniform indexes. Intn panics if n <= 0.
type IRandomSource interface {
	Intn(n int) int
}
