package types

import "fmt"

type future[T any] struct {
	f      func() (T, error)
	result T
	err    error
	stored bool
}

// Future is a value computed on first use and cached afterwards.
type Future[T any] interface {
	Get() (T, error)
	GetOrPanic() T
	Reset()
	String() string
}

func (f *future[T]) Get() (T, error) {
	if !f.stored && f.f != nil {
		f.result, f.err = f.f()
		f.stored = true
	}

	return f.result, f.err
}

func (f *future[T]) GetOrPanic() T {
	v, err := f.Get()
	if err != nil {
		panic(err)
	}

	return v
}

func (f *future[T]) Reset() {
	f.stored = false
}

func (f *future[T]) String() string {
	return fmt.Sprint(f.GetOrPanic())
}

func FutureFromFuncErr[T any](f func() (T, error)) Future[T] {
	return &future[T]{
		f: f,
	}
}
