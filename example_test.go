package dbpool

import (
	"context"
	"fmt"
)

func ExampleSelectBackend() {
	fmt.Println(SelectBackend(Environment{}))
	fmt.Println(SelectBackend(Environment{ServerURL: "postgres://app@db.example.com/app"}))
	// Output:
	// embedded
	// networked
}

func ExampleCaptureEnvironment() {
	lookup := func(key string) (string, bool) {
		props := map[string]string{
			EnvMaxPoolSize: "20",
		}
		v, ok := props[key]
		return v, ok
	}

	env, err := CaptureEnvironment(lookup)
	if err != nil {
		fmt.Println("unexpected error")
		return
	}

	fmt.Println(env.MaxPoolSize, env.MinIdle)
	// Output: 20 -1
}

func ExampleOpenTaskPool() {
	pool, err := OpenTaskPool(context.Background(), DatabaseProperties{File: ":memory:"})
	if err != nil {
		fmt.Println("unexpected error")
		return
	}
	defer pool.Close()

	fmt.Println(pool.Name(), pool.MaxSize())
	// Output: tasks 1
}
