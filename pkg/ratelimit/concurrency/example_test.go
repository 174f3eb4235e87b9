package concurrency_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vnykmshr/llmgate/pkg/ratelimit/concurrency"
)

// Example demonstrates basic usage of the concurrency limiter
func Example() {
	limiter, err := concurrency.NewSafe(3)
	if err != nil {
		panic(fmt.Sprintf("Failed to create limiter: %v", err))
	}

	if limiter.TryAcquire() {
		fmt.Println("Operation permitted")
		limiter.Release()
	} else {
		fmt.Println("Operation denied - at capacity")
	}

	// Output: Operation permitted
}

// Example_outboundCalls bounds simulated model calls to two at a time
func Example_outboundCalls() {
	limiter := concurrency.New(2)

	prompts := []string{"p1", "p2", "p3", "p4", "p5"}
	var wg sync.WaitGroup

	for _, prompt := range prompts {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()

			if err := limiter.Wait(context.Background()); err != nil {
				fmt.Printf("Failed to acquire permit for %s: %v\n", p, err)
				return
			}
			defer limiter.Release()

			time.Sleep(10 * time.Millisecond)
		}(prompt)
	}

	wg.Wait()
	fmt.Printf("All calls completed. In use: %d\n", limiter.InUse())

	// Output: All calls completed. In use: 0
}

// Example_stateInspection shows permits moving between available and in use
func Example_stateInspection() {
	limiter := concurrency.New(3)

	for i := 1; i <= 4; i++ {
		if limiter.TryAcquire() {
			fmt.Printf("Call %d admitted. Available: %d, In use: %d\n",
				i, limiter.Available(), limiter.InUse())
		} else {
			fmt.Printf("Call %d denied. Available: %d, In use: %d\n",
				i, limiter.Available(), limiter.InUse())
		}
	}

	limiter.Release()
	fmt.Printf("Call finished. Available: %d, In use: %d\n",
		limiter.Available(), limiter.InUse())

	// Output:
	// Call 1 admitted. Available: 2, In use: 1
	// Call 2 admitted. Available: 1, In use: 2
	// Call 3 admitted. Available: 0, In use: 3
	// Call 4 denied. Available: 0, In use: 3
	// Call finished. Available: 1, In use: 2
}

// Example_withTimeout demonstrates using timeouts with concurrency limiter
func Example_withTimeout() {
	limiter := concurrency.New(1)
	limiter.TryAcquire()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err != nil {
		fmt.Printf("Failed to acquire permit: %v\n", err)
	} else {
		fmt.Println("Permit acquired")
		limiter.Release()
	}

	// Output: Failed to acquire permit: context deadline exceeded
}
