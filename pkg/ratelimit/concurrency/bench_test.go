package concurrency

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// BenchmarkTryAcquire measures uncontended TryAcquire/Release pairs
func BenchmarkTryAcquire(b *testing.B) {
	limiter := New(1000)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.TryAcquire() {
				limiter.Release()
			}
		}
	})
}

// BenchmarkWait measures Wait calls that succeed immediately
func BenchmarkWait(b *testing.B) {
	limiter := New(1000)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.Wait(ctx) == nil {
				limiter.Release()
			}
		}
	})
}

// BenchmarkHighContention simulates many goroutines fighting for few permits
func BenchmarkHighContention(b *testing.B) {
	limiter := New(4)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.Wait(ctx) == nil {
				limiter.Release()
			}
		}
	})
}

// BenchmarkContextCancellation measures the cost of abandoning a wait
func BenchmarkContextCancellation(b *testing.B) {
	limiter := New(1)
	limiter.TryAcquire()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Microsecond)
		_ = limiter.Wait(ctx)
		cancel()
	}
}

// BenchmarkCapacityScaling measures performance at different capacity levels
func BenchmarkCapacityScaling(b *testing.B) {
	for _, capacity := range []int{1, 10, 100, 1000} {
		b.Run(fmt.Sprintf("Capacity-%d", capacity), func(b *testing.B) {
			limiter := New(capacity)
			ctx := context.Background()

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if limiter.Wait(ctx) == nil {
						limiter.Release()
					}
				}
			})
		})
	}
}
