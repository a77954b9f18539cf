package sm2_test

import (
	"testing"

	"github.com/sky-flux/sm2"
)

// BenchmarkReview measures the time to process a single review.
// Target: < 50ns/op.
func BenchmarkReview(b *testing.B) {
	item := sm2.NewItem()
	for i := 0; i < b.N; i++ {
		next, err := item.Review(sm2.Good)
		if err != nil {
			b.Fatal(err)
		}
		item = next
	}
}

// BenchmarkInterval measures the time to compute the due-in-days value.
// Target: < 50ns/op.
func BenchmarkInterval(b *testing.B) {
	item := sm2.RestoreItem(8, 2.3)
	for i := 0; i < b.N; i++ {
		item.Interval()
	}
}

// BenchmarkReplay measures rebuilding an item from a 100-review history.
func BenchmarkReplay(b *testing.B) {
	history := make([]sm2.Quality, 100)
	for i := range history {
		history[i] = sm2.Quality(i % 6)
	}
	item := sm2.NewItem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := item.Replay(history); err != nil {
			b.Fatal(err)
		}
	}
}
