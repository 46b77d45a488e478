package fabric

import (
	"context"
	"testing"
)

func BenchmarkEvaluateGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := EvaluateGrid(150, DefaultTolerance, Density, Isotropic); err != nil {
			b.Fatalf("Failed evaluating the density grid: %v", err)
		}
	}
}

func BenchmarkEvaluatorConcurrent(b *testing.B) {
	ev := NewEvaluator(150, Density)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ev.Evaluate(ctx); err != nil {
			b.Fatalf("Failed evaluating the density grid: %v", err)
		}
	}
}

func BenchmarkDraw(b *testing.B) {
	recs := make([]Record, 0, 500)
	for _, e := range randomEigens(500, 11) {
		recs = append(recs, Record{Eigen: e, Weight: 1})
	}
	p := DefaultProcessor()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := p.Draw(ctx, recs); err != nil {
			b.Fatalf("Failed drawing fabric plot benchmark image: %v", err)
		}
	}
}
