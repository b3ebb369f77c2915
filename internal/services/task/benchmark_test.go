package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// benchmarkSeed builds n tasks spread across 10 projects with alternating due dates
func benchmarkSeed(n int) []*models.Task {
	tasks := make([]*models.Task, 0, n)
	base := models.MustParseDate("2024-01-02")
	for i := 1; i <= n; i++ {
		tasks = append(tasks, &models.Task{
			ID:        i,
			Title:     fmt.Sprintf("Task %d", i),
			Priority:  models.Priorities[i%len(models.Priorities)],
			DueDate:   models.DatePtr(base.AddDays(i%7 - 3)),
			ProjectID: models.IntPtr(i%10 + 1),
			Completed: i%5 == 0,
		})
	}
	return tasks
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkGetTodayTasks(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("tasks=%d", n), func(b *testing.B) {
			svc := NewService(benchmarkSeed(n))
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := svc.GetTodayTasks(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGetTasksByProject(b *testing.B) {
	svc := NewService(benchmarkSeed(1000))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetTasksByProject(ctx, i%10+1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBulkUpdateTasks(b *testing.B) {
	svc := NewService(benchmarkSeed(1000))
	ctx := context.Background()

	ids := make([]int, 0, 100)
	for i := 1; i <= 100; i++ {
		ids = append(ids, i*10)
	}
	raw := FormatIDs(ids...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BulkUpdateTasks(ctx, raw, Complete(i%2 == 0)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBulkDeleteTasks(b *testing.B) {
	ctx := context.Background()
	raw := FormatIDs(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		svc := NewService(benchmarkSeed(1000))
		b.StartTimer()
		if _, err := svc.BulkDeleteTasks(ctx, raw); err != nil {
			b.Fatal(err)
		}
	}
}
