package application

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/tasklens/pkg/domain"
	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// Report bundles the full analytics suite computed from one task
// collection snapshot. Every field is freshly allocated per call; nothing
// is cached between calls.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalTasks       int     `json:"total_tasks"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalTimeTaken   float64 `json:"total_time_taken"`
	TimeEfficiency   float64 `json:"time_efficiency"`
	RevenuePerHour   float64 `json:"revenue_per_hour"`
	AverageROI       float64 `json:"average_roi"`
	WeightedPipeline float64 `json:"weighted_pipeline"`

	Grade  analytics.PerformanceGrade `json:"grade"`
	Funnel analytics.FunnelCounts     `json:"funnel"`

	Velocity   map[task.TaskPriority]analytics.VelocityStat `json:"velocity"`
	Throughput []analytics.WeeklyBucket                     `json:"throughput"`
	Forecast   []analytics.WeeklyBucket                     `json:"forecast"`
	Cohorts    []analytics.CohortBucket                     `json:"cohorts"`

	Ranked []task.DerivedTask `json:"ranked"`
}

// ReportService computes analytics reports from the persisted task
// collection.
type ReportService struct {
	repo domain.TaskRepository
}

// NewReportService creates a new report service.
func NewReportService(repo domain.TaskRepository) *ReportService {
	return &ReportService{repo: repo}
}

// GetReport loads the task collection and computes the full report.
func (s *ReportService) GetReport() (*Report, error) {
	tasks, err := s.repo.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return BuildReport(tasks), nil
}

// BuildReport computes the full report over an in-memory task collection.
// The input is never mutated.
func BuildReport(tasks []task.Task) *Report {
	avgROI := analytics.AverageROI(tasks)
	throughput := analytics.ThroughputByWeek(tasks)

	derived := make([]task.DerivedTask, len(tasks))
	for i, t := range tasks {
		derived[i] = task.WithDerived(t)
	}

	return &Report{
		GeneratedAt:      time.Now().UTC(),
		TotalTasks:       len(tasks),
		TotalRevenue:     analytics.TotalRevenue(tasks),
		TotalTimeTaken:   analytics.TotalTimeTaken(tasks),
		TimeEfficiency:   analytics.TimeEfficiency(tasks),
		RevenuePerHour:   analytics.RevenuePerHour(tasks),
		AverageROI:       avgROI,
		WeightedPipeline: analytics.WeightedPipeline(tasks),
		Grade:            analytics.GradeForROI(avgROI),
		Funnel:           analytics.Funnel(tasks),
		Velocity:         analytics.VelocityByPriority(tasks),
		Throughput:       throughput,
		Forecast:         analytics.Forecast(throughput, analytics.DefaultForecastHorizon),
		Cohorts:          analytics.CohortRevenue(tasks),
		Ranked:           analytics.SortTasks(derived),
	}
}
