package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/felixgeelhaar/tasklens/pkg/storage"
)

func seedWorkspace(t *testing.T, tasks []task.Task) *storage.FilesystemRepository {
	t.Helper()

	cwd, _ := os.Getwd()
	repo := storage.NewFilesystemRepository(cwd)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := repo.SaveTasks(tasks); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	return repo
}

func seedSampleTasks(t *testing.T) *storage.FilesystemRepository {
	t.Helper()
	return seedWorkspace(t, []task.Task{
		{
			ID: "t1", Title: "Checkout revamp", Revenue: 2400, TimeTaken: 8,
			Priority: task.PriorityHigh, Status: task.StatusDone,
			CreatedAt: "2024-07-01T09:00:00Z", CompletedAt: "2024-07-03T17:00:00Z",
		},
		{
			ID: "t2", Title: "Search tuning", Revenue: 600, TimeTaken: 4,
			Priority: task.PriorityMedium, Status: task.StatusInProgress,
			CreatedAt: "2024-07-08T09:00:00Z",
		},
	})
}

func TestInitCommand(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()

	out := captureStdout(t, func() {
		if err := runCommand(t, "init"); err != nil {
			t.Errorf("init: %v", err)
		}
	})
	if !strings.Contains(out, "Initialized") {
		t.Errorf("init output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, storage.TasklensDir)); err != nil {
		t.Errorf("workspace directory missing: %v", err)
	}

	// Second init is a no-op.
	out = captureStdout(t, func() {
		if err := runCommand(t, "init"); err != nil {
			t.Errorf("re-init: %v", err)
		}
	})
	if !strings.Contains(out, "already initialized") {
		t.Errorf("re-init output = %q", out)
	}
}

func TestTaskAddAndListCommands(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, nil)

	out := captureStdout(t, func() {
		if err := runCommand(t, "task", "add", "Checkout revamp", "--revenue", "1200", "--time", "8", "--priority", "high"); err != nil {
			t.Errorf("task add: %v", err)
		}
	})
	if !strings.Contains(out, "Checkout revamp") {
		t.Errorf("task add output = %q", out)
	}

	out = captureStdout(t, func() {
		if err := runCommand(t, "task", "list"); err != nil {
			t.Errorf("task list: %v", err)
		}
	})
	if !strings.Contains(out, "Checkout revamp") || !strings.Contains(out, "Todo") {
		t.Errorf("task list output = %q", out)
	}
}

func TestTaskTransitionCommands(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	repo := seedWorkspace(t, []task.Task{
		{ID: "t1", Title: "x", Status: task.StatusTodo, CreatedAt: "2024-07-01T00:00:00Z"},
	})

	captureStdout(t, func() {
		if err := runCommand(t, "task", "start", "t1"); err != nil {
			t.Errorf("task start: %v", err)
		}
		if err := runCommand(t, "task", "complete", "t1"); err != nil {
			t.Errorf("task complete: %v", err)
		}
	})

	tasks, err := repo.LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tasks[0].Status != task.StatusDone {
		t.Errorf("Status = %v, want done", tasks[0].Status)
	}
	if tasks[0].CompletedAt == "" {
		t.Error("CompletedAt not stamped by complete command")
	}

	// Invalid transition surfaces an error.
	if err := runCommand(t, "task", "complete", "t1"); err == nil {
		t.Error("expected error completing a done task")
	}
}

func TestReportCommandJSON(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "report", "--json"); err != nil {
			t.Errorf("report: %v", err)
		}
	})

	var report map[string]interface{}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("report --json produced invalid JSON: %v\n%s", err, out)
	}
	if report["total_tasks"].(float64) != 2 {
		t.Errorf("total_tasks = %v, want 2", report["total_tasks"])
	}
	if report["total_revenue"].(float64) != 2400 {
		t.Errorf("total_revenue = %v, want 2400", report["total_revenue"])
	}
}

func TestRankCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "rank"); err != nil {
			t.Errorf("rank: %v", err)
		}
	})

	// t1 has ROI 300, t2 has 150; t1 must come first.
	first := strings.Index(out, "Checkout revamp")
	second := strings.Index(out, "Search tuning")
	if first == -1 || second == -1 || first > second {
		t.Errorf("rank order wrong:\n%s", out)
	}
}

func TestVelocityCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "velocity"); err != nil {
			t.Errorf("velocity: %v", err)
		}
	})

	for _, label := range []string{"High", "Medium", "Low"} {
		if !strings.Contains(out, label) {
			t.Errorf("velocity output missing %s bucket:\n%s", label, out)
		}
	}
}

func TestThroughputCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "throughput"); err != nil {
			t.Errorf("throughput: %v", err)
		}
	})

	if !strings.Contains(out, "2024-W27") {
		t.Errorf("throughput output missing completion week:\n%s", out)
	}
}

func TestForecastCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "forecast", "--weeks", "2"); err != nil {
			t.Errorf("forecast: %v", err)
		}
	})

	if !strings.Contains(out, "2024-W27") {
		t.Errorf("forecast output missing observed week:\n%s", out)
	}
	if !strings.Contains(out, "+1") || !strings.Contains(out, "+2") {
		t.Errorf("forecast output missing projections:\n%s", out)
	}
}

func TestForecastCommand_NoData(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, nil)

	out := captureStdout(t, func() {
		if err := runCommand(t, "forecast"); err != nil {
			t.Errorf("forecast: %v", err)
		}
	})
	if !strings.Contains(out, "no completed tasks") {
		t.Errorf("forecast output = %q", out)
	}
}

func TestFunnelCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "funnel", "--json"); err != nil {
			t.Errorf("funnel: %v", err)
		}
	})

	var counts map[string]interface{}
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("funnel --json produced invalid JSON: %v", err)
	}
	if counts["done"].(float64) != 1 {
		t.Errorf("done = %v, want 1", counts["done"])
	}
}

func TestCohortCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedSampleTasks(t)

	out := captureStdout(t, func() {
		if err := runCommand(t, "cohort"); err != nil {
			t.Errorf("cohort: %v", err)
		}
	})

	if !strings.Contains(out, "2024-W27") || !strings.Contains(out, "2024-W28") {
		t.Errorf("cohort output missing creation weeks:\n%s", out)
	}
}

func TestImportCommand(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, nil)

	payload := `[{"title": "Imported", "revenue": 100, "time_taken": 2,
		"priority": "low", "status": "todo", "created_at": "2024-07-08T10:00:00Z"}]`
	if err := os.WriteFile("export.json", []byte(payload), 0600); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "import", "export.json"); err != nil {
			t.Errorf("import: %v", err)
		}
	})
	if !strings.Contains(out, "Imported 1 tasks") {
		t.Errorf("import output = %q", out)
	}
}

func TestImportCommand_Uninitialized(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCommand(t, "import", "export.json"); err == nil {
		t.Error("expected error importing into uninitialized workspace")
	}
}

func TestDashboardCommand_Skipped(t *testing.T) {
	t.Setenv("TASKLENS_SKIP_DASHBOARD_RUN", "true")

	if err := runCommand(t, "dashboard"); err != nil {
		t.Errorf("dashboard: %v", err)
	}
}
