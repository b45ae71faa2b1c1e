package sunrise

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const DefaultJobTimeout = time.Minute

var ErrEmptyCommand = errors.New("empty command")

// Job runs a command when its schedule fires
//
// This implements robfig/cron.Job
type Job struct {
	Name    string
	Command []string
	Timeout time.Duration

	Logger   *slog.Logger
	Metrics  *Metrics
	Notifier Notifier
}

// Run executes the job's command, logging its outcome and passing
// it to the job's notifier, if any
func (j Job) Run() {
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	output, err := j.Exec(context.Background())
	elapsed := time.Since(start)
	j.Metrics.jobFinished(j.Name, elapsed.Seconds(), err)

	result := JobResult{
		Job:     j.Name,
		Start:   start,
		Elapsed: elapsed.Seconds(),
		Output:  output,
	}
	if err != nil {
		result.Error = err.Error()
		logger.Error("job failed", "job", j.Name, "elapsed", elapsed, "output", output, "error", err)
	} else {
		logger.Info("job finished", "job", j.Name, "elapsed", elapsed, "output", output)
	}

	if j.Notifier == nil {
		return
	}
	if err := j.Notifier.Notify(context.Background(), result); err != nil {
		logger.Error("notify job result", "job", j.Name, "error", err)
	}
}

// Exec runs the command under the job's timeout and returns its
// combined, trimmed output
func (j Job) Exec(ctx context.Context) (string, error) {
	if len(j.Command) == 0 {
		return "", ErrEmptyCommand
	}

	timeout := j.Timeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, j.Command[0], j.Command[1:]...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	output := strings.TrimSpace(buf.String())
	if err != nil {
		if ctx.Err() != nil {
			return output, fmt.Errorf("run %s: %w", j.Command[0], ctx.Err())
		}
		return output, fmt.Errorf("run %s: %w", j.Command[0], err)
	}
	return output, nil
}
