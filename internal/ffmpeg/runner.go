// Package ffmpeg оборачивает вызовы внешнего бинаря ffmpeg: нарезка на
// сегменты и запрос версии. Граница выделена в интерфейс, чтобы в тестах
// подставлять фейковый раннер вместо реального процесса.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/yourname/audiosplit_lite/internal/models"
)

// SegmentRequest описывает один вызов нарезки.
type SegmentRequest struct {
	InputPath      string
	OutputPattern  string
	SegmentSeconds int
}

type Runner interface {
	// Segment режет входной файл на части фиксированной длительности.
	Segment(ctx context.Context, req SegmentRequest) error
	// Version возвращает первую строку вывода `-version`.
	Version(ctx context.Context) (string, error)
}

// ExecRunner запускает настоящий ffmpeg как дочерний процесс.
type ExecRunner struct {
	bin string
}

// NewExecRunner создаёт раннер поверх указанного бинаря.
func NewExecRunner(bin string) *ExecRunner {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &ExecRunner{bin: bin}
}

var _ Runner = (*ExecRunner)(nil)

// Segment вызывает `ffmpeg -i in -f segment -segment_time N -c copy -y pattern`.
// `-c copy` ремуксит без перекодирования, поэтому работает со скоростью I/O.
// Ошибки процесса транслируются в доменную таксономию: бинарь не найден,
// превышен таймаут, ненулевой код выхода (с текстом stderr).
func (r *ExecRunner) Segment(ctx context.Context, req SegmentRequest) error {
	if _, err := exec.LookPath(r.bin); err != nil {
		return models.ErrToolUnavailable
	}

	cmd := exec.CommandContext(ctx, r.bin,
		"-i", req.InputPath,
		"-f", "segment",
		"-segment_time", strconv.Itoa(req.SegmentSeconds),
		"-c", "copy",
		"-y",
		req.OutputPattern,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// Контекст проверяем первым: после kill сам процесс отдаёт "signal: killed".
	if ctx.Err() != nil {
		return models.ErrProcessTimeout
	}
	if errors.Is(err, exec.ErrNotFound) {
		return models.ErrToolUnavailable
	}

	diag := strings.TrimSpace(stderr.String())
	if diag == "" {
		diag = err.Error()
	}
	return fmt.Errorf("%w: %s", models.ErrToolExecution, diag)
}

// Version запускает `ffmpeg -version` и возвращает первую строку вывода.
func (r *ExecRunner) Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(r.bin); err != nil {
		return "", models.ErrToolUnavailable
	}

	out, err := exec.CommandContext(ctx, r.bin, "-version").Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", models.ErrProcessTimeout
		}
		return "", fmt.Errorf("%w: %v", models.ErrToolExecution, err)
	}

	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}
