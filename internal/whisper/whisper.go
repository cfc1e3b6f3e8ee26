package whisper

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type (
	// Result представляет результат распознавания аудиофайла
	Result struct {
		Text     string
		Segments []Segment
	}

	// Segment представляет один распознанный фрагмент аудио
	Segment struct {
		Text    string
		StartMs int64
		EndMs   int64
	}

	transcribeOutput struct {
		Text     string    `json:"text"`
		Segments []segment `json:"segments"`
	}

	segment struct {
		Text  string          `json:"text"`
		Start decimal.Decimal `json:"start"`
		End   decimal.Decimal `json:"end"`
	}
)

// Transcriber запускает whisper CLI для распознавания речи.
// Модель задается один раз при создании и переиспользуется для всех вызовов.
type Transcriber struct {
	model string
}

// New создает транскрайбер для указанной модели whisper (например, "base")
func New(model string) *Transcriber {
	if model == "" {
		model = "base"
	}
	return &Transcriber{model: model}
}

// Transcribe распознает речь в аудиофайле и возвращает результат.
// whisper пишет JSON-результат в выходную директорию рядом с именем входного файла.
func (t *Transcriber) Transcribe(ctx context.Context, filePath string) (Result, error) {
	outDir, err := os.MkdirTemp("", "whisper-out-*")
	if err != nil {
		return Result{}, fmt.Errorf("creating whisper output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	cmd := exec.CommandContext(ctx, "whisper", filePath,
		"--model", t.model,
		"--output_format", "json",
		"--output_dir", outDir,
	)

	stderr, _ := cmd.StderrPipe()
	stdout, _ := cmd.StdoutPipe()
	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("starting whisper: %w", err)
	}

	go relayOutput(stderr)
	go relayOutput(stdout)

	if err := cmd.Wait(); err != nil {
		return Result{}, fmt.Errorf("transcribing with whisper: %w", err)
	}

	base := filepath.Base(filePath)
	resultPath := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
	resultFile, err := os.Open(resultPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening whisper transcribe result: %w", err)
	}
	defer resultFile.Close()

	var out transcribeOutput
	if err := json.NewDecoder(resultFile).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decoding whisper json result: %w", err)
	}

	res := Result{
		Text:     strings.TrimSpace(out.Text),
		Segments: make([]Segment, len(out.Segments)),
	}
	for n, s := range out.Segments {
		res.Segments[n] = Segment{
			Text:    s.Text,
			StartMs: s.Start.Mul(decimal.NewFromInt(1000)).IntPart(),
			EndMs:   s.End.Mul(decimal.NewFromInt(1000)).IntPart(),
		}
	}
	return res, nil
}

// relayOutput перенаправляет вывод whisper CLI в общий лог
func relayOutput(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		log.Debug().Str("source", "whisper").Msg(scanner.Text())
	}
}
