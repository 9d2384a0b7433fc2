package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Answerer answers a single question, returning the reply text and the
// titles of the facts used as grounding.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, []string, error)
}

// QuestionJob answers one question through the assistant
type QuestionJob struct {
	Question string
	Answerer Answerer
}

// Execute runs the job
func (j *QuestionJob) Execute(ctx context.Context) Result {
	answer, sources, err := j.Answerer.Answer(ctx, j.Question)
	return &QuestionResult{
		Question: j.Question,
		Answer:   answer,
		Sources:  sources,
		Error:    err,
	}
}

// QuestionResult is the outcome of one answered question
type QuestionResult struct {
	Question string
	Answer   string
	Sources  []string
	Error    error
}

// GetError returns the job error, if any
func (r *QuestionResult) GetError() error {
	return r.Error
}

// BatchProcessor answers many questions concurrently
type BatchProcessor struct {
	answerer    Answerer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(answerer Answerer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		answerer:    answerer,
		concurrency: concurrency,
	}
}

// Process answers the given questions on the worker pool. Results arrive in
// completion order, not input order. Canceling ctx abandons outstanding
// questions; the results gathered so far are still returned.
func (b *BatchProcessor) Process(ctx context.Context, questions []string) []*QuestionResult {
	if len(questions) == 0 {
		return []*QuestionResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	stop := context.AfterFunc(ctx, pool.Shutdown)
	defer stop()

	// Submissions overlap with draining so the bounded queues never wedge
	go func() {
		for _, q := range questions {
			pool.Submit(&QuestionJob{Question: q, Answerer: b.answerer})
		}
		pool.Done()
	}()

	results := pool.Drain()

	out := make([]*QuestionResult, len(results))
	for i, r := range results {
		out[i] = r.(*QuestionResult)
	}
	return out
}

// ProcessFile reads questions from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*QuestionResult, error) {
	questions, err := ReadQuestionsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return b.Process(ctx, questions), nil
}

// ReadQuestionsFromFile reads questions from a file, one per line. Blank
// lines and #-comments are skipped; duplicates are kept (a repeated question
// is asked again).
func ReadQuestionsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var questions []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return questions, nil
}
