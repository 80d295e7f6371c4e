package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fgblog/pkg/logger"
)

// ErrQueueFull 任务队列已满
var ErrQueueFull = errors.New("task queue is full")

// ErrStopped 工作器已停止
var ErrStopped = errors.New("worker stopped")

// Task 表示一个异步任务
type Task struct {
	ID       string
	Handler  func(ctx context.Context) error
	Timeout  time.Duration
	RetryMax int
}

// Result 表示任务执行结果
type Result struct {
	TaskID    string
	Completed bool
	Error     error
	Attempts  int
	StartTime time.Time
	EndTime   time.Time
}

// Worker 异步任务处理器
type Worker struct {
	taskQueue chan Task
	results   map[string]Result
	mu        sync.RWMutex
	stopped   bool
	logger    *logger.Logger
	wg        sync.WaitGroup
	backoff   time.Duration
}

// NewWorker 创建一个新的工作器
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		results:   make(map[string]Result),
		logger:    logger,
		backoff:   time.Second,
	}
}

// Start 启动 numWorkers 个工作协程
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTask()
	}
}

// Stop 停止接收任务并等待已入队的任务执行完毕，可重复调用
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.taskQueue)
	w.mu.Unlock()

	w.wg.Wait()
}

// Submit 非阻塞地提交任务，队列满时返回 ErrQueueFull
func (w *Worker) Submit(task Task) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task_%d", time.Now().UnixNano())
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrStopped
	}

	select {
	case w.taskQueue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// AddTask 提交一个不关心结果的简单任务
func (w *Worker) AddTask(handler func()) error {
	return w.Submit(Task{
		Handler: func(ctx context.Context) error {
			handler()
			return nil
		},
	})
}

// GetResult 获取任务结果
func (w *Worker) GetResult(taskID string) (Result, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result, exists := w.results[taskID]
	return result, exists
}

func (w *Worker) processTask() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

func (w *Worker) executeTask(task Task) {
	result := Result{
		TaskID:    task.ID,
		StartTime: time.Now(),
	}

	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	var err error
	for attempt := 0; attempt <= task.RetryMax; attempt++ {
		if attempt > 0 {
			w.logger.Info("重试异步任务", "task_id", task.ID, "attempt", attempt)
			time.Sleep(w.backoff * time.Duration(attempt))
		}

		result.Attempts++
		err = task.Handler(ctx)
		if err == nil {
			break
		}

		w.logger.Warn("异步任务执行失败", "task_id", task.ID, "attempt", attempt, "error", err)
	}

	result.EndTime = time.Now()
	result.Error = err
	result.Completed = err == nil

	w.mu.Lock()
	w.results[task.ID] = result
	w.mu.Unlock()

	if err != nil {
		w.logger.Error("异步任务最终失败", "task_id", task.ID, "error", err)
	} else {
		w.logger.Debug("异步任务完成", "task_id", task.ID, "duration", result.EndTime.Sub(result.StartTime))
	}
}
