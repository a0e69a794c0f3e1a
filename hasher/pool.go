package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

type HashTask struct {
	Path string
	Size int64
}

type HashResult struct {
	Path  string
	Hash  string
	Size  int64
	Error error
}

type HashPool struct {
	fs      afero.Fs
	workers int
	tasks   chan HashTask
	results chan HashResult
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewHashPool(fs afero.Fs, workers int) *HashPool {
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}
	return &HashPool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan HashTask, internal.DefaultBufferSize),
		results: make(chan HashResult, internal.DefaultBufferSize),
	}
}

func (p *HashPool) Start() error {
	logger.Get().Debug().Msgf("启动哈希计算池，工作线程数: %d", p.workers)

	var err error
	p.pool, err = ants.NewPool(p.workers)
	if err != nil {
		logger.Get().Error().Err(err).Msg("创建 goroutine 池失败")
		return err
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}
	return nil
}

func (p *HashPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		hash, err := CalculateHash(p.fs, task.Path)
		p.results <- HashResult{
			Path:  task.Path,
			Hash:  hash,
			Size:  task.Size,
			Error: err,
		}
	}
}

func (p *HashPool) AddTask(task HashTask) {
	p.tasks <- task
}

func (p *HashPool) Results() <-chan HashResult {
	return p.results
}

// Finish 关闭任务通道，等待所有工作线程结束后关闭结果通道
func (p *HashPool) Finish() {
	close(p.tasks)
	p.wg.Wait()

	if p.pool != nil {
		p.pool.Release()
	}

	close(p.results)
}
