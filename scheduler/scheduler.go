package scheduler

import (
	"fmt"
	"sync"
	"time"

	"energy_recommend/config"
	"energy_recommend/logger"
	"energy_recommend/services"
)

// 验证小时和分钟是否有效
func validateHourMinute(cfg *config.Config, hour, minute int) (int, int) {
	defaultHour := cfg.Scheduler.DefaultHour
	defaultMinute := cfg.Scheduler.DefaultMinute

	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", defaultHour)
		hour = defaultHour
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", defaultMinute)
		minute = defaultMinute
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 任务类型
type TaskType int

const (
	TaskContentTagging TaskType = iota
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// 创建新的调度器
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
		mutex: sync.Mutex{},
	}
}

// 启动调度器
func Start(cfg *config.Config) {
	scheduler := NewScheduler(cfg)

	// 初始化任务
	scheduler.initTasks()

	// 启动主循环
	go scheduler.run()

	checkInterval := cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	logger.Info("调度器已启动", "check_interval_sec", checkInterval)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()

	// 内容批量打标任务 - 根据debug模式决定运行频率
	if s.cfg.Debug.Enabled {
		// Debug模式：按配置的秒数间隔运行
		freqSeconds := s.cfg.Debug.TaggingFreqSec
		if freqSeconds <= 0 {
			freqSeconds = 600
		}
		taggingInterval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskContentTagging] = &TaskStatus{
			LastRun:     now.Add(-taggingInterval),
			NextRun:     now.Add(taggingInterval),
			IsRunning:   false,
			Description: fmt.Sprintf("内容批量打标 (Debug模式: 每%d秒)", freqSeconds),
		}
		logger.Info("Debug模式已启用", "frequency_seconds", freqSeconds, "task", "内容批量打标")
	} else {
		// 正常模式：每天在指定时间点运行
		hour, minute := validateHourMinute(s.cfg, s.cfg.Scheduler.TaggingHour, s.cfg.Scheduler.TaggingMinute)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskContentTagging] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			IsRunning:   false,
			Description: fmt.Sprintf("内容批量打标 (%02d:%02d)", hour, minute),
		}
		logger.Info("正常模式", "schedule_time", fmt.Sprintf("%02d:%02d", hour, minute), "task", "内容批量打标")
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		// 如果任务正在运行，跳过
		if status.IsRunning {
			continue
		}

		// 如果任务的NextRun为零值，跳过（表示不需要定期调度）
		if status.NextRun.IsZero() {
			continue
		}

		// 如果到达或超过下次运行时间，执行任务
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		// 更新下次运行时间
		switch taskType {
		case TaskContentTagging:
			if s.cfg.Debug.Enabled {
				freqSeconds := s.cfg.Debug.TaggingFreqSec
				if freqSeconds <= 0 {
					freqSeconds = 600
				}
				status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
			} else {
				hour, minute := validateHourMinute(s.cfg, s.cfg.Scheduler.TaggingHour, s.cfg.Scheduler.TaggingMinute)
				status.NextRun = getNextTimePoint(now, hour, minute)
			}
		}

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	logger.Info("开始执行任务", "task", func() string {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		if status, ok := s.tasks[taskType]; ok {
			return status.Description
		}
		return "Unknown Task"
	}())

	switch taskType {
	case TaskContentTagging:
		if err := services.TagUntaggedContents(s.cfg); err != nil {
			logger.Error("内容批量打标任务执行错误", "error", err)
		}
	}
}
