package cron

import log "log/slog"

// InitCron 注册并启动全部定时任务，注册失败时整个进程不应继续
func InitCron(mgr *Manager) error {
	log.Info("定时任务注册中...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
