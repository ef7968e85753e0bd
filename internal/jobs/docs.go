// Package jobs provides the scheduled background tasks of the admin backend,
// implemented with github.com/robfig/cron/v3.
//
// The only job today is AssignmentReconciliationJob, a minutely sweep over
// the confirmed orders that reports assignment-invariant violations left
// behind by older app versions. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(orderRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
