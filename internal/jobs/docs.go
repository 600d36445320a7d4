// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AutoDispatchJob assigns the oldest open order to the longest waiting
// available courier on every tick. It goes through the same compare-and-swap
// path as the admin assign endpoint, so a courier accepting the same order at
// the same moment either wins or loses cleanly.
//
// # Usage
//
//	manager := jobs.NewJobManager()
//	manager.Register("auto dispatch", jobs.NewAutoDispatchJob(handler, "*/10 * * * * *", 3*time.Second, log, m))
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// Expected outcomes (no open orders, no available courier, a lost race) are
// not reported as failures. Anything else is logged with the job's component
// field and counted in the delivery transitions metric.
package jobs
