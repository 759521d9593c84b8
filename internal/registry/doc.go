// Package registry owns the static heartbeat task descriptors.
//
// Ownership boundary:
// - task descriptor records and registration order
//
// - cron expression validation and next-fire evaluation
//
// The crontab that actually runs these chores is managed outside this
// repository; the registry never installs or removes schedules.
package registry
