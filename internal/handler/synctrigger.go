package handler

import (
	"context"
	"fmt"

	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/util"
	"go.uber.org/zap"
)

const SyncTriggerName = "syncTrigger"

// GraphClient is the subset of the azure client the sync trigger needs.
type GraphClient interface {
	FindServicePrincipalId(ctx context.Context, displayName string) (string, error)
	FindFirstSyncJobId(ctx context.Context, servicePrincipalId string) (string, error)
	StartSyncJob(ctx context.Context, servicePrincipalId string, jobId string) error
}

// SyncTriggerHandler runs the trigger sequence: resolve the service principal
// by display name, find its first synchronization job, start it. The first
// failing step aborts the run, nothing after it is called.
func SyncTriggerHandler(ctx context.Context, client GraphClient, displayName string) error {
	util.Logger.Info(fmt.Sprintf("Searching for service principal with display name: '%s'", displayName), zap.String("jobName", SyncTriggerName))
	servicePrincipalId, err := client.FindServicePrincipalId(ctx, displayName)
	if err != nil {
		return err
	}
	util.Logger.Info(fmt.Sprintf("Found service principal ID: %s", servicePrincipalId), zap.String("jobName", SyncTriggerName))

	util.Logger.Info(fmt.Sprintf("Searching for synchronization jobs for service principal ID: %s", servicePrincipalId), zap.String("jobName", SyncTriggerName))
	jobId, err := client.FindFirstSyncJobId(ctx, servicePrincipalId)
	if err != nil {
		return err
	}
	util.Logger.Info(fmt.Sprintf("Found synchronization job ID: %s", jobId), zap.String("jobName", SyncTriggerName))

	util.Logger.Info(fmt.Sprintf("Sending request to start synchronization job ID: %s", jobId), zap.String("jobName", SyncTriggerName))
	err = client.StartSyncJob(ctx, servicePrincipalId, jobId)
	if err != nil {
		return err
	}

	util.Logger.Info("Sync Completed Successfully", zap.String("jobName", SyncTriggerName))
	return nil
}
