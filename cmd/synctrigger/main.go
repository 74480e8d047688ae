package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/azure"
	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/config"
	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/handler"
	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/prompt"
	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/util"
	"go.uber.org/zap"
)

// main
// Sets up:
// - Logging
// - Config from env, with interactive prompts for anything missing
// - Graceful cancellation via Context
// Then runs the sync trigger sequence once and exits.
func main() {
	util.InitializeLogger()
	defer util.Logger.Sync()

	conf, err := config.LoadConfig()
	if err != nil {
		util.Logger.Fatal("Unable to load app config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)

	if conf.Azure.TenantId == "" {
		conf.Azure.TenantId, err = prompt.ReadLine(reader, "Enter Tenant ID")
		if err != nil {
			util.Logger.Fatal("Unable to read tenant id", zap.Error(err))
		}
	}

	if conf.Azure.ClientId == "" {
		conf.Azure.ClientId, err = prompt.ReadLine(reader, "Enter App (Client) ID")
		if err != nil {
			util.Logger.Fatal("Unable to read client id", zap.Error(err))
		}
	}

	if conf.Azure.ClientSecret == "" {
		conf.Azure.ClientSecret, err = prompt.ReadSecret("Enter Client Secret")
		if err != nil {
			util.Logger.Fatal("Unable to read client secret", zap.Error(err))
		}
	}

	if conf.Azure.ServicePrincipalName == "" {
		conf.Azure.ServicePrincipalName, err = prompt.ReadLine(reader, "Enter Display Name of AWS SSO Service Principal")
		if err != nil {
			util.Logger.Fatal("Unable to read service principal display name", zap.Error(err))
		}
	}

	azClient := azure.NewAzureClient(azure.Config{
		TenantId:     conf.Azure.TenantId,
		ClientId:     conf.Azure.ClientId,
		ClientSecret: conf.Azure.ClientSecret,
	})

	err = handler.SyncTriggerHandler(ctx, azClient, conf.Azure.ServicePrincipalName)
	if err != nil {
		util.Logger.Error("Sync trigger failed", zap.Error(err), zap.String("jobName", handler.SyncTriggerName))
		util.Logger.Sync()
		os.Exit(1)
	}
}
