package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  string
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	InstallationToken   string
	GitHubHandle        string
	SyncStatus          string
)

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusError   SyncStatus = "error"
)

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x InstallationToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x InstallationToken) String() string {
	return "***********"
}
