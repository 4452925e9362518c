package types

import "log/slog"

// DatabaseDSN is a postgres connection string. It may embed a password,
// so it is masked in logs.
type DatabaseDSN string

func (x DatabaseDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseDSN) String() string {
	return "***********"
}
