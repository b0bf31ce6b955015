package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envArchivePath    = "ARCHIVE_PATH"
	envOldSeasonsPath = "ARCHIVE_OLD_SEASONS_PATH"
	envSpreadsheetID  = "SHEETS_SPREADSHEET_ID"
	envSheetName      = "SHEETS_SHEET_NAME"
	envSheetQuery     = "SHEETS_QUERY"
	envSheetsBaseURL  = "SHEETS_BASE_URL"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envAdminGate      = "ADMIN_DAILY_TOKEN_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The sheet is hand-edited during match evenings; five minutes keeps the
	// standings fresh without hammering the gviz endpoint.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "merged"
	defaultArchivePath  = "data/matches.json"
	defaultSheetName    = "Results"
	defaultSheetQuery   = "SELECT P"
	defaultSheetsBase   = "https://docs.google.com"
	defaultSnapshotDir  = "data/snapshots"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "tt-league-service"
)
