package config

// ArchiveConfig points at the static historical match files.
type ArchiveConfig struct {
	Path string
	// OldSeasonsPath, when set, is prepended before the main archive so the
	// replay covers retired seasons too.
	OldSeasonsPath string
}

func loadArchive() ArchiveConfig {
	return ArchiveConfig{
		Path:           envOrDefault(envArchivePath, defaultArchivePath),
		OldSeasonsPath: envOrDefault(envOldSeasonsPath, ""),
	}
}

// SheetsConfig controls the live feed pulled from the Google Sheets
// visualization endpoint.
type SheetsConfig struct {
	BaseURL       string
	SpreadsheetID string
	SheetName     string
	Query         string
}

func loadSheets() SheetsConfig {
	return SheetsConfig{
		BaseURL:       envOrDefault(envSheetsBaseURL, defaultSheetsBase),
		SpreadsheetID: envOrDefault(envSpreadsheetID, ""),
		SheetName:     envOrDefault(envSheetName, defaultSheetName),
		Query:         envOrDefault(envSheetQuery, defaultSheetQuery),
	}
}

// SnapshotConfig controls on-disk persistence of the last good match list
// and the admin refresh gate.
type SnapshotConfig struct {
	Dir string
	// AdminDailyToken enables the daily-token guard on the refresh endpoint
	// (token is the current DDMM, same scheme the site gate uses).
	AdminDailyToken bool
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:             envOrDefault(envSnapshotDir, defaultSnapshotDir),
		AdminDailyToken: boolEnvOrDefault(envAdminGate, true),
	}
}
