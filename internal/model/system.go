package model

// VersionInfo describes the running application and its database schema.
type VersionInfo struct {
	AppVersion      string `json:"appVersion"`
	SchemaVersion   int64  `json:"schemaVersion"`
	MigrationNeeded bool   `json:"migrationNeeded"`
}

// SeedSummary reports what the seed command created.
type SeedSummary struct {
	Groups         []GroupResponse `json:"groups"`
	UngroupedTrade TradeResponse   `json:"ungroupedTrade"`
}
