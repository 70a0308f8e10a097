package core

// AppConfig is the part of the application config local transports need.
type AppConfig interface {
	GetRuntimePath() string
	GetHistoryFilePath() string
}
