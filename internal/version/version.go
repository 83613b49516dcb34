package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags при сборке
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var buildEpoch = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - метаданные сборки в структурированном виде
type VersionInfo struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID считает номер сборки как число дней от эпохи проекта
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}
	// Часы вместо суток, чтобы не споткнуться о переводы времени
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info возвращает метаданные сборки. Безопасно вызывать в любой момент.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String - человекочитаемая строка для стартового лога
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("Build %d (%s) commit[%s]", info.BuildID, info.BuildDate, commit)
}
