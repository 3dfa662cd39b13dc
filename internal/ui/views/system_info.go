package views

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/txengine/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath  string
	ConfigFound bool // true = Found, false = using defaults
	BatchSize   int
	Format      string
	Summary     bool
	LogLevel    string
	MetricsFile string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	configStatus := pterm.Green("Found")
	if !data.ConfigFound {
		configStatus = pterm.Gray("Not Found (using defaults)")
	}

	metricsFile := data.MetricsFile
	if metricsFile == "" {
		metricsFile = pterm.Gray("(disabled)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Configuration Status", configStatus},
		{"Batch Size", strconv.Itoa(data.BatchSize)},
		{"Output Format", data.Format},
		{"Run Summary", strconv.FormatBool(data.Summary)},
		{"Log Level", data.LogLevel},
		{"Metrics File", metricsFile},
	}

	table, err := pterm.DefaultTable.WithData(tableData).Srender()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, ui.L1Title("txengine")); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table)
	return err
}
