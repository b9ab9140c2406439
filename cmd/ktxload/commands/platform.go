package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/ktxload/internal/app"
	"go.trai.ch/ktxload/internal/ui/output"
	"go.trai.ch/ktxload/internal/ui/style"
)

func (c *CLI) newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform [library...]",
		Short: "Show the detected platform and where libraries are loaded from",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Platform(cmd.Context(), app.PlatformOptions{
				ConfigPath: c.configPath,
				Libraries:  args,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if c.jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(newPlatformJSON(report))
			}
			renderPlatform(w, output.NewRenderer(w), report)
			return nil
		},
	}
}

func renderPlatform(w io.Writer, r *lipgloss.Renderer, report *app.PlatformReport) {
	heading := style.Heading(r)
	label := style.Label(r)
	line := func(key, value string) {
		if value == "" {
			value = "-"
		}
		_, _ = fmt.Fprintf(w, "  %s%s\n", label.Render(key), value)
	}

	_, _ = fmt.Fprintln(w, heading.Render("Host"))
	line("Operating system name", report.Ambient.OSName)
	line("Architecture", report.Ambient.Arch)
	line("Architecture bit size", report.Ambient.DataModel)
	line("Vendor", report.Ambient.Vendor)
	line("Platform", report.Platform.String())
	line("Cache root", report.CacheRoot)
	line("Resources", report.Source)

	for _, lib := range report.Libraries {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, heading.Render(lib.Spec.Name))
		line("File name", lib.FileName)
		line("Qualified name", lib.QualifiedName)
		line("State", lib.State.String())
		line("Dependencies", strings.Join(lib.Spec.Dependencies, ", "))
		for _, e := range lib.Entries {
			line("Resource "+e.Library, e.Resource)
			line("Cache "+e.Library, e.Path)
		}
	}
}

type platformJSON struct {
	OSName    string        `json:"os_name"`
	Arch      string        `json:"arch"`
	DataModel string        `json:"data_model"`
	Vendor    string        `json:"vendor,omitempty"`
	Platform  string        `json:"platform"`
	CacheRoot string        `json:"cache_root"`
	Source    string        `json:"source"`
	Libraries []libraryJSON `json:"libraries"`
}

type libraryJSON struct {
	Name          string      `json:"name"`
	Dependencies  []string    `json:"dependencies,omitempty"`
	FileName      string      `json:"file_name"`
	QualifiedName string      `json:"qualified_name"`
	State         string      `json:"state"`
	Entries       []entryJSON `json:"entries"`
}

type entryJSON struct {
	Library  string `json:"library"`
	Resource string `json:"resource"`
	Path     string `json:"path"`
}

func newPlatformJSON(report *app.PlatformReport) platformJSON {
	out := platformJSON{
		OSName:    report.Ambient.OSName,
		Arch:      report.Ambient.Arch,
		DataModel: report.Ambient.DataModel,
		Vendor:    report.Ambient.Vendor,
		Platform:  report.Platform.String(),
		CacheRoot: report.CacheRoot,
		Source:    report.Source,
		Libraries: make([]libraryJSON, 0, len(report.Libraries)),
	}
	for _, lib := range report.Libraries {
		l := libraryJSON{
			Name:          lib.Spec.Name,
			Dependencies:  lib.Spec.Dependencies,
			FileName:      lib.FileName,
			QualifiedName: lib.QualifiedName,
			State:         lib.State.String(),
		}
		for _, e := range lib.Entries {
			l.Entries = append(l.Entries, entryJSON{Library: e.Library, Resource: e.Resource, Path: e.Path})
		}
		out.Libraries = append(out.Libraries, l)
	}
	return out
}
