// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/mobinfer/envconfig"
	"github.com/7blacky7/mobinfer/version"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "mobinfer",
		Short:         "Bicubic tensor resampling toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Printf("mobinfer version is %s\n", version.Version)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	resizeCmd := newResizeCmd()
	serveCmd := newServeCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()

	appendEnvDocs(resizeCmd, []envconfig.EnvVar{envVars["MOBINFER_NUM_THREADS"]})
	appendEnvDocs(serveCmd, []envconfig.EnvVar{
		envVars["MOBINFER_DEBUG"],
		envVars["MOBINFER_HOST"],
		envVars["MOBINFER_ORIGINS"],
		envVars["MOBINFER_NUM_THREADS"],
	})

	rootCmd.AddCommand(
		resizeCmd,
		serveCmd,
		envCmd,
	)

	return rootCmd
}
