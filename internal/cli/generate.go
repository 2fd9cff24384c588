package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hl7kit/hl7def/internal/compiler"
	"github.com/hl7kit/hl7def/internal/manifest"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Manifest string // manifest file path
	Assets   string // catalog directory
	Out      string // output directory
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile the catalogs into generated Go files",
		Long: `Compile the table catalog and the definitions catalog into the
generated Go files holding the hl7def static store.

Only the versions and capabilities named in the manifest are compiled
in. Generated files for versions no longer enabled are removed so the
output directory always mirrors the manifest exactly.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "assets/hl7defgen.yaml", "generation manifest")
	cmd.Flags().StringVar(&opts.Assets, "assets", "assets", "catalog directory")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return err
	}

	tablesDoc, err := os.ReadFile(filepath.Join(opts.Assets, "tables.json"))
	if err != nil {
		return fmt.Errorf("read table catalog: %w", err)
	}
	defsDoc, err := os.ReadFile(filepath.Join(opts.Assets, "definitions.json"))
	if err != nil {
		return fmt.Errorf("read definitions catalog: %w", err)
	}

	// Warnings go to stderr, never stdout.
	warn := func(format string, args ...any) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[hl7defgen] "+format+"\n", args...)
	}

	files, err := compiler.Compile(tablesDoc, defsDoc, compiler.Options{
		Tables:   m.Tables,
		Versions: m.Versions,
		Warn:     warn,
	})
	if err != nil {
		return err
	}

	if err := removeStale(opts.Out, files); err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(opts.Out, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "[hl7defgen] wrote %s\n", path)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s) for %d version(s)\n",
		len(files), len(m.Versions))
	return nil
}

// removeStale deletes previously generated files that this run no longer
// produces, such as version files for versions dropped from the manifest.
func removeStale(dir string, files []compiler.File) error {
	current := make(map[string]bool, len(files))
	for _, f := range files {
		current[f.Name] = true
	}

	old, err := filepath.Glob(filepath.Join(dir, "*_gen.go"))
	if err != nil {
		return fmt.Errorf("scan output directory: %w", err)
	}
	for _, path := range old {
		if current[filepath.Base(path)] {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
