package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saylorsolutions/pixmask/cmd/internal"
	"github.com/saylorsolutions/pixmask/internal/settings"
	"github.com/saylorsolutions/pixmask/pkg/batch"
	"github.com/saylorsolutions/pixmask/pkg/imageio"
	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

type processFlags struct {
	key       string
	randomKey bool
	output    string
	quality   int
	noSave    bool
}

func (f *processFlags) register(flags *flag.FlagSet, d batch.Direction) {
	flags.StringVarP(&f.key, "key", "k", "", "Key between 0 and 255. Defaults to the last key used.")
	if d == batch.Encrypt {
		flags.BoolVarP(&f.randomKey, "random-key", "r", false, "Generate a random key and print it. Keep it to decrypt later!")
	}
	flags.StringVarP(&f.output, "output", "o", "", "Folder to write output files to. Defaults to the last folder used, or the folder of each input.")
	flags.IntVarP(&f.quality, "quality", "q", 0, "Quality of jpeg output, between 1 and 100.")
	flags.BoolVar(&f.noSave, "no-save", false, "Don't remember the key and output folder for the next run.")
}

func newProcessCmd(a *app, d batch.Direction) *cobra.Command {
	f := new(processFlags)
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] FILE...", d),
		Short: fmt.Sprintf("Mask image files, writing *%s copies", d.Suffix()),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, a, d, f, args)
		},
	}
	if d == batch.Decrypt {
		cmd.Short = fmt.Sprintf("Unmask image files, writing *%s copies", d.Suffix())
	}
	f.register(cmd.Flags(), d)
	return cmd
}

func runProcess(cmd *cobra.Command, a *app, d batch.Direction, f *processFlags, paths []string) error {
	store, err := loadSettings(a.log, a.settingsPath)
	if err != nil {
		return err
	}

	key, err := resolveKey(cmd, a, f, store)
	if err != nil {
		return err
	}

	paths, skipped := supportedInputs(a.log, paths)
	if len(paths) == 0 {
		return fmt.Errorf("%w: none of the %d inputs have a supported extension %v", batch.ErrNoFiles, len(skipped), imageio.Extensions())
	}

	outDir := f.output
	if len(outDir) == 0 && len(store.LastFolder) > 0 {
		if info, err := os.Stat(store.LastFolder); err == nil && info.IsDir() {
			outDir = store.LastFolder
		} else {
			a.log.WithField("folder", store.LastFolder).Warn("Last output folder is no longer available, writing next to inputs")
		}
	}

	opts := []batch.ProcessorOpt{
		batch.OutputDir(outDir),
		batch.Logger(a.log),
		batch.OnProgress(func(done, total int) {
			a.log.Debugf("Processed %d of %d", done, total)
		}),
	}
	if cmd.Flags().Changed("quality") {
		opts = append(opts, batch.JPEGQuality(f.quality))
	}
	proc, err := batch.NewProcessor(opts...)
	if err != nil {
		return err
	}

	report, err := proc.Run(cmd.Context(), key, d, paths)
	if err != nil {
		return err
	}

	if !f.noSave {
		store.SetLastKey(key)
		folder := outDir
		if len(folder) == 0 {
			folder = filepath.Dir(paths[0])
		}
		if err := store.SetLastFolder(folder); err != nil {
			a.log.WithError(err).Warn("Not remembering output folder")
		}
		if err := store.Save(); err != nil {
			a.log.WithError(err).WithField("file", store.Path()).Warn("Failed to save settings")
		}
	}

	if failed := len(report.Failed()) + len(skipped); failed > 0 {
		return fmt.Errorf("%d of %d files failed to %s", failed, len(report.Results)+len(skipped), d)
	}
	return nil
}

// supportedInputs drops inputs with an extension that can't be read and written, logging each one by name.
func supportedInputs(log logrus.FieldLogger, paths []string) (supported, skipped []string) {
	for _, p := range paths {
		if !imageio.IsSupported(p) {
			log.WithField("input", p).Warn("Skipping input with unsupported image extension")
			skipped = append(skipped, p)
			continue
		}
		supported = append(supported, p)
	}
	return supported, skipped
}

func loadSettings(log logrus.FieldLogger, path string) (*settings.Store, error) {
	if len(path) == 0 {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("unable to locate settings file: %w", err)
		}
	}
	store, err := settings.Load(path)
	if err != nil {
		if !errors.Is(err, settings.ErrCorrupt) {
			return nil, err
		}
		log.WithError(err).Warn("Ignoring unreadable settings")
	}
	return store, nil
}

func resolveKey(cmd *cobra.Command, a *app, f *processFlags, store *settings.Store) (pixmask.Key, error) {
	keyGiven := cmd.Flags().Changed("key")
	switch {
	case f.randomKey && keyGiven:
		return 0, errors.New("--key and --random-key can't be used together")
	case f.randomKey:
		key, err := pixmask.GenKey()
		if err != nil {
			return 0, err
		}
		internal.Echo(a.stdout, "Using random key %s", key)
		return key, nil
	case keyGiven:
		return pixmask.ParseKey(f.key)
	}
	if key, ok := store.Key(); ok {
		a.log.WithField("key", key).Info("Using last key")
		return key, nil
	}
	return 0, fmt.Errorf("%w: use --key to set one", pixmask.ErrInvalidKey)
}
