package main

import (
	"fmt"
	"io"

	"github.com/saylorsolutions/pixmask/cmd/internal"
	"github.com/saylorsolutions/pixmask/pkg/batch"
	"github.com/saylorsolutions/pixmask/pkg/imageio"
	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	appDesc = "Toggles a reversible XOR mask over the colors of image files"
)

type app struct {
	stdout       io.Writer
	log          *logrus.Logger
	settingsPath string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pixmask",
		Short: appDesc,
		Long: fmt.Sprintf(`%s.

Every red, green, and blue value of every pixel is XOR'd with a KEY between 0 and 255.
Running the same KEY over a masked image restores the original, so "encrypt" and "decrypt" are the same operation.
They only differ in the suffix added to output file names.

Supported extensions: %v

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
A KEY can be brute forced in at most 256 attempts.`, appDesc, imageio.Extensions()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Path of the settings file. Defaults to a file in the user config directory.")

	root.AddCommand(
		newProcessCmd(a, batch.Encrypt),
		newProcessCmd(a, batch.Decrypt),
		newKeygenCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newKeygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a random key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := pixmask.GenKey()
			if err != nil {
				return err
			}
			internal.Echo(a.stdout, "%s", key)
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			internal.Echo(a.stdout, "pixmask %s", version)
		},
	}
}
