package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/pixmask/pkg/imageio"
	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoFiles = errors.New("no image files selected")
)

// ProgressFunc is called after each file is processed, whether it succeeded or not.
type ProgressFunc = func(done, total int)

// Processor runs a Key over a list of files.
type Processor struct {
	outDir   string
	encOpts  imageio.Options
	progress ProgressFunc
	log      logrus.FieldLogger
}

// ProcessorOpt configures a Processor in NewProcessor.
// If any ProcessorOpt returns an error, then NewProcessor returns it.
type ProcessorOpt = func(p *Processor) error

// OutputDir places all output files in dir, which must already exist.
// An empty dir places each output file next to its input.
func OutputDir(dir string) ProcessorOpt {
	return func(p *Processor) error {
		if len(dir) == 0 {
			p.outDir = ""
			return nil
		}
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("unable to use output folder: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("output folder '%s' is not a directory", dir)
		}
		p.outDir = dir
		return nil
	}
}

// JPEGQuality sets the quality of jpeg output, in the range [1, 100].
func JPEGQuality(quality int) ProcessorOpt {
	return func(p *Processor) error {
		if quality < 1 || quality > 100 {
			return fmt.Errorf("jpeg quality %d must be between 1 and 100", quality)
		}
		p.encOpts.JPEGQuality = quality
		return nil
	}
}

// OnProgress registers a ProgressFunc.
func OnProgress(fn ProgressFunc) ProcessorOpt {
	return func(p *Processor) error {
		p.progress = fn
		return nil
	}
}

// Logger sets the logger used to report per-file results. Nothing is logged by default.
func Logger(log logrus.FieldLogger) ProcessorOpt {
	return func(p *Processor) error {
		if log == nil {
			return errors.New("nil logger")
		}
		p.log = log
		return nil
	}
}

func NewProcessor(opts ...ProcessorOpt) (*Processor, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	p := &Processor{
		log: discard,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run applies key to each of paths in order, writing each output to OutputPath.
// A failure in one file doesn't stop the others, and is recorded in the returned Report.
// The returned error is only non-nil if paths is empty, or ctx is done before every file is processed.
// In the latter case the partial Report is still returned.
func (p *Processor) Run(ctx context.Context, key pixmask.Key, d Direction, paths []string) (*Report, error) {
	report := &Report{
		Direction: d,
		Key:       key,
	}
	if len(paths) == 0 {
		return report, ErrNoFiles
	}
	for i, in := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := Result{
			Input:  in,
			Output: OutputPath(p.outDir, in, d),
			Warned: AlreadyProcessed(in, d),
		}
		log := p.log.WithFields(logrus.Fields{
			"input":  res.Input,
			"output": res.Output,
		})
		if res.Warned {
			log.Warnf("Input appears to be %sed already", d)
		}
		res.Err = ProcessFile(in, res.Output, key, p.encOpts)
		if res.Err != nil {
			log.WithError(res.Err).Error("Failed to process image")
		} else {
			log.Infof("Image %sed", d)
		}
		report.Results = append(report.Results, res)
		if p.progress != nil {
			p.progress(i+1, len(paths))
		}
	}
	return report, nil
}

// ProcessFile decodes in, applies key, and encodes the result to out in the format given by out's extension.
func ProcessFile(in, out string, key pixmask.Key, opts imageio.Options) error {
	if _, err := imageio.FormatOf(out); err != nil {
		return fmt.Errorf("%w: %w", imageio.ErrEncode, err)
	}
	img, err := imageio.ReadFile(in)
	if err != nil {
		return err
	}
	pixmask.Apply(img.Pixels, key)
	return imageio.WriteFile(out, img.Pixels, opts)
}
